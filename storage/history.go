package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"sentiment/models"
)

// MaxEntries 历史记录条数上限，超出后淘汰最旧的条目
const MaxEntries = 100

// HistoryStore 历史记录的文件存储
// 所有读写共用一把互斥锁，append-and-cap 对并发请求是原子的
type HistoryStore struct {
	mu   sync.Mutex
	path string
}

// NewHistoryStore 创建历史存储，文件不存在时在首次写入时创建
func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

// Path 返回历史文件路径
func (s *HistoryStore) Path() string {
	return s.path
}

// Load 读取全部历史记录（最旧在前）
// 文件缺失、损坏或不可读时一律返回空列表，不区分具体原因
func (s *HistoryStore) Load() []models.AnalysisRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Append 追加一条记录并整体重写文件，超过上限时丢弃最旧的条目
func (s *HistoryStore) Append(rec models.AnalysisRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.loadLocked()
	records = append(records, rec)
	if len(records) > MaxEntries {
		records = records[len(records)-MaxEntries:]
	}
	return s.writeLocked(records)
}

// Clear 清空历史，写入失败时向调用方报告
func (s *HistoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked([]models.AnalysisRecord{})
}

func (s *HistoryStore) loadLocked() []models.AnalysisRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []models.AnalysisRecord{}
	}
	var records []models.AnalysisRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return []models.AnalysisRecord{}
	}
	if records == nil {
		records = []models.AnalysisRecord{}
	}
	return records
}

// writeLocked 整体重写历史文件，成功写入后文件内容总是内部一致的
func (s *HistoryStore) writeLocked(records []models.AnalysisRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化历史记录失败: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建历史目录失败: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("写入历史文件失败: %w", err)
	}
	return nil
}
