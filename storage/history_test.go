package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentiment/models"
)

func newTestStore(t *testing.T) *HistoryStore {
	t.Helper()
	return NewHistoryStore(filepath.Join(t.TempDir(), "history.json"))
}

func testRecord(text string) models.AnalysisRecord {
	return models.NewAnalysisRecord(text, models.LabelPositive, 0.9, "en")
}

func TestHistoryStore_LoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	// 文件不存在时返回空列表而不是报错
	records := store.Load()
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestHistoryStore_LoadCorruptedFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not valid json"), 0644))

	// 损坏的文件等同于空历史
	assert.Empty(t, store.Load())
}

func TestHistoryStore_AppendRoundTrip(t *testing.T) {
	store := newTestStore(t)

	rec := models.NewAnalysisRecord("round trip text", models.LabelNegative, 0.25, "fr")
	require.NoError(t, store.Append(rec))

	records := store.Load()
	require.Len(t, records, 1)
	// 逐字段往返一致
	assert.Equal(t, rec, records[0])
}

func TestHistoryStore_AppendKeepsOrder(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(testRecord(fmt.Sprintf("text-%d", i))))
	}

	records := store.Load()
	require.Len(t, records, 5)
	// 最旧在前
	assert.Equal(t, "text-0", records[0].FullText)
	assert.Equal(t, "text-4", records[4].FullText)
}

func TestHistoryStore_CapAt100(t *testing.T) {
	store := newTestStore(t)

	// 连续 101 次追加后最旧的一条被淘汰
	for i := 0; i < MaxEntries+1; i++ {
		require.NoError(t, store.Append(testRecord(fmt.Sprintf("text-%d", i))))
	}

	records := store.Load()
	require.Len(t, records, MaxEntries)
	assert.Equal(t, "text-1", records[0].FullText)
	assert.Equal(t, fmt.Sprintf("text-%d", MaxEntries), records[MaxEntries-1].FullText)
}

func TestHistoryStore_Clear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Append(testRecord("to be cleared")))
	require.NoError(t, store.Clear())

	assert.Empty(t, store.Load())

	// 清空后文件内容是空数组而非空文件
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestHistoryStore_ConcurrentAppend(t *testing.T) {
	store := newTestStore(t)

	// 并发追加不丢更新
	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			_ = store.Append(testRecord(fmt.Sprintf("concurrent-%d", n)))
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Len(t, store.Load(), 10)
}
