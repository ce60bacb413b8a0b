package models

import (
	"time"
	"unicode/utf8"
)

// 情感标签常量
const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// 语言哨兵值：跳过检测或检测失败时使用的占位代码
const (
	LangShortText    = "short-text"
	LangUndetermined = "undetermined"
	LangError        = "error"
)

// 文本长度上限
const (
	DisplayTextLimit = 200  // 历史列表展示文本的截断长度
	FullTextLimit    = 5000 // 参与分析的完整文本上限
)

// AnalysisRecord 单条情感分析历史记录
// 记录一经创建不再修改，历史文件只追加和淘汰
type AnalysisRecord struct {
	Text      string  `json:"text"`      // 截断后的展示文本，超长时追加省略号
	FullText  string  `json:"full_text"` // 分析使用的完整文本（已做长度上限）
	Label     string  `json:"label"`     // positive / neutral / negative
	Score     float64 `json:"score"`     // 置信度，[0, 1]
	Language  string  `json:"language"`  // ISO-639-1 代码或哨兵值
	Timestamp string  `json:"timestamp"` // UTC ISO-8601，带 Z 后缀
}

// NewAnalysisRecord 构建一条历史记录，自动处理展示文本截断与时间戳
func NewAnalysisRecord(fullText, label string, score float64, language string) AnalysisRecord {
	display := fullText
	if utf8.RuneCountInString(fullText) > DisplayTextLimit {
		display = TruncateRunes(fullText, DisplayTextLimit) + "..."
	}
	return AnalysisRecord{
		Text:      display,
		FullText:  fullText,
		Label:     label,
		Score:     score,
		Language:  language,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// ValidLabel 判断标签是否为三个枚举值之一（区分大小写，不接受同义词）
func ValidLabel(label string) bool {
	return label == LabelPositive || label == LabelNeutral || label == LabelNegative
}

// GetLabels 获取所有情感标签
func GetLabels() []string {
	return []string{LabelPositive, LabelNeutral, LabelNegative}
}

// TruncateRunes 按字符数截断字符串，保证不会切出非法 UTF-8 序列
func TruncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
