package service

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"sentiment/models"
)

// 语言检测参数
const (
	minDetectLength = 10  // 短于该长度直接返回 short-text 哨兵，不做检测
	sampleLength    = 200 // 只取文本前缀做检测，足够判定语言
)

// LanguageDetector 语言检测器
// lingua 的检测是确定性的：相同输入永远得到相同结果
type LanguageDetector struct {
	detector lingua.LanguageDetector
}

// NewLanguageDetector 创建语言检测器（加载全部语言模型）
func NewLanguageDetector() *LanguageDetector {
	return &LanguageDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

// Detect 返回文本的小写 ISO-639-1 语言代码或哨兵值，从不返回错误
// 检测失败统一映射：无法判定 -> undetermined，其它异常 -> error
func (d *LanguageDetector) Detect(text string) (code string) {
	defer func() {
		if r := recover(); r != nil {
			code = models.LangError
		}
	}()

	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < minDetectLength {
		return models.LangShortText
	}

	sample := models.TruncateRunes(trimmed, sampleLength)
	lang, ok := d.detector.DetectLanguageOf(sample)
	if !ok {
		return models.LangUndetermined
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
