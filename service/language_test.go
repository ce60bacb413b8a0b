package service

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"sentiment/models"
)

var (
	testDetectorOnce sync.Once
	testDetector     *LanguageDetector
)

// sharedDetector 语言模型加载较慢，测试间复用一个实例
func sharedDetector() *LanguageDetector {
	testDetectorOnce.Do(func() {
		testDetector = NewLanguageDetector()
	})
	return testDetector
}

func TestDetect_English(t *testing.T) {
	code := sharedDetector().Detect("The weather is absolutely wonderful today and I feel great.")
	assert.Equal(t, "en", code)
}

func TestDetect_French(t *testing.T) {
	code := sharedDetector().Detect("Bonjour tout le monde, il fait très beau aujourd'hui à Paris.")
	assert.Equal(t, "fr", code)
}

func TestDetect_ShortText(t *testing.T) {
	d := sharedDetector()
	// 低于阈值直接返回哨兵，不做检测
	assert.Equal(t, models.LangShortText, d.Detect("Hi"))
	assert.Equal(t, models.LangShortText, d.Detect(""))
	assert.Equal(t, models.LangShortText, d.Detect("   \n\t  "))
}

func TestDetect_LongTextUsesPrefix(t *testing.T) {
	// 超长文本只取前缀检测，不报错
	text := strings.Repeat("This is an English sentence. ", 100)
	assert.Equal(t, "en", sharedDetector().Detect(text))
}

func TestDetect_Deterministic(t *testing.T) {
	d := sharedDetector()
	text := "Programming in Go is a pleasant experience for most developers."
	first := d.Detect(text)
	// 相同输入永远得到相同结果
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, d.Detect(text))
	}
}

func TestDetect_NeverEmpty(t *testing.T) {
	d := sharedDetector()
	inputs := []string{
		"1234567890 1234567890",
		"!!!???...---***&&&%%%$$$",
		"aaaaaaaaaaaaaaaaaaaa",
	}
	for _, in := range inputs {
		code := d.Detect(in)
		// 永远得到语言代码或哨兵值，不会是空串
		assert.NotEmpty(t, code)
	}
}
