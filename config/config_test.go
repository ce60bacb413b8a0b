package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	defer func() { GlobalConfig = nil }()

	assert.Equal(t, ":5001", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
	assert.NotEmpty(t, cfg.OpenAI.Model)
	assert.Equal(t, 60, cfg.OpenAI.TimeoutSeconds)
	assert.Equal(t, "history.json", cfg.History.File)
	assert.Positive(t, cfg.Upload.MaxSizeMB)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SENTIMENT_SERVER_PORT", ":9001")
	t.Setenv("SENTIMENT_OPENAI_MODEL", "gpt-4o-mini")
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":9001", cfg.Server.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
}

func TestLoadConfig_BareAPIKeyFallback(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-1234")
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	// 未配置 openai.api_key 时回退读取裸 OPENAI_API_KEY
	assert.Equal(t, "sk-test-1234", cfg.OpenAI.APIKey)
}

func TestSafeErrorMessage(t *testing.T) {
	fallback := "操作失败"
	testErr := errors.New("internal model error")

	// nil err 返回 fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release 模式返回 fallback，不暴露错误详情
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// debug 模式返回 err.Error()
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal model error", SafeErrorMessage(testErr, fallback))

	// GlobalConfig 为 nil 时返回 err.Error()（视为开发环境）
	GlobalConfig = nil
	assert.Equal(t, "internal model error", SafeErrorMessage(testErr, fallback))
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "(未设置)", maskKey(""))
	assert.Equal(t, "****", maskKey("short"))
	assert.Equal(t, "sk-a****wxyz", maskKey("sk-abcdefghijklmnopqrstuvwxyz"))
}
