package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"sentiment/models"
)

// sentimentPrompt 固定指令模板，要求模型只输出两字段 JSON
const sentimentPrompt = "You are a sentiment analysis system. Analyze the sentiment of the following text. " +
	`Respond ONLY with a valid JSON object in this exact format: {"label": "positive|neutral|negative", "score": 0.0}. ` +
	"The 'score' must be a confidence value between 0.0 and 1.0. " +
	"Do not add any explanation, markdown, or extra text.\n\nText: "

// resultSchemaJSON 模型输出的结构约束：恰好 label 和 score 两个字段
// 枚举与取值范围单独校验，以便给出更具体的错误信息
const resultSchemaJSON = `{
	"type": "object",
	"additionalProperties": false,
	"required": ["label", "score"],
	"properties": {
		"label": {},
		"score": {}
	}
}`

var resultSchema = jsonschema.MustCompileString("sentiment_result.json", resultSchemaJSON)

// SentimentResult 校验通过的分类结果
type SentimentResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// SentimentClient OpenAI 兼容接口的情感分类适配器
// 显式构造后注入使用，测试时把 BaseURL 指向假服务即可替换
type SentimentClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	timeout    time.Duration
}

// NewSentimentClient 创建情感分类客户端
// httpClient 为 nil 时使用默认客户端；timeout 约束单次外部调用
func NewSentimentClient(httpClient *http.Client, baseURL, apiKey, model string, timeout time.Duration) *SentimentClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &SentimentClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		timeout:    timeout,
	}
}

// Analyze 调用外部模型对文本做情感分类，并严格校验返回结果
// 只尝试一次，不做重试；所有失败统一包装为"情感分析失败"
func (c *SentimentClient) Analyze(ctx context.Context, text string) (SentimentResult, error) {
	result, err := c.analyze(ctx, text)
	if err != nil {
		return SentimentResult{}, fmt.Errorf("情感分析失败: %w", err)
	}
	return result, nil
}

func (c *SentimentClient) analyze(ctx context.Context, text string) (SentimentResult, error) {
	// 构建请求体（OpenAI chat/completions 格式），零温度 + JSON 响应约束
	requestBody := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{
			{
				"role":    "user",
				"content": sentimentPrompt + text,
			},
		},
		"temperature":     0.0,
		"response_format": map[string]string{"type": "json_object"},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return SentimentResult{}, fmt.Errorf("构建请求失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return SentimentResult{}, fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SentimentResult{}, fmt.Errorf("请求模型服务失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return SentimentResult{}, fmt.Errorf("模型服务返回错误: %d, %s", resp.StatusCode, string(body))
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&cc); err != nil {
		return SentimentResult{}, fmt.Errorf("解析模型响应失败: %w", err)
	}
	if len(cc.Choices) == 0 {
		return SentimentResult{}, fmt.Errorf("模型响应中没有结果")
	}

	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	return validateResult(content)
}

// validateResult 解析并严格校验模型输出
// 结构不符、标签不在枚举内、分数越界都会被拒绝
func validateResult(content string) (SentimentResult, error) {
	var payload interface{}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return SentimentResult{}, fmt.Errorf("模型返回了无效 JSON: %s: %w", content, err)
	}
	if err := resultSchema.Validate(payload); err != nil {
		return SentimentResult{}, fmt.Errorf("模型输出不符合约定结构: %w", err)
	}

	obj := payload.(map[string]interface{})
	label, _ := obj["label"].(string)
	if !models.ValidLabel(label) {
		return SentimentResult{}, fmt.Errorf("无效的情感标签: %v", obj["label"])
	}
	score, ok := obj["score"].(float64)
	if !ok || score < 0.0 || score > 1.0 {
		return SentimentResult{}, fmt.Errorf("无效的置信度分数: %v", obj["score"])
	}

	return SentimentResult{Label: label, Score: score}, nil
}
