package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"sentiment/models"
	"sentiment/service"
	"sentiment/storage"
)

// allowedExtensions 允许上传的文件扩展名
var allowedExtensions = map[string]bool{
	"txt":  true,
	"pdf":  true,
	"docx": true,
}

// AnalyzeHandler 情感分析处理器
type AnalyzeHandler struct {
	store      *storage.HistoryStore
	detector   *service.LanguageDetector
	classifier *service.SentimentClient
	maxUpload  int64 // 上传大小上限（字节），0 表示不限制
}

// NewAnalyzeHandler 创建情感分析处理器
func NewAnalyzeHandler(store *storage.HistoryStore, detector *service.LanguageDetector, classifier *service.SentimentClient, maxUpload int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		store:      store,
		detector:   detector,
		classifier: classifier,
		maxUpload:  maxUpload,
	}
}

// AnalyzeRequest 文本模式请求体
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// Analyze 分析文本或文档的情感
// @Summary 情感分析
// @Description 接受 JSON 文本或上传的 txt/pdf/docx 文档，检测语言并调用大语言模型做情感分类，结果写入历史
// @Tags 分析
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param text body AnalyzeRequest false "文本内容（application/json 时）"
// @Param file formData file false "文档文件（multipart/form-data 时，扩展名 txt/pdf/docx）"
// @Success 200 {object} AnalyzeResponse "分析结果"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 415 {object} Response "不支持的 Content-Type"
// @Failure 500 {object} Response "分析或存储失败"
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	// 按请求 Content-Type 确定输入模式，仅在此处分支
	var (
		text string
		ok   bool
	)
	switch c.ContentType() {
	case "application/json":
		text, ok = h.textFromJSON(c)
	case "multipart/form-data":
		text, ok = h.textFromUpload(c)
	default:
		UnsupportedMediaType(c, "不支持的 Content-Type，请使用 application/json 或 multipart/form-data")
		return
	}
	if !ok {
		return
	}

	// 统一裁剪到分析上限
	text = models.TruncateRunes(strings.TrimSpace(text), models.FullTextLimit)

	// 语言检测从不失败，只会得到代码或哨兵值，不阻塞后续分类
	language := h.detector.Detect(text)

	result, err := h.classifier.Analyze(c.Request.Context(), text)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "情感分析失败"))
		return
	}

	rec := models.NewAnalysisRecord(text, result.Label, result.Score, language)
	if err := h.store.Append(rec); err != nil {
		InternalError(c, SafeErrorMessage(err, "保存历史记录失败"))
		return
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		Status:   "success",
		Label:    result.Label,
		Score:    result.Score,
		Language: language,
	})
}

// textFromJSON 文本模式：取 text 字段，拒绝缺失或去空白后为空的内容
// 失败时已写入响应，返回 false
func (h *AnalyzeHandler) textFromJSON(c *gin.Context) (string, bool) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求体格式错误: "+err.Error())
		return "", false
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		BadRequest(c, "文本内容不能为空")
		return "", false
	}
	return text, true
}

// textFromUpload 文件模式：校验扩展名，落盘到请求级临时文件后提取文本
// 无论提取成败临时文件都会被删除；失败时已写入响应，返回 false
func (h *AnalyzeHandler) textFromUpload(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "缺少上传文件")
		return "", false
	}

	filename := filepath.Base(fileHeader.Filename)
	if filename == "" || filename == "." || filename == string(filepath.Separator) {
		BadRequest(c, "文件名不能为空")
		return "", false
	}

	// 扩展名在任何提取尝试之前校验
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !allowedExtensions[ext] {
		BadRequest(c, "不支持的文件类型，仅支持 txt/pdf/docx")
		return "", false
	}
	if h.maxUpload > 0 && fileHeader.Size > h.maxUpload {
		BadRequest(c, "文件过大")
		return "", false
	}

	tmp, err := os.CreateTemp("", "sentiment-upload-*."+ext)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "创建临时文件失败"))
		return "", false
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		InternalError(c, SafeErrorMessage(err, "保存上传文件失败"))
		return "", false
	}

	text, err := service.ExtractText(tmpPath, ext)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "文本提取失败"))
		return "", false
	}
	if strings.TrimSpace(text) == "" {
		BadRequest(c, "文件中没有可分析的文本")
		return "", false
	}
	return text, true
}
