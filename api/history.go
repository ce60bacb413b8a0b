package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"sentiment/storage"
)

// HistoryHandler 历史记录处理器
type HistoryHandler struct {
	store *storage.HistoryStore
}

// NewHistoryHandler 创建历史记录处理器
func NewHistoryHandler(store *storage.HistoryStore) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// GetHistory 获取全部分析历史
// @Summary 获取分析历史
// @Description 返回全部历史记录（最旧在前），最多 100 条
// @Tags 历史
// @Produce json
// @Success 200 {array} models.AnalysisRecord "历史记录列表"
// @Router /history [get]
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Load())
}

// ClearHistory 清空分析历史
// @Summary 清空分析历史
// @Description 清空全部历史记录
// @Tags 历史
// @Produce json
// @Success 200 {object} Response "清空成功"
// @Failure 500 {object} Response "写入失败"
// @Router /clear-history [delete]
func (h *HistoryHandler) ClearHistory(c *gin.Context) {
	if err := h.store.Clear(); err != nil {
		InternalError(c, SafeErrorMessage(err, "清空历史失败"))
		return
	}
	SuccessWithMessage(c, "历史已清空")
}

// ExportCSV 导出分析历史为 CSV
// @Summary 导出分析历史为 CSV
// @Description 导出全部历史记录为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Success 200 {file} file "CSV 文件"
// @Failure 500 {object} Response "生成失败"
// @Router /history/export/csv [get]
func (h *HistoryHandler) ExportCSV(c *gin.Context) {
	records := h.store.Load()

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"序号", "文本", "标签", "分数", "语言", "时间"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	for i, rec := range records {
		row := []string{
			fmt.Sprintf("%d", i+1),
			rec.Text,
			rec.Label,
			fmt.Sprintf("%.2f", rec.Score),
			rec.Language,
			rec.Timestamp,
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("history_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出分析历史为 Excel
// @Summary 导出分析历史为 Excel
// @Description 导出全部历史记录为 xlsx 文件
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Excel 文件"
// @Failure 500 {object} Response "生成失败"
// @Router /history/export/excel [get]
func (h *HistoryHandler) ExportExcel(c *gin.Context) {
	records := h.store.Load()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "分析历史"
	f.SetSheetName("Sheet1", sheetName)

	// 表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 60)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 10)
	f.SetColWidth(sheetName, "E", "E", 14)
	f.SetColWidth(sheetName, "F", "F", 22)

	// 写入表头
	headers := []string{"序号", "文本", "标签", "分数", "语言", "时间"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 写入数据
	for i, rec := range records {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), rec.Text)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), rec.Label)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), rec.Score)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), rec.Language)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), rec.Timestamp)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), dataStyle)
	}

	// 设置响应头
	filename := fmt.Sprintf("分析历史_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}
