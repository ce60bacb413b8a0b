package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText 从上传落盘的临时文件中按扩展名提取纯文本
// ext 为小写、不带点的扩展名（txt/pdf/docx），其它值直接拒绝
// 临时文件的创建与删除由调用方负责；本函数不关心提取结果是否为空白
func ExtractText(path, ext string) (string, error) {
	var (
		text string
		err  error
	)
	switch ext {
	case "txt":
		text, err = extractTXT(path)
	case "pdf":
		text, err = extractPDF(path)
	case "docx":
		text, err = extractDOCX(path)
	default:
		err = fmt.Errorf("不支持的文件类型: %s", ext)
	}
	if err != nil {
		return "", fmt.Errorf("文本提取失败: %w", err)
	}
	return text, nil
}

// extractTXT 按 UTF-8 解码，非法字节序列直接丢弃而不报错
func extractTXT(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("读取文件失败: %w", err)
	}
	return strings.ToValidUTF8(string(raw), ""), nil
}

// extractPDF 按页序拼接各页文本，没有可提取文本的页跳过
func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("打开 PDF 失败: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// extractDOCX 解出 word/document.xml，按文档顺序拼接段落文本
// 空白段落跳过，段落间用换行分隔
func extractDOCX(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("读取文件失败: %w", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("打开 docx 失败: %w", err)
	}

	var xmlData []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, openErr := f.Open()
			if openErr != nil {
				return "", fmt.Errorf("打开 document.xml 失败: %w", openErr)
			}
			xmlData, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("读取 document.xml 失败: %w", err)
			}
			break
		}
	}
	if len(xmlData) == 0 {
		return "", fmt.Errorf("docx 中缺少 word/document.xml")
	}

	decoder := xml.NewDecoder(bytes.NewReader(xmlData))
	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	flush := func() {
		if p := strings.TrimSpace(current.String()); p != "" {
			paragraphs = append(paragraphs, p)
		}
		current.Reset()
	}
	for {
		tok, tokenErr := decoder.Token()
		if tokenErr == io.EOF {
			break
		}
		if tokenErr != nil {
			return "", fmt.Errorf("解析 document.xml 失败: %w", tokenErr)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				flush()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	flush()
	return strings.Join(paragraphs, "\n"), nil
}
