// File: internal/resume/extract.go
package resume

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"gethired/internal/apperr"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

// runCommand 執行外部工具 (tesseract / pdftoppm / antiword) 並回傳 stdout
var runCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

var supportedFormats = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".txt":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Supported 副檔名不分大小寫
func Supported(filename string) bool {
	return supportedFormats[strings.ToLower(filepath.Ext(filename))]
}

// Extractor 依副檔名選擇文字擷取方式
type Extractor struct {
	tempDir string
}

// NewExtractor tempDir 為空時使用 os.TempDir()
func NewExtractor(tempDir string) *Extractor {
	return &Extractor{tempDir: tempDir}
}

// Extract 上傳內容先寫入暫存檔，任何結束路徑都會刪除暫存檔
func (e *Extractor) Extract(ctx context.Context, filename string, content io.Reader) (string, error) {
	suffix := strings.ToLower(filepath.Ext(filename))
	if !supportedFormats[suffix] {
		return "", apperr.ErrUnsupportedFormat
	}

	tmp, err := os.CreateTemp(e.tempDir, "resume-*"+suffix)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	var text string
	switch suffix {
	case ".pdf":
		text, err = e.extractPDF(ctx, tmpPath)
	case ".docx":
		text, err = extractDOCX(tmpPath)
	case ".doc":
		text, err = extractDOC(ctx, tmpPath)
	case ".txt":
		text, err = extractTXT(tmpPath)
	default:
		text, err = ocrImage(ctx, tmpPath)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrExtractionFailed, err)
	}
	return text, nil
}

// extractPDF 直接擷取文字，結果為空時改用 OCR
func (e *Extractor) extractPDF(ctx context.Context, path string) (string, error) {
	text, directErr := pdfText(path)
	if directErr == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	ocr, err := e.ocrPDF(ctx, path)
	if err != nil {
		if directErr != nil {
			return "", fmt.Errorf("pdf text: %v; ocr: %w", directErr, err)
		}
		return "", err
	}
	return ocr, nil
}

func pdfText(path string) (text string, err error) {
	// 損毀的 PDF 可能讓解析器 panic
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ocrPDF 以 pdftoppm 逐頁轉成 PNG 再交給 tesseract
func (e *Extractor) ocrPDF(ctx context.Context, path string) (string, error) {
	dir, err := os.MkdirTemp(e.tempDir, "resume-pages-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)

	prefix := filepath.Join(dir, "page")
	if _, err := runCommand(ctx, "pdftoppm", "-png", "-r", "300", path, prefix); err != nil {
		return "", err
	}
	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return "", err
	}
	sort.Strings(pages)

	var sb strings.Builder
	for _, page := range pages {
		text, err := ocrImage(ctx, page)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func ocrImage(ctx context.Context, path string) (string, error) {
	out, err := runCommand(ctx, "tesseract", path, "stdout")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// extractDOC 副檔名為 .doc 但實際是 DOCX 的檔案很常見，先嘗試 DOCX 解析
func extractDOC(ctx context.Context, path string) (string, error) {
	if isZip(path) {
		if text, err := extractDOCX(path); err == nil {
			return text, nil
		}
	}
	out, err := runCommand(ctx, "antiword", path)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func isZip(path string) bool {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return false
	}
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("application/zip") {
			return true
		}
	}
	return false
}

// extractTXT 以 UTF-8 讀取，無效位元組直接丟棄
func extractTXT(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(b), ""), nil
}
