package resume

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gethired/internal/apperr"

	"github.com/stretchr/testify/require"
)

var defaultRunCommand = runCommand

func restoreGlobals() {
	runCommand = defaultRunCommand
}

func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`))
	require.NoError(t, err)
	w, err = zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func requireEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestSupported(t *testing.T) {
	for _, name := range []string{"cv.pdf", "cv.DOCX", "cv.doc", "cv.txt", "cv.JPG", "cv.jpeg", "cv.png"} {
		require.True(t, Supported(name), name)
	}
	for _, name := range []string{"cv.exe", "cv", "cv.rtf", "pdf"} {
		require.False(t, Supported(name), name)
	}
}

func TestExtractUnsupported(t *testing.T) {
	dir := t.TempDir()
	_, err := NewExtractor(dir).Extract(context.Background(), "malware.exe", strings.NewReader("MZ"))
	require.ErrorIs(t, err, apperr.ErrUnsupportedFormat)
	requireEmptyDir(t, dir)
}

func TestExtractTXT(t *testing.T) {
	dir := t.TempDir()
	text, err := NewExtractor(dir).Extract(context.Background(), "cv.TXT", bytes.NewReader([]byte("Go dev\xff\xfe eloper")))
	require.NoError(t, err)
	require.Equal(t, "Go dev eloper", text)
	requireEmptyDir(t, dir)

	text, err = NewExtractor(dir).Extract(context.Background(), "empty.txt", bytes.NewReader(nil))
	require.NoError(t, err)
	require.Empty(t, text)
	requireEmptyDir(t, dir)
}

func TestExtractDOCX(t *testing.T) {
	dir := t.TempDir()
	doc := buildDOCX(t, `<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t xml:space="preserve">   </w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t>Go</w:t></w:r><w:r><w:t>, SQL</w:t></w:r></w:p>`)

	text, err := NewExtractor(dir).Extract(context.Background(), "cv.docx", bytes.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, "Jane Doe\nSkills:\tGo, SQL", text)
	requireEmptyDir(t, dir)

	_, err = NewExtractor(dir).Extract(context.Background(), "broken.docx", strings.NewReader("not a zip"))
	require.ErrorIs(t, err, apperr.ErrExtractionFailed)
	requireEmptyDir(t, dir)
}

func TestExtractDOC(t *testing.T) {
	t.Cleanup(restoreGlobals)
	dir := t.TempDir()

	// 實際是 DOCX 的 .doc 不需要外部工具
	runCommand = func(context.Context, string, ...string) ([]byte, error) {
		t.Fatal("unexpected command")
		return nil, nil
	}
	doc := buildDOCX(t, `<w:p><w:r><w:t>Mislabelled</w:t></w:r></w:p>`)
	text, err := NewExtractor(dir).Extract(context.Background(), "cv.doc", bytes.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, "Mislabelled", text)

	var gotName string
	runCommand = func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		require.Len(t, args, 1)
		require.FileExists(t, args[0])
		return []byte("legacy word text"), nil
	}
	text, err = NewExtractor(dir).Extract(context.Background(), "cv.doc", strings.NewReader("\xd0\xcf\x11\xe0 legacy"))
	require.NoError(t, err)
	require.Equal(t, "antiword", gotName)
	require.Equal(t, "legacy word text", text)

	runCommand = func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("antiword: executable file not found")
	}
	_, err = NewExtractor(dir).Extract(context.Background(), "cv.doc", strings.NewReader("legacy"))
	require.ErrorIs(t, err, apperr.ErrExtractionFailed)
	requireEmptyDir(t, dir)
}

func TestExtractImage(t *testing.T) {
	t.Cleanup(restoreGlobals)
	dir := t.TempDir()

	runCommand = func(_ context.Context, name string, args ...string) ([]byte, error) {
		require.Equal(t, "tesseract", name)
		require.Equal(t, "stdout", args[1])
		require.True(t, strings.HasSuffix(args[0], ".png"))
		return []byte("scanned resume"), nil
	}
	text, err := NewExtractor(dir).Extract(context.Background(), "scan.PNG", strings.NewReader("\x89PNG"))
	require.NoError(t, err)
	require.Equal(t, "scanned resume", text)
	requireEmptyDir(t, dir)

	runCommand = func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("tesseract crashed")
	}
	_, err = NewExtractor(dir).Extract(context.Background(), "scan.jpg", strings.NewReader("jpg"))
	require.ErrorIs(t, err, apperr.ErrExtractionFailed)
	requireEmptyDir(t, dir)
}

func TestExtractPDFFallsBackToOCR(t *testing.T) {
	t.Cleanup(restoreGlobals)
	dir := t.TempDir()

	var calls []string
	runCommand = func(_ context.Context, name string, args ...string) ([]byte, error) {
		calls = append(calls, name)
		switch name {
		case "pdftoppm":
			prefix := args[len(args)-1]
			for _, page := range []string{"-2.png", "-1.png"} {
				require.NoError(t, os.WriteFile(prefix+page, []byte("png"), 0o600))
			}
			return nil, nil
		case "tesseract":
			return []byte("page " + strings.TrimSuffix(filepath.Base(args[0]), ".png") + "\n"), nil
		}
		return nil, errors.New("unexpected " + name)
	}

	// 無法直接擷取文字的 PDF
	text, err := NewExtractor(dir).Extract(context.Background(), "scan.pdf", strings.NewReader("%PDF-1.4 garbage"))
	require.NoError(t, err)
	require.Equal(t, "page page-1\npage page-2\n", text)
	require.Equal(t, []string{"pdftoppm", "tesseract", "tesseract"}, calls)
	requireEmptyDir(t, dir)

	runCommand = func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("pdftoppm: not installed")
	}
	_, err = NewExtractor(dir).Extract(context.Background(), "scan.pdf", strings.NewReader("garbage"))
	require.ErrorIs(t, err, apperr.ErrExtractionFailed)
	requireEmptyDir(t, dir)
}

func TestExtractTempDirMissing(t *testing.T) {
	_, err := NewExtractor(filepath.Join(t.TempDir(), "missing")).Extract(context.Background(), "cv.txt", strings.NewReader("x"))
	require.Error(t, err)
	require.NotErrorIs(t, err, apperr.ErrExtractionFailed)
}
