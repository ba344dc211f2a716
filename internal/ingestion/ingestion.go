// Package ingestion reads résumé and job posting documents from disk
// and reduces them to the plain text the extraction stage works on.
// PDF and DOCX files are supported alongside plain text.
package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// UnsupportedFormatError is returned for file extensions the reader
// does not understand.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q for %s (supported: .pdf, .docx, .txt)", e.Extension, e.Path)
}

// ExtractText reads the file at path and returns its cleaned plain
// text. The format is chosen by extension.
func ExtractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var text string
	switch ext {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDocx(data)
	case ".txt", ".md", ".text":
		text = string(data)
	default:
		return "", &UnsupportedFormatError{Path: path, Extension: ext}
	}
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
	}

	text = CleanText(text)
	if text == "" {
		return "", fmt.Errorf("no text content found in %s", path)
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

var docxTag = regexp.MustCompile(`<[^>]+>`)

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	// GetContent returns document XML; paragraph closes become line
	// breaks before tags are stripped.
	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	return docxTag.ReplaceAllString(content, ""), nil
}
