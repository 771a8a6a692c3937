// Package resume extracts plain text from uploaded resume files.
package resume

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var ErrUnsupportedType = errors.New("unsupported file type")

const (
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// MaxSize caps resume uploads at 5MB.
const MaxSize = 5 * 1024 * 1024

// Supported reports whether a content type is accepted for upload.
func Supported(contentType string) bool {
	switch {
	case contentType == MimePDF:
		return true
	case contentType == MimeDocx:
		return true
	case strings.HasPrefix(contentType, "text/"):
		return true
	}
	return false
}

// ExtractText pulls plain text out of the uploaded file based on its
// declared content type.
func ExtractText(data []byte, contentType string) (string, error) {
	switch {
	case contentType == MimePDF:
		return extractPDF(data)
	case contentType == MimeDocx:
		return extractDocx(data)
	case strings.HasPrefix(contentType, "text/"):
		return string(data), nil
	}
	return "", ErrUnsupportedType
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}

var xmlTag = regexp.MustCompile(`<[^>]+>`)

func extractDocx(data []byte) (string, error) {
	d, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer d.Close()

	// GetContent returns the raw document XML; paragraph tags become spaces
	// so adjacent runs do not fuse into one token.
	content := d.Editable().GetContent()
	text := xmlTag.ReplaceAllString(content, " ")
	return strings.TrimSpace(text), nil
}
