// Package ingestion decodes uploaded resume files into plain text before the
// analysis pipeline runs.
package ingestion

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MaxUploadBytes is the upload size limit for resume files.
const MaxUploadBytes = 5 * 1024 * 1024

// MIME types accepted for resume uploads.
const (
	MimePlainText = "text/plain"
	MimeHTML      = "text/html"
	MimePDF       = "application/pdf"
	MimeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupportedFileType indicates an upload with a MIME type the ingester
// cannot decode.
type ErrUnsupportedFileType struct {
	MimeType string
}

func (e *ErrUnsupportedFileType) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.MimeType)
}

// ExtractText decodes an uploaded file into cleaned resume text based on its
// MIME type. Parameters such as "text/plain; charset=utf-8" are tolerated.
func ExtractText(mimeType string, data []byte) (string, error) {
	base := strings.TrimSpace(strings.Split(mimeType, ";")[0])

	var text string
	var err error
	switch base {
	case MimePlainText:
		text = string(data)
	case MimeHTML:
		text, err = extractHTMLText(bytes.NewReader(data))
	case MimePDF:
		text, err = extractPDFText(bytes.NewReader(data), int64(len(data)))
	case MimeDOCX:
		text, err = extractDocxText(data)
	default:
		return "", &ErrUnsupportedFileType{MimeType: mimeType}
	}
	if err != nil {
		return "", err
	}

	return CleanText(text), nil
}

func extractPDFText(reader io.ReaderAt, size int64) (string, error) {
	pdfReader, err := pdf.NewReader(reader, size)
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}

// extractHTMLText strips markup from an HTML resume, keeping block-level
// structure as line breaks.
func extractHTMLText(reader io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, div, br").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Clone().Children().Remove().End().Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	// Flat documents with bare text nodes only.
	if sb.Len() == 0 {
		return doc.Text(), nil
	}

	return sb.String(), nil
}
