// Package export renders an optimized resume into a downloadable document.
// Rendering is a per-format strategy so true PDF/DOCX generation can slot in
// later; today every format returns the optimized text unchanged with the
// format's content type.
package export

import (
	"fmt"
)

// Format identifies a supported export format.
type Format string

// Supported export formats.
const (
	FormatPDF  Format = "pdf"
	FormatTXT  Format = "txt"
	FormatDOCX Format = "docx"
)

// Document is a rendered export ready to be served as a download.
type Document struct {
	Data        []byte
	ContentType string
	Filename    string
}

// renderFunc produces a Document from the optimized resume text.
type renderFunc func(content string) *Document

var renderers = map[Format]renderFunc{
	FormatPDF:  renderPDF,
	FormatTXT:  renderTXT,
	FormatDOCX: renderDOCX,
}

// ErrUnsupportedFormat indicates a format with no registered renderer.
type ErrUnsupportedFormat struct {
	Format string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported export format: %s", e.Format)
}

// ParseFormat validates a format string from a request path.
func ParseFormat(s string) (Format, error) {
	format := Format(s)
	if _, ok := renderers[format]; !ok {
		return "", &ErrUnsupportedFormat{Format: s}
	}
	return format, nil
}

// Render produces a document for the given format.
func Render(format Format, optimizedContent string) (*Document, error) {
	renderer, ok := renderers[format]
	if !ok {
		return nil, &ErrUnsupportedFormat{Format: string(format)}
	}
	return renderer(optimizedContent), nil
}

func renderTXT(content string) *Document {
	return &Document{
		Data:        []byte(content),
		ContentType: "text/plain",
		Filename:    "optimized_resume.txt",
	}
}

// TODO: real PDF generation; the text content is returned as-is for now.
func renderPDF(content string) *Document {
	return &Document{
		Data:        []byte(content),
		ContentType: "application/pdf",
		Filename:    "optimized_resume.pdf",
	}
}

// TODO: real DOCX generation; the text content is returned as-is for now.
func renderDOCX(content string) *Document {
	return &Document{
		Data:        []byte(content),
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Filename:    "optimized_resume.docx",
	}
}
