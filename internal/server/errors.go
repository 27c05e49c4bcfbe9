package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/export"
	"github.com/jonathan/resume-optimizer/internal/extraction"
	"github.com/jonathan/resume-optimizer/internal/ingestion"
)

// ErrResumeNotFound indicates the requested resume does not exist
type ErrResumeNotFound struct {
	ID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ID)
}

// ErrAnalysisNotFound indicates the requested analysis does not exist
type ErrAnalysisNotFound struct {
	ID uuid.UUID
}

func (e *ErrAnalysisNotFound) Error() string {
	return fmt.Sprintf("analysis not found: %s", e.ID)
}

// ErrInvalidID indicates a path parameter that is not a valid UUID
type ErrInvalidID struct {
	Value string
}

func (e *ErrInvalidID) Error() string {
	return fmt.Sprintf("invalid id: %s", e.Value)
}

// ErrMissingFile indicates a multipart upload without a resume file part
type ErrMissingFile struct{}

func (e *ErrMissingFile) Error() string {
	return "missing resume file"
}

// ErrFileTooLarge indicates an upload exceeding the size limit
type ErrFileTooLarge struct {
	Limit int64
}

func (e *ErrFileTooLarge) Error() string {
	return fmt.Sprintf("file exceeds size limit of %d bytes", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrResumeNotFound, *ErrAnalysisNotFound:
		return http.StatusNotFound
	case *ErrInvalidID, *ErrMissingFile, *export.ErrUnsupportedFormat, *extraction.ErrEmptyResume:
		return http.StatusBadRequest
	case *ErrFileTooLarge:
		return http.StatusRequestEntityTooLarge
	case *ingestion.ErrUnsupportedFileType:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
