package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateResume inserts a resume upload and returns the stored record.
func (db *DB) CreateResume(ctx context.Context, resume NewResume) (*Resume, error) {
	query := `
		INSERT INTO resumes (user_id, filename, original_text, file_type, file_size)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, uploaded_at
	`

	stored := Resume{
		UserID:       resume.UserID,
		Filename:     resume.Filename,
		OriginalText: resume.OriginalText,
		FileType:     resume.FileType,
		FileSize:     resume.FileSize,
	}

	err := db.pool.QueryRow(ctx, query,
		resume.UserID,
		resume.Filename,
		resume.OriginalText,
		resume.FileType,
		resume.FileSize,
	).Scan(&stored.ID, &stored.UploadedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}

	return &stored, nil
}

// GetResume fetches a resume by id. Returns (nil, nil) when no row exists.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	query := `
		SELECT id, user_id, filename, original_text, file_type, file_size, uploaded_at
		FROM resumes
		WHERE id = $1
	`

	var resume Resume
	err := db.pool.QueryRow(ctx, query, id).Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Filename,
		&resume.OriginalText,
		&resume.FileType,
		&resume.FileSize,
		&resume.UploadedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	return &resume, nil
}
