package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// CreateJobPosting inserts a job posting tied to an analysis.
func (db *DB) CreateJobPosting(ctx context.Context, posting NewJobPosting) (*JobPosting, error) {
	requirements := posting.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	requirementsJSON, err := json.Marshal(requirements)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal requirements: %w", err)
	}

	var salaryJSON []byte
	if posting.SalaryRange != nil {
		salaryJSON, err = json.Marshal(posting.SalaryRange)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal salary range: %w", err)
		}
	}

	query := `
		INSERT INTO job_postings (
			analysis_id, title, company, location, domain,
			seniority_level, requirements, salary_range, source
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, scraped_at
	`

	stored := JobPosting{
		AnalysisID:     posting.AnalysisID,
		Title:          posting.Title,
		Company:        posting.Company,
		Location:       posting.Location,
		Domain:         posting.Domain,
		SeniorityLevel: posting.SeniorityLevel,
		Requirements:   requirements,
		SalaryRange:    posting.SalaryRange,
		Source:         posting.Source,
	}

	err = db.pool.QueryRow(ctx, query,
		posting.AnalysisID,
		posting.Title,
		posting.Company,
		posting.Location,
		posting.Domain,
		posting.SeniorityLevel,
		requirementsJSON,
		salaryJSON,
		posting.Source,
	).Scan(&stored.ID, &stored.ScrapedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create job posting: %w", err)
	}

	return &stored, nil
}

// ListJobPostingsByAnalysis fetches all job postings for an analysis, newest
// first. Returns an empty slice when none exist.
func (db *DB) ListJobPostingsByAnalysis(ctx context.Context, analysisID uuid.UUID) ([]JobPosting, error) {
	query := `
		SELECT id, analysis_id, title, company, location, domain,
			seniority_level, requirements, salary_range, source, scraped_at
		FROM job_postings
		WHERE analysis_id = $1
		ORDER BY scraped_at DESC
	`

	rows, err := db.pool.Query(ctx, query, analysisID)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	postings := []JobPosting{}
	for rows.Next() {
		var posting JobPosting
		var requirementsJSON, salaryJSON []byte

		err := rows.Scan(
			&posting.ID,
			&posting.AnalysisID,
			&posting.Title,
			&posting.Company,
			&posting.Location,
			&posting.Domain,
			&posting.SeniorityLevel,
			&requirementsJSON,
			&salaryJSON,
			&posting.Source,
			&posting.ScrapedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}

		if err := json.Unmarshal(requirementsJSON, &posting.Requirements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal requirements: %w", err)
		}
		if len(salaryJSON) > 0 {
			var salary SalaryRange
			if err := json.Unmarshal(salaryJSON, &salary); err != nil {
				return nil, fmt.Errorf("failed to unmarshal salary range: %w", err)
			}
			posting.SalaryRange = &salary
		}

		postings = append(postings, posting)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job postings: %w", err)
	}

	return postings, nil
}
