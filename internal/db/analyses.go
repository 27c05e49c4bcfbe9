package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-optimizer/internal/market"
)

// CreateAnalysis inserts an analysis run and returns the stored record.
func (db *DB) CreateAnalysis(ctx context.Context, analysis NewAnalysis) (*Analysis, error) {
	skillsJSON, err := json.Marshal(analysis.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}
	recommendationsJSON, err := json.Marshal(analysis.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	var salaryJSON []byte
	if analysis.MarketSalary != nil {
		salaryJSON, err = json.Marshal(analysis.MarketSalary)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal market salary: %w", err)
		}
	}

	degraded := analysis.DegradedStages
	if degraded == nil {
		degraded = []string{}
	}

	query := `
		INSERT INTO analyses (
			resume_id, seniority_level, experience_years, dominant_domain,
			domain_confidence, ats_score, skills, recommendations,
			optimized_content, market_salary, degraded_stages
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	stored := Analysis{
		ResumeID:         analysis.ResumeID,
		SeniorityLevel:   analysis.SeniorityLevel,
		ExperienceYears:  analysis.ExperienceYears,
		DominantDomain:   analysis.DominantDomain,
		DomainConfidence: analysis.DomainConfidence,
		ATSScore:         analysis.ATSScore,
		Skills:           analysis.Skills,
		Recommendations:  analysis.Recommendations,
		OptimizedContent: analysis.OptimizedContent,
		MarketSalary:     analysis.MarketSalary,
		DegradedStages:   degraded,
	}

	err = db.pool.QueryRow(ctx, query,
		analysis.ResumeID,
		analysis.SeniorityLevel,
		analysis.ExperienceYears,
		analysis.DominantDomain,
		analysis.DomainConfidence,
		analysis.ATSScore,
		skillsJSON,
		recommendationsJSON,
		analysis.OptimizedContent,
		salaryJSON,
		degraded,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis: %w", err)
	}

	return &stored, nil
}

// GetAnalysis fetches an analysis by id. Returns (nil, nil) when no row exists.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	query := `
		SELECT id, resume_id, seniority_level, experience_years, dominant_domain,
			domain_confidence, ats_score, skills, recommendations,
			optimized_content, market_salary, degraded_stages, created_at
		FROM analyses
		WHERE id = $1
	`
	return db.scanAnalysis(db.pool.QueryRow(ctx, query, id))
}

// GetAnalysisByResume fetches the most recent analysis for a resume.
// Returns (nil, nil) when the resume has no analyses.
func (db *DB) GetAnalysisByResume(ctx context.Context, resumeID uuid.UUID) (*Analysis, error) {
	query := `
		SELECT id, resume_id, seniority_level, experience_years, dominant_domain,
			domain_confidence, ats_score, skills, recommendations,
			optimized_content, market_salary, degraded_stages, created_at
		FROM analyses
		WHERE resume_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	return db.scanAnalysis(db.pool.QueryRow(ctx, query, resumeID))
}

func (db *DB) scanAnalysis(row pgx.Row) (*Analysis, error) {
	var analysis Analysis
	var skillsJSON, recommendationsJSON, salaryJSON []byte

	err := row.Scan(
		&analysis.ID,
		&analysis.ResumeID,
		&analysis.SeniorityLevel,
		&analysis.ExperienceYears,
		&analysis.DominantDomain,
		&analysis.DomainConfidence,
		&analysis.ATSScore,
		&skillsJSON,
		&recommendationsJSON,
		&analysis.OptimizedContent,
		&salaryJSON,
		&analysis.DegradedStages,
		&analysis.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if err := json.Unmarshal(skillsJSON, &analysis.Skills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
	}
	if err := json.Unmarshal(recommendationsJSON, &analysis.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recommendations: %w", err)
	}
	if len(salaryJSON) > 0 {
		var salary market.Salary
		if err := json.Unmarshal(salaryJSON, &salary); err != nil {
			return nil, fmt.Errorf("failed to unmarshal market salary: %w", err)
		}
		analysis.MarketSalary = &salary
	}

	return &analysis, nil
}
