package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/market"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Resume is a stored resume upload.
type Resume struct {
	ID           uuid.UUID `json:"id"`
	UserID       *string   `json:"user_id,omitempty"`
	Filename     string    `json:"filename"`
	OriginalText string    `json:"original_text"`
	FileType     string    `json:"file_type"`
	FileSize     int       `json:"file_size"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// NewResume carries the fields needed to insert a resume.
type NewResume struct {
	UserID       *string
	Filename     string
	OriginalText string
	FileType     string
	FileSize     int
}

// Analysis is a stored analysis run for a resume.
type Analysis struct {
	ID               uuid.UUID               `json:"id"`
	ResumeID         uuid.UUID               `json:"resume_id"`
	SeniorityLevel   string                  `json:"seniority_level"`
	ExperienceYears  float64                 `json:"experience_years"`
	DominantDomain   string                  `json:"dominant_domain"`
	DomainConfidence float64                 `json:"domain_confidence"`
	ATSScore         int                     `json:"ats_score"`
	Skills           types.SkillsSummary     `json:"skills"`
	Recommendations  types.RecommendationSet `json:"recommendations"`
	OptimizedContent string                  `json:"optimized_content"`
	MarketSalary     *market.Salary          `json:"market_salary,omitempty"`
	DegradedStages   []string                `json:"degraded_stages"`
	CreatedAt        time.Time               `json:"created_at"`
}

// NewAnalysis carries the fields needed to insert an analysis.
type NewAnalysis struct {
	ResumeID         uuid.UUID
	SeniorityLevel   string
	ExperienceYears  float64
	DominantDomain   string
	DomainConfidence float64
	ATSScore         int
	Skills           types.SkillsSummary
	Recommendations  types.RecommendationSet
	OptimizedContent string
	MarketSalary     *market.Salary
	DegradedStages   []string
}

// SalaryRange is the advertised compensation band on a job posting.
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// JobPosting is a stored job posting associated with an analysis.
type JobPosting struct {
	ID             uuid.UUID    `json:"id"`
	AnalysisID     uuid.UUID    `json:"analysis_id"`
	Title          string       `json:"title"`
	Company        string       `json:"company"`
	Location       string       `json:"location"`
	Domain         string       `json:"domain"`
	SeniorityLevel string       `json:"seniority_level"`
	Requirements   []string     `json:"requirements"`
	SalaryRange    *SalaryRange `json:"salary_range,omitempty"`
	Source         string       `json:"source"`
	ScrapedAt      time.Time    `json:"scraped_at"`
}

// NewJobPosting carries the fields needed to insert a job posting.
type NewJobPosting struct {
	AnalysisID     uuid.UUID
	Title          string
	Company        string
	Location       string
	Domain         string
	SeniorityLevel string
	Requirements   []string
	SalaryRange    *SalaryRange
	Source         string
}
