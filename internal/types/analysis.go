package types

import (
	"github.com/go-playground/validator/v10"
)

// Source records which path produced a stage result.
type Source string

// Result provenance values.
const (
	// SourceModel means the result came from the generative model.
	SourceModel Source = "model"
	// SourceFallback means the model path failed and the deterministic
	// heuristic produced the result instead.
	SourceFallback Source = "fallback"
)

// Stage names used in provenance reporting.
const (
	StageExtraction     = "extraction"
	StageClassification = "classification"
	StageOptimization   = "optimization"
)

// SkillsSummary groups the candidate's current skills with the skills the
// optimizer suggests emphasizing or acquiring.
type SkillsSummary struct {
	Current     []string `json:"current"`
	ToHighlight []string `json:"toHighlight"`
	InDemand    []string `json:"inDemand"`
}

// RecommendationSet groups key recommendations with section-level rewrites.
type RecommendationSet struct {
	Key     []Recommendation    `json:"key"`
	Content []ContentSuggestion `json:"content"`
}

// AnalyzeRequest is the input to a full pipeline run. ResumeText must already
// be decoded from the source file format.
type AnalyzeRequest struct {
	Filename     string `json:"filename" validate:"required,min=1"`
	FileType     string `json:"file_type" validate:"required,min=1"`
	FileSize     int    `json:"file_size" validate:"gte=0"`
	ResumeText   string `json:"resume_text" validate:"required,min=1"`
	TargetDomain string `json:"target_domain,omitempty"`
	UserID       string `json:"user_id,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
