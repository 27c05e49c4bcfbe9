// Package pipeline orchestrates the three analysis stages over a resume:
// profile extraction, domain classification, and optimization generation.
// The stages run strictly in order because each consumes the previous
// stage's output.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/classification"
	"github.com/jonathan/resume-optimizer/internal/db"
	"github.com/jonathan/resume-optimizer/internal/extraction"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/market"
	"github.com/jonathan/resume-optimizer/internal/optimization"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Store is the subset of the database layer the pipeline writes to.
type Store interface {
	CreateResume(ctx context.Context, resume db.NewResume) (*db.Resume, error)
	CreateAnalysis(ctx context.Context, analysis db.NewAnalysis) (*db.Analysis, error)
}

// Result is the outcome of one full analysis run. ResumeID and AnalysisID are
// zero when the run was not persisted.
type Result struct {
	ResumeID       uuid.UUID                   `json:"resumeId"`
	AnalysisID     uuid.UUID                   `json:"analysisId"`
	Profile        *types.CandidateProfile     `json:"profile"`
	Classification *types.DomainClassification `json:"classification"`
	Optimization   *types.OptimizationResult   `json:"optimization"`
	MarketSalary   market.Salary               `json:"marketSalary"`
	// Degraded lists the stages whose model path failed and whose result
	// came from the deterministic fallback instead, in pipeline order.
	Degraded []string `json:"degraded"`
}

// Analyzer runs the end-to-end resume analysis pipeline.
type Analyzer struct {
	extractor  *extraction.Extractor
	classifier *classification.Classifier
	generator  *optimization.Generator
	store      Store
}

// New creates an Analyzer. store may be nil, in which case results are
// computed but not persisted (the CLI path).
func New(client llm.Client, store Store) *Analyzer {
	return &Analyzer{
		extractor:  extraction.New(client),
		classifier: classification.New(client),
		generator:  optimization.New(client),
		store:      store,
	}
}

// Analyze runs extraction, classification, and optimization over the request's
// resume text, then persists the upload and the analysis when a store is
// configured. The only hard failures are an empty resume, an invalid request,
// and persistence errors; stage-level model failures degrade to fallbacks and
// are reported in Result.Degraded.
func (a *Analyzer) Analyze(ctx context.Context, req types.AnalyzeRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analyze request: %w", err)
	}

	result := &Result{Degraded: []string{}}

	profile, source, err := a.extractor.Extract(ctx, req.ResumeText)
	if err != nil {
		return nil, err
	}
	result.Profile = profile
	if source == types.SourceFallback {
		result.Degraded = append(result.Degraded, types.StageExtraction)
	}

	classificationResult, source := a.classifier.Classify(ctx, profile)
	result.Classification = classificationResult
	if source == types.SourceFallback {
		result.Degraded = append(result.Degraded, types.StageClassification)
	}

	optimizationResult, source := a.generator.Generate(ctx, profile, classificationResult, req.TargetDomain)
	result.Optimization = optimizationResult
	if source == types.SourceFallback {
		result.Degraded = append(result.Degraded, types.StageOptimization)
	}

	result.MarketSalary = market.EstimateSalary()

	if a.store == nil {
		return result, nil
	}

	if err := a.persist(ctx, req, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (a *Analyzer) persist(ctx context.Context, req types.AnalyzeRequest, result *Result) error {
	var userID *string
	if req.UserID != "" {
		userID = &req.UserID
	}

	resume, err := a.store.CreateResume(ctx, db.NewResume{
		UserID:       userID,
		Filename:     req.Filename,
		OriginalText: req.ResumeText,
		FileType:     req.FileType,
		FileSize:     req.FileSize,
	})
	if err != nil {
		return fmt.Errorf("failed to store resume: %w", err)
	}
	result.ResumeID = resume.ID

	var dominantConfidence float64
	if len(result.Classification.Domains) > 0 {
		dominantConfidence = result.Classification.Domains[0].Confidence
	}

	salary := result.MarketSalary
	analysis, err := a.store.CreateAnalysis(ctx, db.NewAnalysis{
		ResumeID:         resume.ID,
		SeniorityLevel:   string(result.Classification.SeniorityLevel),
		ExperienceYears:  result.Classification.ExperienceYears,
		DominantDomain:   result.Classification.DominantDomain(),
		DomainConfidence: dominantConfidence,
		ATSScore:         result.Classification.ATSScore,
		Skills: types.SkillsSummary{
			Current:     result.Profile.Skills,
			ToHighlight: result.Optimization.SkillsToHighlight,
			InDemand:    result.Optimization.SkillsInDemand,
		},
		Recommendations: types.RecommendationSet{
			Key:     result.Optimization.KeyRecommendations,
			Content: result.Optimization.ContentSuggestions,
		},
		OptimizedContent: result.Optimization.OptimizedResume,
		MarketSalary:     &salary,
		DegradedStages:   result.Degraded,
	})
	if err != nil {
		return fmt.Errorf("failed to store analysis: %w", err)
	}
	result.AnalysisID = analysis.ID

	log.Printf("[pipeline] stored analysis %s for resume %s (degraded stages: %d)",
		analysis.ID, resume.ID, len(result.Degraded))

	return nil
}
