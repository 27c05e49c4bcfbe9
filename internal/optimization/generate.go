// Package optimization produces prioritized recommendations, skill-gap lists,
// content rewrites, and a rewritten resume from a candidate profile and its
// domain classification.
package optimization

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/prompts"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// defaultTargetDomain is used when neither the caller nor the classification
// supplies a domain.
const defaultTargetDomain = "B2B SaaS"

// Generator runs the optimization stage.
type Generator struct {
	client llm.Client
}

// New creates a Generator backed by the given LLM client.
func New(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate produces an OptimizationResult. targetDomain may be empty; the
// default chain is caller value, then the top classified domain, then
// "B2B SaaS". Generate never fails: any model-path error degrades to the
// fallback.
func (g *Generator) Generate(ctx context.Context, profile *types.CandidateProfile, classification *types.DomainClassification, targetDomain string) (*types.OptimizationResult, types.Source) {
	domain := resolveTargetDomain(targetDomain, classification)

	result, err := g.fromModel(ctx, profile, classification, domain)
	if err != nil {
		log.Printf("[optimization] model path failed, using fallback: %v", err)
		return FallbackGenerate(profile, classification), types.SourceFallback
	}

	return result, types.SourceModel
}

func resolveTargetDomain(targetDomain string, classification *types.DomainClassification) string {
	if targetDomain != "" {
		return targetDomain
	}
	if dominant := classification.DominantDomain(); dominant != "" {
		return dominant
	}
	return defaultTargetDomain
}

func (g *Generator) fromModel(ctx context.Context, profile *types.CandidateProfile, classification *types.DomainClassification, targetDomain string) (*types.OptimizationResult, error) {
	if g.client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}

	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize profile: %w", err)
	}
	analysisJSON, err := json.MarshalIndent(classification, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize classification: %w", err)
	}

	template := prompts.MustGet("optimization.json", "generate-optimizations")
	prompt := prompts.Format(template, map[string]string{
		"TargetDomain": targetDomain,
		"ProfileJSON":  string(profileJSON),
		"AnalysisJSON": string(analysisJSON),
	})

	responseText, err := g.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return ParseOptimizationResponse(responseText)
}

// ParseOptimizationResponse validates a model response against the
// optimization schema and deserializes it.
func ParseOptimizationResponse(responseText string) (*types.OptimizationResult, error) {
	if err := schemas.Validate(schemas.Optimization, responseText); err != nil {
		return nil, err
	}

	var result types.OptimizationResult
	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		return nil, fmt.Errorf("failed to parse optimization JSON: %w", err)
	}

	result.Normalize()
	return &result, nil
}
