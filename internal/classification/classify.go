// Package classification derives career-domain matches, seniority, and an
// ATS-compatibility score from a structured candidate profile. Like the other
// pipeline stages it has a model path gated by strict schema validation and a
// deterministic keyword-scoring fallback.
package classification

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

// Classifier runs the domain/seniority classification stage.
type Classifier struct {
	client llm.Client
}

// New creates a Classifier backed by the given LLM client.
func New(client llm.Client) *Classifier {
	return &Classifier{client: client}
}

// Classify produces a DomainClassification for the profile. The returned
// Source records which path produced the result. Classify never fails: any
// model-path error degrades to the fallback heuristic.
func (c *Classifier) Classify(ctx context.Context, profile *types.CandidateProfile) (*types.DomainClassification, types.Source) {
	classification, err := c.fromModel(ctx, profile)
	if err != nil {
		log.Printf("[classification] model path failed, using fallback: %v", err)
		return FallbackClassify(profile), types.SourceFallback
	}

	return classification, types.SourceModel
}

func (c *Classifier) fromModel(ctx context.Context, profile *types.CandidateProfile) (*types.DomainClassification, error) {
	if c.client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}

	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize profile: %w", err)
	}

	template := prompts.MustGet("classification.json", "classify-profile")
	prompt := prompts.Format(template, map[string]string{
		"ProfileJSON": string(profileJSON),
	})

	responseText, err := c.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return ParseClassificationResponse(responseText)
}

// ParseClassificationResponse validates a model response against the
// classification schema and deserializes it. The seniority enum and domain
// presence are enforced by the schema; confidences and the ATS score are
// clamped into [0,100] afterwards.
func ParseClassificationResponse(responseText string) (*types.DomainClassification, error) {
	if err := schemas.Validate(schemas.Classification, responseText); err != nil {
		return nil, err
	}

	var classification types.DomainClassification
	if err := json.Unmarshal([]byte(responseText), &classification); err != nil {
		return nil, fmt.Errorf("failed to parse classification JSON: %w", err)
	}

	if !classification.SeniorityLevel.Valid() {
		return nil, fmt.Errorf("invalid seniority level %q", classification.SeniorityLevel)
	}

	classification.Normalize()
	return &classification, nil
}
