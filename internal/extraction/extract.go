// Package extraction turns raw resume text into a structured CandidateProfile.
// The model path asks the LLM for a strictly-shaped JSON document; any failure
// (network, malformed response, schema mismatch) falls back to a deterministic
// heuristic so extraction never fails outward.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/prompts"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// ErrEmptyResume is returned when the input text is empty or whitespace.
// This is the only error Extract can return; everything else degrades to
// the fallback path.
type ErrEmptyResume struct{}

func (e *ErrEmptyResume) Error() string {
	return "resume text is empty"
}

// Extractor runs the profile extraction stage. The client is shared and safe
// for concurrent use; a nil client skips the model path entirely.
type Extractor struct {
	client llm.Client
}

// New creates an Extractor backed by the given LLM client.
func New(client llm.Client) *Extractor {
	return &Extractor{client: client}
}

// Extract parses resume text into a CandidateProfile. The returned Source
// records whether the model or the fallback heuristic produced the result.
func (e *Extractor) Extract(ctx context.Context, resumeText string) (*types.CandidateProfile, types.Source, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, "", &ErrEmptyResume{}
	}

	profile, err := e.fromModel(ctx, resumeText)
	if err != nil {
		log.Printf("[extraction] model path failed, using fallback: %v", err)
		return FallbackExtract(resumeText), types.SourceFallback, nil
	}

	return profile, types.SourceModel, nil
}

// fromModel issues the extraction call and gates the response through the
// profile schema. No partial acceptance: a response that deviates from the
// expected shape is rejected whole.
func (e *Extractor) fromModel(ctx context.Context, resumeText string) (*types.CandidateProfile, error) {
	if e.client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}

	template := prompts.MustGet("extraction.json", "extract-profile")
	prompt := prompts.Format(template, map[string]string{
		"ResumeText": resumeText,
	})

	responseText, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return ParseProfileResponse(responseText)
}

// ParseProfileResponse validates a model response against the profile schema
// and deserializes it. Exposed for the pipeline tests.
func ParseProfileResponse(responseText string) (*types.CandidateProfile, error) {
	if err := schemas.Validate(schemas.Profile, responseText); err != nil {
		return nil, err
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal([]byte(responseText), &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	profile.Normalize()
	return &profile, nil
}
