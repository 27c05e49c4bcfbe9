package optimization

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/types"
)

type stubClient struct {
	response string
	err      error
}

func (s *stubClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GetModel(_ llm.ModelTier) string { return "stub-model" }
func (s *stubClient) Close() error                    { return nil }

const validOptimizationJSON = `{
	"keyRecommendations": [
		{"title": "Lead with outcomes", "description": "Put results first.", "impact": "High"}
	],
	"skillsToHighlight": ["Design Systems"],
	"skillsInDemand": ["Figma"],
	"contentSuggestions": [
		{"section": "Summary", "current": "Designer", "improved": "Senior designer shipping measurable wins", "reasoning": "specificity"}
	],
	"optimizedResume": "Jane Doe\n..."
}`

func TestGenerate_ModelPath(t *testing.T) {
	generator := New(&stubClient{response: validOptimizationJSON})

	result, source := generator.Generate(context.Background(), baseProfile(), baseClassification(), "")
	assert.Equal(t, types.SourceModel, source)
	require.Len(t, result.KeyRecommendations, 1)
	assert.Equal(t, "Lead with outcomes", result.KeyRecommendations[0].Title)
}

func TestGenerate_ClientErrorFallsBack(t *testing.T) {
	generator := New(&stubClient{err: fmt.Errorf("unavailable")})

	result, source := generator.Generate(context.Background(), baseProfile(), baseClassification(), "")
	assert.Equal(t, types.SourceFallback, source)
	assert.Len(t, result.KeyRecommendations, 4)
}

func TestGenerate_NilClientFallsBack(t *testing.T) {
	generator := New(nil)

	result, source := generator.Generate(context.Background(), baseProfile(), baseClassification(), "Fintech")
	assert.Equal(t, types.SourceFallback, source)
	assert.NotEmpty(t, result.OptimizedResume)
}

func TestParseOptimizationResponse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid optimization",
			input:   validOptimizationJSON,
			wantErr: false,
		},
		{
			name:    "missing optimizedResume",
			input:   `{"keyRecommendations": [], "skillsToHighlight": [], "skillsInDemand": [], "contentSuggestions": []}`,
			wantErr: true,
		},
		{
			name:    "impact outside enum",
			input:   `{"keyRecommendations": [{"title": "t", "description": "d", "impact": "Critical"}], "skillsToHighlight": [], "skillsInDemand": [], "contentSuggestions": [], "optimizedResume": ""}`,
			wantErr: true,
		},
		{
			name:    "unexpected top-level key",
			input:   `{"keyRecommendations": [], "skillsToHighlight": [], "skillsInDemand": [], "contentSuggestions": [], "optimizedResume": "", "score": 1}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseOptimizationResponse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, result.KeyRecommendations)
		})
	}
}
