package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedPrompts(t *testing.T) {
	tests := []struct {
		filename string
		key      string
	}{
		{"extraction.json", "extract-profile"},
		{"classification.json", "classify-profile"},
		{"optimization.json", "generate-optimizations"},
	}

	for _, tt := range tests {
		t.Run(tt.filename+"/"+tt.key, func(t *testing.T) {
			prompt, err := Get(tt.filename, tt.key)
			require.NoError(t, err)
			assert.NotEmpty(t, prompt)
		})
	}
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("extraction.json", "no-such-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-key")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "extract-profile")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("missing.json", "anything")
	})
}

func TestFormat(t *testing.T) {
	template := "Analyze {{.ResumeText}} for {{.TargetDomain}}"
	result := Format(template, map[string]string{
		"ResumeText":   "Jane Doe",
		"TargetDomain": "Fintech",
	})
	assert.Equal(t, "Analyze Jane Doe for Fintech", result)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	result := Format("Hello {{.Missing}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Missing}}", result)
}

func TestClearCache(t *testing.T) {
	_, err := Get("extraction.json", "extract-profile")
	require.NoError(t, err)

	ClearCache()

	// Reload after clearing still works.
	prompt, err := Get("extraction.json", "extract-profile")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.ResumeText}}")
}
