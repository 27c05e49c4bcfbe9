package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "crlf normalized",
			input:    "line one\r\nline two\rline three",
			expected: "line one\nline two\nline three",
		},
		{
			name:     "inline whitespace collapsed",
			input:    "Jane\t\tDoe   Designer",
			expected: "Jane Doe Designer",
		},
		{
			name:     "blank runs shrink to one blank line",
			input:    "a\n\n\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "lines trimmed",
			input:    "  padded line  \n\tanother\t",
			expected: "padded line\nanother",
		},
		{
			name:     "outer whitespace removed",
			input:    "\n\n  content  \n\n",
			expected: "content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}
