package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchSegments(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		term         string
		preserveCase bool
		expected     []string
	}{
		{
			name:     "single match at end",
			content:  "Hello World",
			term:     "world",
			expected: []string{"hello world"},
		},
		{
			name:     "term is lower-cased too",
			content:  "Hello World",
			term:     "WORLD",
			expected: []string{"hello world"},
		},
		{
			name:     "trailing text is its own segment",
			content:  "one Cat two cat three",
			term:     "cat",
			expected: []string{"one cat", " two cat", " three"},
		},
		{
			name:     "adjacent matches",
			content:  "abab",
			term:     "ab",
			expected: []string{"ab", "ab"},
		},
		{
			name:     "multi-line content",
			content:  "first line\nSecond Line\n",
			term:     "line",
			expected: []string{"first line", "\nsecond line", "\n"},
		},
		{
			name:     "no match",
			content:  "Hello World",
			term:     "moon",
			expected: nil,
		},
		{
			name:     "empty content",
			content:  "",
			term:     "x",
			expected: nil,
		},
		{
			name:         "original case kept on request",
			content:      "one Cat two CAT three",
			term:         "cat",
			preserveCase: true,
			expected:     []string{"one Cat", " two CAT", " three"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SearchSegments(tt.content, tt.term, tt.preserveCase))
		})
	}
}

func TestSearchSegments_PreserveCaseFallsBackOnLengthChange(t *testing.T) {
	// U+0130 is two bytes but lower-cases to the one byte "i"
	content := "\u0130stanbul Kebab"

	segments := SearchSegments(content, "kebab", true)

	assert.Equal(t, []string{"istanbul kebab"}, segments)
}
