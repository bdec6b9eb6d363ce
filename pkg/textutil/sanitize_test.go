package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "Our engineers are hard working",
			expected: "Our engineers are hard working",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  hello world \n",
			expected: "hello world",
		},
		{
			name:     "strips script blocks including content",
			input:    "before<script>alert('x')</script>after",
			expected: "beforeafter",
		},
		{
			name:     "strips script blocks case insensitively",
			input:    "a<SCRIPT type=\"text/javascript\">evil()</SCRIPT>b",
			expected: "ab",
		},
		{
			name:     "strips style blocks including content",
			input:    "a<style>body{display:none}</style>b",
			expected: "ab",
		},
		{
			name:     "strips remaining tags but keeps their text",
			input:    "<b>bold</b> and <i>italic</i>",
			expected: "bold and italic",
		},
		{
			name:     "script spanning lines",
			input:    "a<script>\nevil()\n</script>b",
			expected: "ab",
		},
		{
			name:     "only markup collapses to empty",
			input:    "<script>alert(1)</script>",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}
