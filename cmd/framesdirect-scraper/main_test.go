package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptPageCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"plain number", "3\n", 3},
		{"empty input defaults to one", "\n", 1},
		{"invalid then valid", "abc\n5\n", 5},
		{"zero then valid", "0\n2\n", 2},
		{"large count confirmed", "150\ny\n", 150},
		{"large count confirmed verbosely", "150\nyes\n", 150},
		{"large count declined then retried", "150\nn\n4\n", 4},
		{"end of input", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			got := promptPageCount(strings.NewReader(tt.input), &out)
			assert.Equal(t, tt.expected, got)
		})
	}
}
