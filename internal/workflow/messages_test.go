package workflow

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{name: "short", input: "Jane Doe", n: 20, want: "Jane Doe"},
		{name: "exact", input: "Jane", n: 4, want: "Jane"},
		{name: "ascii cut", input: "Jane Doe, Go engineer", n: 8, want: "Jane Doe..."},
		// "é" occupies bytes 1 and 2
		{name: "inside multi-byte rune", input: "résumé", n: 2, want: "r..."},
		{name: "rune boundary", input: "résumé", n: 3, want: "ré..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestTruncate_AlwaysValidUTF8(t *testing.T) {
	text := strings.Repeat("Résumé · Müller · 日本語 ", 20)
	for n := 0; n < 60; n++ {
		got := truncate(text, n)
		assert.True(t, utf8.ValidString(got), "n=%d", n)
		assert.LessOrEqual(t, len(strings.TrimSuffix(got, "...")), n)
	}
}
