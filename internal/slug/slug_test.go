package slug

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation stripped", "Climate Resilience & Sustainability!", "climate-resilience-sustainability"},
		{"apostrophe dropped", "Kigali's Bus Reform", "kigalis-bus-reform"},
		{"whitespace runs collapsed", "  too   many    spaces  ", "too-many-spaces"},
		{"repeated hyphens collapsed", "already--hyphen---ated", "already-hyphen-ated"},
		{"leading and trailing hyphens trimmed", "-edges-", "edges"},
		{"mixed case lowered", "MiXeD CaSe", "mixed-case"},
		{"digits kept", "Top 10 Stories of 2024", "top-10-stories-of-2024"},
		{"accents dropped", "Éducation à Kigali", "ducation-kigali"},
		{"only punctuation", "!!!???", ""},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.input))
		})
	}
}

func TestGenerateShape(t *testing.T) {
	inputs := []string{
		"Hello, World!", "a", "2024", "résumé & CV", "tabs\tand\nnewlines",
		"UPPER lower 123", "---", "cœur de la ville",
	}
	for _, input := range inputs {
		got := Generate(input)
		if got == "" {
			continue
		}
		assert.Regexp(t, slugShape, got, "input %q", input)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	inputs := []string{"Hello World", "Climate Resilience & Sustainability!", "already-a-slug", ""}
	for _, input := range inputs {
		once := Generate(input)
		assert.Equal(t, once, Generate(once), "input %q", input)
	}
}

func TestSuggestions(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 30, 45, 123e6, time.UTC)
	got := Suggestions("bus-reform", now)

	assert.Len(t, got, 4)
	assert.Regexp(t, `^bus-reform-\d{4}$`, got[0])
	assert.Equal(t, "bus-reform-new", got[1])
	assert.Equal(t, "bus-reform-updated", got[2])
	assert.Equal(t, "bus-reform-v2", got[3])
}
