package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     SlugifyOptions
		expected string
	}{
		{"simple", "Hello World", SlugifyOptions{}, "hello-world"},
		{"punctuation dropped", "Fix: the (big) bug!", SlugifyOptions{}, "fix-the-big-bug"},
		{"separators collapse", "a  -  b__c", SlugifyOptions{}, "a-b-c"},
		{"path chars", "cmd/agxd/main.go", SlugifyOptions{}, "cmd-agxd-main-go"},
		{"leading trailing dashes", "  --hello--  ", SlugifyOptions{}, "hello"},
		{"empty input", "???", SlugifyOptions{}, "untitled"},
		{"max length", "one two three four", SlugifyOptions{MaxLength: 7}, "one-two"},
		{"max length no trailing dash", "one two", SlugifyOptions{MaxLength: 4}, "one"},
		{"unicode dropped", "café ☕ time", SlugifyOptions{}, "caf-time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input, tt.opts))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	first := Slugify("Deploy Service v2", SlugifyOptions{MaxLength: 48})
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Slugify("Deploy Service v2", SlugifyOptions{MaxLength: 48}))
	}
}

func TestCloudIDSuffixStable(t *testing.T) {
	a := cloudIDSuffix("proj-abc")
	b := cloudIDSuffix("proj-abc")
	c := cloudIDSuffix("proj-def")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 8)
}
