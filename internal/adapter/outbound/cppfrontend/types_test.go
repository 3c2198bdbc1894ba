package cppfrontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpelling(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"int", "int"},
		{"const char", "char"},
		{"unsigned   long", "unsigned long"},
		{"struct Widget", "Widget"},
		{"const volatile unsigned int", "unsigned int"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeSpelling(tt.input), "input %q", tt.input)
	}
}

func TestJoinDocComments(t *testing.T) {
	t.Run("line comments are stripped and joined", func(t *testing.T) {
		doc := joinDocComments([]string{"/// Creates a widget.", "/// Returns null on failure."})
		assert.Equal(t, "Creates a widget.\nReturns null on failure.", doc)
	})

	t.Run("block comment markers are stripped", func(t *testing.T) {
		doc := joinDocComments([]string{"/**\n * A widget.\n */"})
		assert.Equal(t, "A widget.", doc)
	})

	t.Run("no comments yields empty documentation", func(t *testing.T) {
		assert.Empty(t, joinDocComments(nil))
	})
}

func TestPointerDisplayName(t *testing.T) {
	assert.Equal(t, "int *", pointerDisplayName("int"))
	assert.Equal(t, "int **", pointerDisplayName("int *"))
}
