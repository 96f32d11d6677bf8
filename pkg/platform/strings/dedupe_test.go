package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "nil slice",
			input: nil,
			want:  nil,
		},
		{
			name:  "removes duplicates preserving order",
			input: []string{"foo", "bar", "foo"},
			want:  []string{"foo", "bar"},
		},
		{
			name:  "trims whitespace",
			input: []string{"  foo ", "bar", "foo"},
			want:  []string{"foo", "bar"},
		},
		{
			name:  "drops empty and blank entries",
			input: []string{"", "  ", "foo"},
			want:  []string{"foo"},
		},
		{
			name:  "case sensitive",
			input: []string{"Foo", "foo"},
			want:  []string{"Foo", "foo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupeAndTrim(tt.input))
		})
	}
}

func TestDedupeAndTrimLower(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "lowercases before deduping",
			input: []string{"  Example.COM ", "example.com", "Other.Net"},
			want:  []string{"example.com", "other.net"},
		},
		{
			name:  "drops blank entries",
			input: []string{"", "  ", "example.com"},
			want:  []string{"example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupeAndTrimLower(tt.input))
		})
	}
}
