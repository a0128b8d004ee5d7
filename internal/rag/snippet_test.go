package rag

import (
	"strings"
	"testing"
)

func TestExtractSnippet(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{
			name: "short text unchanged",
			text: strings.Repeat("a", 80),
			max:  100,
			want: strings.Repeat("a", 80),
		},
		{
			name: "exactly max unchanged",
			text: strings.Repeat("b", 100),
			max:  100,
			want: strings.Repeat("b", 100),
		},
		{
			name: "truncated at last word boundary",
			text: strings.Repeat("c", 95) + " " + strings.Repeat("d", 54),
			max:  100,
			want: strings.Repeat("c", 95) + "...",
		},
		{
			name: "no word boundary keeps prefix",
			text: strings.Repeat("e", 150),
			max:  100,
			want: strings.Repeat("e", 100) + "...",
		},
		{
			name: "empty text",
			text: "",
			max:  100,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSnippet(tt.text, tt.max)
			if got != tt.want {
				t.Errorf("ExtractSnippet() = %q, want %q", got, tt.want)
			}
		})
	}
}
