package utils

import (
	"strings"
	"testing"
)

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bold and italic",
			input: "The **ActiveCampaign** accelerator handles *email* workflows.",
			want:  "The ActiveCampaign accelerator handles email workflows.",
		},
		{
			name:  "heading",
			input: "# Overview\nAutomation suite.",
			want:  "Overview\nAutomation suite.",
		},
		{
			name:  "inline code",
			input: "Use the `sync` mode.",
			want:  "Use the sync mode.",
		},
		{
			name:  "link keeps text",
			input: "See [the docs](https://example.com) for details.",
			want:  "See the docs for details.",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripMarkdown(tt.input)
			if got != tt.want {
				t.Errorf("StripMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripMarkdownList(t *testing.T) {
	input := "Recommended:\n\n- First\n- Second\n"
	got := StripMarkdown(input)

	for _, want := range []string{"Recommended:", "First", "Second"} {
		if !strings.Contains(got, want) {
			t.Errorf("StripMarkdown() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, "-") {
		t.Errorf("StripMarkdown() = %q, list markers should be removed", got)
	}
}
