package markdown

import (
	"strings"
	"testing"

	"github.com/camillescott/cryptic/internal/summary"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"asterisks", "a*b*c", `a\*b\*c`},
		{"link syntax", "[text](url)", `\[text\]\(url\)`},
		{"backslash", `a\b`, `a\\b`},
		{"header and list markers", "# one - two", `\# one \- two`},
		{"sentence", "Dr. Who!", `Dr\. Who\!`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHelpers(t *testing.T) {
	if got := Bold("x"); got != "**x**" {
		t.Errorf("Bold = %q", got)
	}
	if got := Italic("x"); got != "_x_" {
		t.Errorf("Italic = %q", got)
	}
	if got := Link("https://a.io", ""); got != "[https://a.io](https://a.io)" {
		t.Errorf("Link without text = %q", got)
	}
	if got := Link("https://a.io", "site"); got != "[site](https://a.io)" {
		t.Errorf("Link with text = %q", got)
	}
	if got := Header("Abstract", 2); got != "## Abstract" {
		t.Errorf("Header = %q", got)
	}
	if got := List([]string{"a", "b"}); got != "- a\n- b" {
		t.Errorf("List = %q", got)
	}
	if got := NumberedList([]string{"a", "b"}); got != "1. a\n2. b" {
		t.Errorf("NumberedList = %q", got)
	}
}

func TestNoteBody(t *testing.T) {
	tests := []struct {
		name     string
		info     summary.NoteInfo
		contains []string
	}{
		{
			name: "paper",
			info: &summary.PaperInfo{
				Summary:     "A new assembler.",
				Abstract:    "We present...",
				Foundations: "Builds on de Bruijn graphs.",
				Takeaways:   []string{"fast", "accurate"},
			},
			contains: []string{
				"A new assembler.",
				"## Abstract",
				"We present...",
				"## Foundational Work",
				"## Takeaways",
				"- fast\n- accurate",
			},
		},
		{
			name: "article",
			info: &summary.ArticleInfo{
				Summary:     "An opinion piece.",
				Foundations: "Cites earlier reporting.",
				Takeaways:   []string{"one", "two", "three"},
			},
			contains: []string{
				"An opinion piece.",
				"## Foundational Work",
				"## Takeaways",
				"- three",
			},
		},
		{
			name: "discussion",
			info: &summary.DiscussionInfo{
				Summary:    "A heated thread.",
				Topic:      "Tabs versus spaces",
				Viewpoints: []string{"tabs", "spaces"},
				Solution:   "Use gofmt.",
			},
			contains: []string{
				"## Topic",
				"Tabs versus spaces",
				"## Viewpoints",
				"## Solution",
				"Use gofmt.",
			},
		},
		{
			name:     "event renders summary only",
			info:     &summary.EventInfo{Summary: "A conference page.", StartDate: "2025-06-01"},
			contains: []string{"A conference page."},
		},
		{
			name:     "software renders summary only",
			info:     &summary.SoftwareInfo{Summary: "A Go library.", Language: "Go"},
			contains: []string{"A Go library."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NoteBody(tt.info)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("body missing %q:\n%s", want, got)
				}
			}
		})
	}

	// Summary-only variants must not pick up section headers.
	body := NoteBody(&summary.EventInfo{Summary: "Just a summary."})
	if strings.Contains(body, "##") {
		t.Errorf("event body should have no sections: %q", body)
	}
}
