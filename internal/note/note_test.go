package note

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/camillescott/cryptic/internal/summary"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"web", "web"},
		{"Machine Learning", "machine-learning"},
		{"C++", "c"},
		{" hello  world ", "hello-world"},
		{"foo_bar", "foo_bar"},
		{"--x--", "x"},
		{"ALL CAPS!", "all-caps"},
		{"Émile Zola", "émile-zola"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTag(tt.in); got != tt.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func writeNote(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "note.md")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeNote(t, `---
title: Some Page
tags:
  - web
  - web
  - Machine Learning
source: https://example.com
---

Clipped content here.
`)

	n, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if n.Title() != "Some Page" {
		t.Errorf("title = %q", n.Title())
	}
	if want := []string{"web", "Machine Learning"}; !reflect.DeepEqual(n.Tags(), want) {
		t.Errorf("tags = %v, want %v", n.Tags(), want)
	}
	if n.Content != "Clipped content here." {
		t.Errorf("content = %q", n.Content)
	}
	if n.Processed() {
		t.Error("fresh note should not read as processed")
	}
}

func TestLoadWithoutFrontmatter(t *testing.T) {
	path := writeNote(t, "Just some text.\n")
	n, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if n.Content != "Just some text." {
		t.Errorf("content = %q", n.Content)
	}
	if got := n.Tags(); len(got) != 0 {
		t.Errorf("tags = %v, want empty", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.md")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeNote(t, `---
tags:
  - web
title: Original
---

Body text.
`)
	n, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	n.SetTitle("Updated")
	n.AddTags("New Tag")
	if err := n.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(raw)
	if !strings.HasPrefix(text, "---\n") {
		t.Errorf("saved note should start with frontmatter:\n%s", text)
	}
	if !strings.HasSuffix(text, "Body text.\n") {
		t.Errorf("saved note should end with body and newline:\n%s", text)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Title() != "Updated" {
		t.Errorf("title = %q after round trip", again.Title())
	}
	// Tags come back sorted; Save canonicalizes their order.
	if want := []string{"new-tag", "web"}; !reflect.DeepEqual(again.Tags(), want) {
		t.Errorf("tags = %v, want %v", again.Tags(), want)
	}
	if again.Content != "Body text." {
		t.Errorf("content = %q after round trip", again.Content)
	}
}

func TestAddTags(t *testing.T) {
	n := &Note{Metadata: map[string]any{"tags": []string{"web"}}}
	n.AddTags("Machine Learning", "web", "WEB", "")
	if want := []string{"web", "machine-learning"}; !reflect.DeepEqual(n.Tags(), want) {
		t.Errorf("tags = %v, want %v", n.Tags(), want)
	}
}

func TestNormalizeTags(t *testing.T) {
	n := &Note{Metadata: map[string]any{"tags": []string{"Machine Learning", "machine-learning", "C++", "web"}}}
	n.NormalizeTags()
	if want := []string{"machine-learning", "c", "web"}; !reflect.DeepEqual(n.Tags(), want) {
		t.Errorf("tags = %v, want %v", n.Tags(), want)
	}
}

func TestApplySummary(t *testing.T) {
	tests := []struct {
		name     string
		summary  *summary.NoteSummary
		wantMeta map[string]any
		wantBody []string
		title    string
	}{
		{
			name: "paper",
			summary: &summary.NoteSummary{
				Category: summary.CategoryPaper,
				Tags:     []string{"Genome Assembly"},
				Info: &summary.PaperInfo{
					Summary:     "A new assembler.",
					Title:       "Fast assembly",
					Authors:     []string{"A. Author"},
					Journal:     "Bioinformatics",
					Abstract:    "We present...",
					DOI:         "doi.org/10.1000/xyz",
					Takeaways:   []string{"fast"},
					Foundations: "de Bruijn graphs",
				},
			},
			wantMeta: map[string]any{
				"author":  []string{"A. Author"},
				"journal": "Bioinformatics",
				"doi":     "doi.org/10.1000/xyz",
			},
			wantBody: []string{"## Abstract", "## Takeaways"},
			title:    "Fast assembly",
		},
		{
			name: "event",
			summary: &summary.NoteSummary{
				Category: summary.CategoryEvent,
				Tags:     []string{"conference"},
				Info: &summary.EventInfo{
					Summary:   "A Go conference.",
					StartDate: "2025-06-01",
					EndDate:   "2025-06-03",
				},
			},
			wantMeta: map[string]any{
				"start_date": "2025-06-01",
				"end_date":   "2025-06-03",
			},
			wantBody: []string{"A Go conference."},
		},
		{
			name: "product",
			summary: &summary.NoteSummary{
				Category: summary.CategoryProduct,
				Tags:     []string{"keyboard"},
				Info: &summary.ProductInfo{
					Summary: "A split keyboard.",
					Name:    "Ergo Split",
					Price:   "$150.00",
				},
			},
			wantMeta: map[string]any{"price": "$150.00"},
			wantBody: []string{"A split keyboard."},
			title:    "Ergo Split",
		},
		{
			name: "media",
			summary: &summary.NoteSummary{
				Category: summary.CategoryMedia,
				Tags:     []string{"film"},
				Info: &summary.MediaInfo{
					Summary:   "A documentary.",
					Artist:    "Some Director",
					MediaType: summary.MediaFilm,
				},
			},
			wantMeta: map[string]any{
				"media_type": "film",
				"artist":     "Some Director",
			},
			wantBody: []string{"A documentary."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &Note{Metadata: map[string]any{"tags": []string{}}}
			n.ApplySummary(tt.summary)

			if n.Category() != tt.summary.Category {
				t.Errorf("category = %q, want %q", n.Category(), tt.summary.Category)
			}
			if !n.Processed() {
				t.Error("note should be marked processed")
			}
			for key, want := range tt.wantMeta {
				if got := n.Metadata[key]; !reflect.DeepEqual(got, want) {
					t.Errorf("metadata[%q] = %v, want %v", key, got, want)
				}
			}
			for _, want := range tt.wantBody {
				if !strings.Contains(n.Content, want) {
					t.Errorf("body missing %q:\n%s", want, n.Content)
				}
			}
			if tt.title != "" && n.Title() != tt.title {
				t.Errorf("title = %q, want %q", n.Title(), tt.title)
			}
			if len(n.Tags()) == 0 {
				t.Error("summary tags should be merged into the note")
			}
		})
	}
}
