// Package note reads and writes markdown notes with YAML frontmatter, the
// storage format of the clipped pages this tool processes.
package note

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/camillescott/cryptic/internal/markdown"
	"github.com/camillescott/cryptic/internal/summary"
)

const processedKey = "cryptic_processed"

var tagCleaner = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// NormalizeTag lowercases a tag and collapses every run of non-word
// characters into a single hyphen.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.Trim(tagCleaner.ReplaceAllString(tag, "-"), "-"))
}

// Note is one markdown file split into frontmatter metadata and body
// content. The tags key always exists after a Load, with duplicates
// removed.
type Note struct {
	Path     string
	Metadata map[string]any
	Content  string
}

// Load reads and parses the note at path.
func Load(path string) (*Note, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read note %s: %w", path, err)
	}
	meta, content, err := splitFrontmatter(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse note %s: %w", path, err)
	}
	n := &Note{Path: path, Metadata: meta, Content: content}
	n.SetTags(dedupe(n.Tags()))
	return n, nil
}

// Save writes the note back to its path, frontmatter first.
func (n *Note) Save() error {
	text, err := n.Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(n.Path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write note %s: %w", n.Path, err)
	}
	return nil
}

// Render produces the full file text: a --- delimited YAML frontmatter
// block followed by the body. Tags are sorted so repeated saves stay
// byte-for-byte stable.
func (n *Note) Render() (string, error) {
	if tags := n.Tags(); len(tags) > 0 {
		sorted := append([]string(nil), tags...)
		sort.Strings(sorted)
		n.SetTags(sorted)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(n.Metadata); err != nil {
		return "", fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	return "---\n" + buf.String() + "---\n\n" + n.Content + "\n", nil
}

// splitFrontmatter separates a leading --- delimited YAML block from the
// body. Text without a frontmatter block is all body.
func splitFrontmatter(text string) (map[string]any, string, error) {
	meta := map[string]any{}
	trimmed := strings.TrimSpace(text)
	rest, found := strings.CutPrefix(trimmed, "---\n")
	if !found {
		return meta, trimmed, nil
	}
	var block, content string
	if i := strings.Index(rest, "\n---\n"); i >= 0 {
		block = rest[:i]
		content = rest[i+len("\n---\n"):]
	} else if b, ok := strings.CutSuffix(rest, "\n---"); ok {
		block = b
	} else {
		return meta, trimmed, nil
	}
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return nil, "", err
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, strings.TrimSpace(content), nil
}

// Tags returns the note's tag list.
func (n *Note) Tags() []string {
	return stringSlice(n.Metadata["tags"])
}

// SetTags replaces the note's tag list.
func (n *Note) SetTags(tags []string) {
	if tags == nil {
		tags = []string{}
	}
	n.Metadata["tags"] = tags
}

// AddTags merges the normalized form of each given tag into the note's
// tags, skipping ones already present.
func (n *Note) AddTags(tags ...string) {
	current := n.Tags()
	seen := make(map[string]bool, len(current))
	for _, t := range current {
		seen[t] = true
	}
	for _, t := range tags {
		norm := NormalizeTag(t)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		current = append(current, norm)
	}
	n.SetTags(current)
}

// NormalizeTags rewrites every existing tag into its normalized form,
// dropping duplicates that collapse together.
func (n *Note) NormalizeTags() {
	tags := n.Tags()
	normalized := make([]string, 0, len(tags))
	for _, t := range tags {
		if norm := NormalizeTag(t); norm != "" {
			normalized = append(normalized, norm)
		}
	}
	n.SetTags(dedupe(normalized))
}

// Title returns the note's title, or "" when unset.
func (n *Note) Title() string {
	if v, ok := n.Metadata["title"]; ok {
		return fmt.Sprint(v)
	}
	return ""
}

// SetTitle sets the note's title.
func (n *Note) SetTitle(title string) {
	n.Metadata["title"] = title
}

// Category returns the note's page category, or "" when the note has none.
func (n *Note) Category() summary.Category {
	if v, ok := n.Metadata["category"]; ok {
		return summary.Category(fmt.Sprint(v))
	}
	return ""
}

// SetCategory sets the note's page category.
func (n *Note) SetCategory(c summary.Category) {
	n.Metadata["category"] = string(c)
}

// Processed reports whether this note has already been through the model.
func (n *Note) Processed() bool {
	v, ok := n.Metadata[processedKey].(bool)
	return ok && v
}

// ApplySummary rewrites the note from a structured summary: category and
// tags in the frontmatter, a rendered body, variant-specific metadata, and
// the processed marker so reprocessing requires an explicit force.
func (n *Note) ApplySummary(s *summary.NoteSummary) {
	n.SetCategory(s.Category)
	n.AddTags(s.Tags...)
	n.Content = markdown.NoteBody(s.Info)
	n.applyInfo(s.Info)
	n.Metadata[processedKey] = true
}

// applyInfo copies variant-specific fields into the frontmatter. Variants
// not listed here carry nothing beyond their rendered body.
func (n *Note) applyInfo(info summary.NoteInfo) {
	switch i := info.(type) {
	case *summary.PaperInfo:
		n.SetTitle(i.Title)
		n.Metadata["author"] = i.Authors
		n.Metadata["journal"] = i.Journal
		n.Metadata["doi"] = i.DOI
	case *summary.EventInfo:
		n.Metadata["start_date"] = i.StartDate
		n.Metadata["end_date"] = i.EndDate
	case *summary.ProductInfo:
		n.SetTitle(i.Name)
		n.Metadata["price"] = i.Price
	case *summary.MediaInfo:
		n.Metadata["media_type"] = string(i.MediaType)
		n.Metadata["artist"] = i.Artist
	}
}

func dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func stringSlice(v any) []string {
	switch vv := v.(type) {
	case nil:
		return nil
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{fmt.Sprint(vv)}
	}
}
