// Package markdown renders note bodies from structured page summaries.
package markdown

import (
	"fmt"
	"strings"

	"github.com/camillescott/cryptic/internal/summary"
)

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`[`, `\[`,
	`]`, `\]`,
	`(`, `\(`,
	`)`, `\)`,
	`>`, `\>`,
	`#`, `\#`,
	`+`, `\+`,
	`-`, `\-`,
	`.`, `\.`,
	`!`, `\!`,
)

// Escape backslash-escapes every markdown control character in text.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Bold wraps text in strong emphasis.
func Bold(text string) string {
	return "**" + text + "**"
}

// Italic wraps text in emphasis.
func Italic(text string) string {
	return "_" + text + "_"
}

// Link renders a markdown link, using the URL itself as text when none is
// given.
func Link(url, text string) string {
	if text == "" {
		text = url
	}
	return "[" + text + "](" + url + ")"
}

// Header renders a heading of the given depth.
func Header(text string, depth int) string {
	return strings.Repeat("#", depth) + " " + text
}

// List renders items as a bulleted list.
func List(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

// NumberedList renders items as an ordered list starting at 1.
func NumberedList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return strings.Join(lines, "\n")
}

// NoteBody renders the markdown body for a summarized page. Variants with
// structure beyond the summary paragraph get their own section layout; the
// rest render as the bare summary.
func NoteBody(info summary.NoteInfo) string {
	switch i := info.(type) {
	case *summary.PaperInfo:
		return blocks(
			i.Summary,
			Header("Abstract", 2),
			i.Abstract,
			Header("Foundational Work", 2),
			i.Foundations,
			Header("Takeaways", 2),
			List(i.Takeaways),
		)
	case *summary.ArticleInfo:
		return blocks(
			i.Summary,
			Header("Foundational Work", 2),
			i.Foundations,
			Header("Takeaways", 2),
			List(i.Takeaways),
		)
	case *summary.DiscussionInfo:
		return blocks(
			i.Summary,
			Header("Topic", 2),
			i.Topic,
			Header("Viewpoints", 2),
			List(i.Viewpoints),
			Header("Solution", 2),
			i.Solution,
		)
	default:
		return summary.InfoSummary(info)
	}
}

func blocks(parts ...string) string {
	return strings.Join(parts, "\n\n")
}
