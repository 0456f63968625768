package cmd

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/camillescott/cryptic/internal/cmdtree"
	"github.com/camillescott/cryptic/internal/note"
)

func registerNoteCmds(tree *cmdtree.Tree) {
	tree.Command("note", "show").
		Help("Print a note's frontmatter and body to the console.").
		Does(showNote).
		Args(func(fs *flag.FlagSet) {
			fs.String("note", "", "path to the note file")
			cmdtree.MarkRequired(fs, "note")
		})

	tree.Command("note", "tags", "normalize").
		Help("Rewrite a note's tags in normalized form.").
		Does(normalizeNoteTags).
		Args(func(fs *flag.FlagSet) {
			fs.String("note", "", "path to the note file")
			cmdtree.MarkRequired(fs, "note")
		})
}

func showNote(ns *cmdtree.Namespace) int {
	n, err := note.Load(ns.GetString("note"))
	if err != nil {
		slog.Error("Failed to load note", "error", err)
		return 1
	}
	printNote(n)
	return 0
}

func normalizeNoteTags(ns *cmdtree.Namespace) int {
	path := ns.GetString("note")
	n, err := note.Load(path)
	if err != nil {
		slog.Error("Failed to load note", "error", err)
		return 1
	}
	before := n.Tags()
	n.NormalizeTags()
	if err := n.Save(); err != nil {
		slog.Error("Failed to save note", "path", path, "error", err)
		return 1
	}
	slog.Info("Normalized tags", "path", path, "before", len(before), "after", len(n.Tags()))
	return 0
}

// printNote renders a note to stdout in the rule-delimited layout the
// processor also uses after a successful run.
func printNote(n *note.Note) {
	fmt.Println(strings.Repeat("=", 80))

	keys := make([]string, 0, len(n.Metadata))
	for key := range n.Metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%-16s %v\n", key+":", n.Metadata[key])
	}

	fmt.Println(strings.Repeat("-", 80))
	fmt.Println(n.Content)
	fmt.Println(strings.Repeat("=", 80))
}
