package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/camillescott/cryptic/internal/chat"
	"github.com/camillescott/cryptic/internal/cmdtree"
	"github.com/camillescott/cryptic/internal/note"
	"github.com/camillescott/cryptic/internal/summary"
)

func registerProcessCmds(tree *cmdtree.Tree) {
	tree.Command("process", "note").
		Help("Process a note with the LLM and rewrite it.").
		Does(processNote).
		Args(func(fs *flag.FlagSet) {
			fs.StringP("note", "i", "", "path to the note file")
			cmdtree.MarkRequired(fs, "note")
			fs.BoolP("force", "f", false, "reprocess even if the note is marked processed")
		}).
		Args(func(fs *flag.FlagSet) {
			fs.VarP(cmdtree.NewEnumValue("", summary.CategoryStrings()...), "category", "c",
				"force the page category (one of: "+strings.Join(summary.CategoryStrings(), ", ")+")")
		})

	tree.Command("process", "archive").
		Help("Move a processed note into an archive directory.").
		Does(archiveNote).
		Args(func(fs *flag.FlagSet) {
			fs.String("note", "", "path to the note file")
			cmdtree.MarkRequired(fs, "note")
			fs.String("dest", "archive", "archive directory, resolved against the note's directory unless absolute")
		})
}

func processNote(ns *cmdtree.Namespace) int {
	path := ns.GetString("note")
	slog.Info("Loading note", "path", path)
	n, err := note.Load(path)
	if err != nil {
		slog.Error("Failed to load note", "error", err)
		return 1
	}

	if n.Processed() && !ns.GetBool("force") {
		slog.Error("Note already processed and not --force, exiting", "path", path)
		return 1
	}

	var forced summary.Category
	if cat := ns.GetString("category"); cat != "" {
		forced, err = summary.ParseCategory(cat)
		if err != nil {
			slog.Error("Invalid category", "error", err)
			return 1
		}
		slog.Warn("Forcing category schema", "category", forced)
	}

	svc, err := chat.NewService("", "")
	if err != nil {
		slog.Error("Failed to configure provider", "error", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	slog.Info("Waiting for model response...", "provider", svc.ProviderName(), "model", svc.Model())
	sum, tokens, err := svc.Summarize(ctx, n.Content, forced)
	if err != nil {
		slog.Error("Error processing note", "error", err)
		return 1
	}
	slog.Info("Processed note", "tokens", tokens, "category", sum.Category, "tags", strings.Join(sum.Tags, ","))

	slog.Info("Updating and saving note...", "path", path)
	n.ApplySummary(sum)
	if err := n.Save(); err != nil {
		slog.Error("Failed to save note", "path", path, "error", err)
		return 1
	}

	printNote(n)
	return 0
}

func archiveNote(ns *cmdtree.Namespace) int {
	path := ns.GetString("note")
	n, err := note.Load(path)
	if err != nil {
		slog.Error("Failed to load note", "error", err)
		return 1
	}
	if !n.Processed() {
		slog.Error("Refusing to archive an unprocessed note", "path", path)
		return 1
	}

	dest := ns.GetString("dest")
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(path), dest)
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		slog.Error("Failed to create archive directory", "path", dest, "error", err)
		return 1
	}

	target := filepath.Join(dest, filepath.Base(path))
	if err := os.Rename(path, target); err != nil {
		slog.Error("Failed to move note", "from", path, "to", target, "error", err)
		return 1
	}
	slog.Info("Archived note", "path", target)
	return 0
}
