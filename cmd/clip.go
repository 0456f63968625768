package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/camillescott/cryptic/internal/clip"
	"github.com/camillescott/cryptic/internal/cmdtree"
)

func registerClipCmd(tree *cmdtree.Tree) {
	tree.Command("clip").
		Help("Clip a webpage into a markdown note.").
		Does(clipPage).
		Args(func(fs *flag.FlagSet) {
			fs.String("out", ".", "directory to write the note into")
			fs.Bool("stdout", false, "print the note instead of writing a file")
		})
}

func clipPage(ns *cmdtree.Namespace) int {
	args := ns.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Error: clip takes exactly one URL")
		return 2
	}
	url := args[0]

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	slog.Info("Clipping page", "url", url)
	page, err := clip.New().Clip(ctx, url)
	if err != nil {
		slog.Error("Failed to clip page", "url", url, "error", err)
		return 1
	}
	slog.Debug("Converted page", "title", page.Title, "bytes", len(page.Markdown))

	path := filepath.Join(ns.GetString("out"), page.Filename())
	n := page.Note(path)

	if ns.GetBool("stdout") {
		text, err := n.Render()
		if err != nil {
			slog.Error("Failed to render note", "error", err)
			return 1
		}
		fmt.Print(text)
		return 0
	}

	if err := n.Save(); err != nil {
		slog.Error("Failed to save note", "path", path, "error", err)
		return 1
	}
	slog.Info("Saved note", "path", path)
	return 0
}
