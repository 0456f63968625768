package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/camillescott/cryptic/internal/cmdtree"
)

const version = "0.1.0"

// Execute builds the command tree, dispatches argv, and returns the process
// exit status.
func Execute(args []string) int {
	return NewCommands().Run(args)
}

// NewCommands wires every cryptic command into a fresh registry.
//
// The note family registers before the process family on purpose: the first
// segment of a registration path resolves against the whole existing tree,
// so ["note", "show"] must be registered while "note" can only mean the
// top-level namespace and not the deeper "process note" leaf.
func NewCommands() *cmdtree.Tree {
	tree := cmdtree.New("cryptic",
		cmdtree.WithDescription("Clip webpages into markdown notes and enrich them with LLM summaries."))

	root := tree.Root()
	root.Flags().BoolP("verbose", "v", false, "enable debug logging")
	root.Flags().Bool("version", false, "print the version and exit")
	root.SetAction(func(ns *cmdtree.Namespace) int {
		if ns.GetBool("version") {
			fmt.Println("cryptic", version)
			return 0
		}
		if rest := ns.Args(); len(rest) > 0 {
			fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", rest[0])
			root.Usage()
			return 2
		}
		root.Usage()
		return 0
	})

	tree.PreDispatch(func(ns *cmdtree.Namespace) error {
		// A missing .env file is fine, environment wins either way.
		_ = godotenv.Load()
		setupLogging(ns.GetBool("verbose"))
		return nil
	})

	registerNoteCmds(tree)
	registerClipCmd(tree)
	registerProcessCmds(tree)

	return tree
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
