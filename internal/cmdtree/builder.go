package cmdtree

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// CommandBuilder accumulates the registration parameters for one command
// path. It is the entry point for the two-phase definition flow: bind the
// action first, then attach option declarations to the returned Subcommand.
type CommandBuilder struct {
	tree    *Tree
	path    []string
	aliases []string
	help    string
}

// Command starts a registration for the given path segments.
func (t *Tree) Command(path ...string) *CommandBuilder {
	return &CommandBuilder{tree: t, path: path}
}

// Aliases adds alternate names for the leaf segment.
func (b *CommandBuilder) Aliases(aliases ...string) *CommandBuilder {
	b.aliases = append(b.aliases, aliases...)
	return b
}

// Help sets the leaf's one-line description.
func (b *CommandBuilder) Help(help string) *CommandBuilder {
	b.help = help
	return b
}

// Does registers the action at the builder's path and returns the leaf
// wrapped in a Subcommand handle. Registration failures are programmer
// errors in the tool's own command wiring, so Does panics instead of
// returning them; callers needing the error form use Tree.Register.
func (b *CommandBuilder) Does(action Action) *Subcommand {
	node, err := b.tree.Register(b.path, action,
		WithAliases(b.aliases...), WithHelp(b.help))
	if err != nil {
		panic(fmt.Sprintf("cmdtree: register %v: %v", b.path, err))
	}
	return &Subcommand{node: node}
}

// Subcommand is a lightweight handle on a registered leaf, used to layer
// argument declarations onto the leaf's own flag set after the action is
// already bound.
type Subcommand struct {
	node *Node
}

// Args applies adder to the leaf's flag set. Attachments run in the order
// given; a redeclared flag name panics inside pflag itself, which is the
// desired loud failure for a wiring mistake.
func (s *Subcommand) Args(adder func(fs *flag.FlagSet)) *Subcommand {
	adder(s.node.flags)
	return s
}

// Func returns the currently bound action.
func (s *Subcommand) Func() Action { return s.node.action }

// Node returns the underlying tree node.
func (s *Subcommand) Node() *Node { return s.node }
