package cmdtree

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"
)

// Action is the callback bound to a command node. The parsed values for the
// whole resolved command path are available through the namespace, and the
// returned int becomes the process exit status.
type Action func(ns *Namespace) int

// Node is a single vertex in the command tree. It exclusively owns a flat
// [flag.FlagSet] holding the options declared for this command level, the
// action to run when dispatch stops here, and the links to its children.
// Nodes never reference their parent; all traversal starts at the root.
type Node struct {
	name     string
	aliases  []string
	path     string
	help     string
	flags    *flag.FlagSet
	action   Action
	explicit bool
	children map[string]*Node
	keys     []string
	out      io.Writer
}

func newNode(name, parentPath, help string, out io.Writer) *Node {
	if out == nil {
		out = os.Stderr
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.BoolP("help", "h", false, "print this help and exit")
	fs.SetInterspersed(false)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	n := &Node{
		name:     name,
		path:     name,
		help:     help,
		flags:    fs,
		children: map[string]*Node{},
		out:      out,
	}
	if parentPath != "" {
		n.path = parentPath + " " + name
	}
	n.action = func(*Namespace) int {
		n.PrintHelp(n.out)
		return 0
	}
	return n
}

// Name returns the segment string identifying this node among its siblings.
func (n *Node) Name() string { return n.name }

// Aliases returns the additional names this node answers to.
func (n *Node) Aliases() []string { return n.aliases }

// Path returns the full command path from the root, space separated.
func (n *Node) Path() string { return n.path }

// Help returns the node's one-line description.
func (n *Node) Help() string { return n.help }

// Flags exposes the node's own flag set so options can be declared on it.
// Option names are local to one node; ancestors and descendants may reuse
// them, with the deepest declaration winning in the merged namespace.
func (n *Node) Flags() *flag.FlagSet { return n.flags }

// SetAction replaces the default help-printing action. From this point the
// node counts as an explicitly registered leaf command for conflict
// detection, even if it gains children later.
func (n *Node) SetAction(action Action) {
	if action == nil {
		return
	}
	n.action = action
	n.explicit = true
}

// Leaf reports whether an action has been explicitly registered here.
func (n *Node) Leaf() bool { return n.explicit }

// Lookup returns the child registered under the given name or alias.
func (n *Node) Lookup(key string) *Node { return n.children[key] }

// AddChild creates, stores, and returns a new child node wrapping a fresh
// flag set. The child's name and every alias must be unused among this
// node's existing children; any collision fails with [ErrDuplicateName]
// and leaves the node unchanged.
func (n *Node) AddChild(name string, aliases []string, help string) (*Node, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name under %q", ErrDuplicateName, n.path)
	}
	for _, key := range append([]string{name}, aliases...) {
		if _, taken := n.children[key]; taken {
			return nil, fmt.Errorf("%w: %q under %q", ErrDuplicateName, key, n.path)
		}
	}
	child := newNode(name, n.path, help, n.out)
	child.aliases = append(child.aliases, aliases...)
	n.children[name] = child
	n.keys = append(n.keys, name)
	for _, alias := range aliases {
		n.children[alias] = child
		n.keys = append(n.keys, alias)
	}
	return child, nil
}

// addAliases registers extra names for an existing child, used when a
// registration upgrades a namespace node in place.
func (n *Node) addAliases(child *Node, aliases []string) error {
	for _, alias := range aliases {
		if _, taken := n.children[alias]; taken {
			return fmt.Errorf("%w: %q under %q", ErrDuplicateName, alias, n.path)
		}
	}
	for _, alias := range aliases {
		n.children[alias] = child
		n.keys = append(n.keys, alias)
		child.aliases = append(child.aliases, alias)
	}
	return nil
}

// childPairs yields every (key, child) pair in insertion order. A child
// with aliases appears once per key, mirroring how the resolver treats
// names and aliases as one namespace.
func (n *Node) childPairs() []childPair {
	pairs := make([]childPair, 0, len(n.keys))
	for _, key := range n.keys {
		pairs = append(pairs, childPair{key: key, node: n.children[key]})
	}
	return pairs
}

type childPair struct {
	key  string
	node *Node
}

// setOutput redirects help output for this node and its whole subtree.
func (n *Node) setOutput(out io.Writer) {
	n.out = out
	for _, key := range n.keys {
		child := n.children[key]
		if child.name == key {
			child.setOutput(out)
		}
	}
}

// PrintHelp writes the node's usage text: a usage line, the description,
// the node's own flags, and its sub-commands with aliases.
func (n *Node) PrintHelp(w io.Writer) {
	var b strings.Builder

	usage := "Usage: " + n.path + " [flags]"
	if len(n.keys) > 0 {
		usage += " <command>"
	}
	b.WriteString(usage + "\n")

	if n.help != "" {
		b.WriteString("\n" + n.help + "\n")
	}

	b.WriteString("\nFlags:\n")
	b.WriteString(n.flags.FlagUsages())

	if len(n.keys) > 0 {
		b.WriteString("\nCommands:\n")
		b.WriteString(n.commandUsages())
	}
	fmt.Fprint(w, b.String())
}

// Usage prints the node's help text to the tree's configured output.
func (n *Node) Usage() {
	n.PrintHelp(n.out)
}

// commandUsages lists unique children sorted by name, each with its
// aliases and one-line help.
func (n *Node) commandUsages() string {
	names := make([]string, 0, len(n.keys))
	for _, key := range n.keys {
		if n.children[key].name == key {
			names = append(names, key)
		}
	}
	sort.Strings(names)

	labels := make([]string, len(names))
	var width int
	for i, name := range names {
		child := n.children[name]
		labels[i] = strings.Join(append([]string{name}, child.aliases...), ", ")
		if len(labels[i]) > width {
			width = len(labels[i])
		}
	}

	var b strings.Builder
	for i, name := range names {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, labels[i], n.children[name].help)
	}
	return b.String()
}
