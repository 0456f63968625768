// Package cmdtree builds a hierarchical command registry on top of flat
// per-node pflag flag sets. Commands are registered by path, missing
// intermediate nodes are created as help-printing namespaces, and dispatch
// descends the tree parsing each node's own flags against the remaining
// input.
package cmdtree

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Tree is the command registry. It owns the root node and with it the whole
// command structure: registration builds the tree once at process start,
// dispatch walks it once per invocation. The tree is not safe for
// concurrent mutation and is treated as immutable once dispatch begins.
type Tree struct {
	root  *Node
	out   io.Writer
	hooks []func(*Namespace) error
}

// TreeOption configures a [Tree] at construction.
type TreeOption func(*Tree)

// WithDescription sets the root node's help text.
func WithDescription(desc string) TreeOption {
	return func(t *Tree) { t.root.help = desc }
}

// WithOutput redirects all help and usage-error output, os.Stderr by
// default. User-visible diagnostics never go to stdout.
func WithOutput(out io.Writer) TreeOption {
	return func(t *Tree) { t.SetOutput(out) }
}

// New creates a registry whose root answers to the given program name. The
// root starts with a default print-my-own-help action and an empty child
// map, so dispatching an empty argument vector shows the tool's usage.
func New(name string, opts ...TreeOption) *Tree {
	t := &Tree{out: os.Stderr}
	t.root = newNode(name, "", "", t.out)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Root returns the top-level node, e.g. for declaring program-wide flags.
func (t *Tree) Root() *Node { return t.root }

// SetOutput redirects help and diagnostic output for every node.
func (t *Tree) SetOutput(out io.Writer) {
	t.out = out
	t.root.setOutput(out)
}

// PreDispatch registers a hook that runs after parsing and before an
// explicitly registered action. Hooks do not run for help fallbacks. A hook
// error aborts dispatch.
func (t *Tree) PreDispatch(hook func(*Namespace) error) {
	t.hooks = append(t.hooks, hook)
}

// findNode resolves a single name against the entire tree with a
// breadth-first search over the root's descendants, matching names and
// aliases. This reproduces the registry's historical global-then-local
// policy: the first segment of a path may match a node at any depth, so a
// name already used deep in one branch will satisfy a would-be top-level
// segment with the same spelling. Shallower nodes win, and within a level
// earlier-registered keys win.
func (t *Tree) findNode(name string) *Node {
	queue := t.root.childPairs()
	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]
		if head.key == name {
			return head.node
		}
		queue = append(queue, head.node.childPairs()...)
	}
	return nil
}

// findChain resolves a command path to the longest existing prefix of
// nodes. The first segment resolves globally (see [Tree.findNode]), every
// later segment only against the previous node's immediate children. The
// returned chain always has the same length as the path, padded with nils
// for the unresolved suffix.
func (t *Tree) findChain(path []string) []*Node {
	chain := make([]*Node, len(path))
	cur := t.findNode(path[0])
	if cur == nil {
		return chain
	}
	chain[0] = cur
	for i := 1; i < len(path); i++ {
		next := cur.Lookup(path[i])
		if next == nil {
			break
		}
		chain[i] = next
		cur = next
	}
	return chain
}

type registerConfig struct {
	aliases []string
	help    string
}

// RegisterOption configures a single registration.
type RegisterOption func(*registerConfig)

// WithAliases attaches extra names the leaf answers to from its parent.
func WithAliases(aliases ...string) RegisterOption {
	return func(c *registerConfig) { c.aliases = append(c.aliases, aliases...) }
}

// WithHelp sets the leaf's one-line description.
func WithHelp(help string) RegisterOption {
	return func(c *registerConfig) { c.help = help }
}

// Register binds an action to a command path, creating any missing
// intermediate namespace nodes along the way. Intermediates default to
// printing their own help. Registering a path whose leaf already carries an
// explicit action fails with [ErrAlreadyRegistered] and leaves the tree
// untouched; registering a path that currently ends at a namespace node
// upgrades that node in place, so a command and a deeper sub-command can
// coexist. A nil action creates (or annotates) a namespace without claiming
// the path.
//
// Registration is a build-time concern: every error from here is a
// programming mistake in the command set and should fail the process
// loudly, not be swallowed.
func (t *Tree) Register(path []string, action Action, opts ...RegisterOption) (*Node, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	var cfg registerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	chain := t.findChain(path)

	if fullyResolved(chain) {
		return t.upgrade(chain, path, action, cfg)
	}

	if chain[0] == nil {
		chain = append([]*Node{t.root}, chain...)
		path = append([]string{t.root.name}, path...)
	}

	last := len(path) - 1
	for i, j := 0, 1; j < len(chain); i, j = i+1, j+1 {
		if chain[j] != nil {
			continue
		}
		if j == last {
			leaf, err := chain[i].AddChild(path[j], cfg.aliases, cfg.help)
			if err != nil {
				return nil, err
			}
			leaf.SetAction(action)
			return leaf, nil
		}
		child, err := chain[i].AddChild(path[j], nil, "")
		if err != nil {
			return nil, err
		}
		chain[j] = child
	}
	return nil, fmt.Errorf("%w: %s", ErrUnresolvedLeaf, strings.Join(path, " "))
}

// upgrade handles registration against a path whose every segment already
// resolves. If the leaf was explicitly registered before this is a
// conflict; otherwise the namespace node is promoted: it gains the action,
// help, and aliases without disturbing its children.
func (t *Tree) upgrade(chain []*Node, path []string, action Action, cfg registerConfig) (*Node, error) {
	leaf := chain[len(chain)-1]
	if leaf.explicit {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRegistered, strings.Join(path, " "))
	}
	if len(cfg.aliases) > 0 {
		parent := t.root
		if len(chain) > 1 {
			parent = chain[len(chain)-2]
		}
		if err := parent.addAliases(leaf, cfg.aliases); err != nil {
			return nil, err
		}
	}
	if cfg.help != "" {
		leaf.help = cfg.help
	}
	leaf.SetAction(action)
	return leaf, nil
}

func fullyResolved(chain []*Node) bool {
	for _, n := range chain {
		if n == nil {
			return false
		}
	}
	return true
}
