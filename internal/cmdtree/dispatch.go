package cmdtree

import (
	"errors"
	"fmt"
	"strconv"

	flag "github.com/spf13/pflag"
)

// Namespace is the merged view of every option parsed along the resolved
// command path. Lookups search leaf-first, so a flag declared on a deeper
// node shadows one with the same name on an ancestor, and the positional
// remainder left after the last matched segment is available via Args.
type Namespace struct {
	chain []*Node
	rest  []string
}

// Lookup finds a flag by name anywhere along the resolved path.
func (ns *Namespace) Lookup(name string) *flag.Flag {
	for i := len(ns.chain) - 1; i >= 0; i-- {
		if f := ns.chain[i].flags.Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

// GetString returns the flag's value as its string form, or "" when the
// flag is not declared anywhere on the path.
func (ns *Namespace) GetString(name string) string {
	f := ns.Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}

// GetBool returns the flag's value as a bool, false when absent or not
// boolean-shaped.
func (ns *Namespace) GetBool(name string) bool {
	f := ns.Lookup(name)
	if f == nil {
		return false
	}
	v, err := strconv.ParseBool(f.Value.String())
	if err != nil {
		return false
	}
	return v
}

// GetInt returns the flag's value as an int, 0 when absent or not numeric.
func (ns *Namespace) GetInt(name string) int {
	f := ns.Lookup(name)
	if f == nil {
		return 0
	}
	v, err := strconv.Atoi(f.Value.String())
	if err != nil {
		return 0
	}
	return v
}

// Changed reports whether the flag was set on the command line.
func (ns *Namespace) Changed(name string) bool {
	f := ns.Lookup(name)
	return f != nil && f.Changed
}

// Args returns the positional arguments left over after dispatch.
func (ns *Namespace) Args() []string { return ns.rest }

// invocation is the outcome of resolving a raw argument vector: the node
// dispatch stopped at, its merged namespace, and whether help was asked for
// along the way.
type invocation struct {
	node *Node
	ns   *Namespace
	help bool
}

// parse walks the raw input down the tree. Each node's own flags are parsed
// against the remaining input; if input remains and names a child (by name
// or alias), descent continues there. Input remaining at an explicit leaf
// becomes its positional arguments; input remaining at a namespace node is
// an unknown command. All flag errors come from the node's own flag set.
func (t *Tree) parse(argv []string) (*invocation, error) {
	cur := t.root
	chain := []*Node{cur}
	args := argv
	for {
		if err := cur.flags.Parse(args); err != nil {
			return nil, &UsageError{Node: cur, Err: err}
		}
		if requested, _ := cur.flags.GetBool("help"); requested {
			return &invocation{node: cur, help: true}, nil
		}
		if err := checkRequired(cur.flags); err != nil {
			return nil, &UsageError{Node: cur, Err: err}
		}
		rest := cur.flags.Args()
		if len(rest) > 0 {
			if child := cur.Lookup(rest[0]); child != nil {
				chain = append(chain, child)
				cur = child
				args = rest[1:]
				continue
			}
			if !cur.explicit && len(cur.keys) > 0 {
				return nil, &UsageError{Node: cur, Err: fmt.Errorf("unknown command %q", rest[0])}
			}
		}
		return &invocation{node: cur, ns: &Namespace{chain: chain, rest: rest}}, nil
	}
}

// Run parses the raw argument vector, invokes the resolved action, and
// returns its result as the process exit status. Help requests and help
// fallbacks return 0; parse failures print the error plus the failing
// node's usage and return 2, matching conventional usage-error status.
func (t *Tree) Run(argv []string) int {
	inv, err := t.parse(argv)
	if err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintf(t.out, "Error: %v\n\n", uerr.Err)
			uerr.Node.PrintHelp(t.out)
		} else {
			fmt.Fprintf(t.out, "Error: %v\n", err)
		}
		return 2
	}
	if inv.help {
		inv.node.PrintHelp(t.out)
		return 0
	}
	if inv.node.explicit {
		for _, hook := range t.hooks {
			if err := hook(inv.ns); err != nil {
				fmt.Fprintf(t.out, "Error: %v\n", err)
				return 1
			}
		}
	}
	return inv.node.action(inv.ns)
}
