package cmdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName is returned when a child's name or alias collides
	// with an existing key among its siblings.
	ErrDuplicateName = errors.New("duplicate command name")

	// ErrAlreadyRegistered is returned when a command path that already has
	// an explicitly registered action is registered a second time.
	ErrAlreadyRegistered = errors.New("command already registered")

	// ErrUnresolvedLeaf indicates the registration walk finished without
	// producing a leaf node. It signals a bug in the resolver or the
	// registration walk, not a user error.
	ErrUnresolvedLeaf = errors.New("leaf command was not registered")

	// ErrEmptyPath is returned when a command path has no segments.
	ErrEmptyPath = errors.New("empty command path")
)

// UsageError wraps a dispatch-time parsing failure (bad flag, missing
// required option, unknown sub-command) together with the node whose help
// should be shown. The registry itself never produces these after
// registration; they all originate in the per-node flag parsing.
type UsageError struct {
	Node *Node
	Err  error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Node.Path(), e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}
