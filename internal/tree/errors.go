package tree

import "errors"

var (
	// ErrNotFound is returned when a code or key does not exist in the tree.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateCode is returned when a destination code is already taken.
	ErrDuplicateCode = errors.New("code already in use")

	// ErrInvalidDestination is returned when a destination parent does not
	// resolve to any node.
	ErrInvalidDestination = errors.New("destination parent not found")

	// ErrCycle is returned when a node would be moved beneath itself.
	ErrCycle = errors.New("destination is inside the moved subtree")

	// ErrRootImmovable is returned for attempts to detach the root.
	ErrRootImmovable = errors.New("root node cannot be moved")

	// ErrInvalidCode is returned for malformed dotted codes.
	ErrInvalidCode = errors.New("invalid code")

	// ErrCodeMismatch marks a node whose code disagrees with its position.
	ErrCodeMismatch = errors.New("code does not match position")
)
