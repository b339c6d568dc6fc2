package network

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNodeNotFound  = errors.New("node not found")
	ErrEdgeNotFound  = errors.New("edge not found")
	ErrDuplicateNode = errors.New("node already exists")
	ErrDuplicateEdge = errors.New("edge key already in use")
	ErrEmptyName     = errors.New("node name is empty")
	ErrSelfLoop      = errors.New("self-loops are not allowed")
	ErrInvalidPath   = errors.New("invalid path")
)

// NetworkError provides structured error information for snapshot operations.
type NetworkError struct {
	Op      string // Operation that failed (e.g., "AddEdge", "NewPath")
	Entity  string // Entity type (e.g., "node", "edge", "path")
	Name    string // Entity name (node name or "u-v" endpoint pair)
	Key     int    // Parallel-edge key, -1 when not applicable
	Context string // Additional context
	Cause   error  // Underlying error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.Name != "" {
		if e.Key >= 0 {
			return fmt.Sprintf("%s %s %s (key %d): %v", e.Op, e.Entity, e.Name, e.Key, e.Cause)
		}
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.Name, e.Cause)
	}
	if e.Context != "" {
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *NetworkError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// nodeError builds a node-scoped NetworkError.
func nodeError(op, name string, cause error) error {
	return &NetworkError{Op: op, Entity: "node", Name: name, Key: -1, Cause: cause}
}

// edgeError builds an edge-scoped NetworkError.
func edgeError(op, u, v string, key int, cause error) error {
	return &NetworkError{Op: op, Entity: "edge", Name: u + "-" + v, Key: key, Cause: cause}
}

// pathError builds a path-scoped NetworkError.
func pathError(op, rendered string, cause error) error {
	return &NetworkError{Op: op, Entity: "path", Name: rendered, Key: -1, Cause: cause}
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNodeNotFound) || errors.Is(err, ErrEdgeNotFound)
}
