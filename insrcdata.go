package insrcdata

import (
	"errors"
	"fmt"
)

// ErrInvariant is matched by every error reporting data that violates the
// layout guaranteed by the generator.
var ErrInvariant = errors.New("insrcdata: broken invariant")

// ErrUnknownLabel is returned when a label name is not defined.
var ErrUnknownLabel = errors.New("insrcdata: unknown label")

// InvariantError describes a broken generator invariant: an out-of-bounds
// position, an unsorted index, a corrupt variant value. Query operations
// panic with an *InvariantError, Verify methods return it.
type InvariantError struct {
	Op    string // the operation or check that failed
	Table string // the table involved
	Pos   int    // the offending position or value
	Len   int    // the table (or domain) length
	Msg   string // optional detail
}

func (e *InvariantError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("insrcdata: %s %q at %d: %s", e.Op, e.Table, e.Pos, e.Msg)
	}
	return fmt.Sprintf("insrcdata: %s %q position %d out of range [0, %d)", e.Op, e.Table, e.Pos, e.Len)
}

// Is allows errors.Is(err, ErrInvariant).
func (e *InvariantError) Is(target error) bool { return target == ErrInvariant }

func outOfRange(op, table string, pos, n int) *InvariantError {
	return &InvariantError{Op: op, Table: table, Pos: pos, Len: n}
}

func brokenf(op, table string, pos int, format string, args ...interface{}) *InvariantError {
	return &InvariantError{Op: op, Table: table, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Verifier is implemented by structures that can check their own invariants.
type Verifier interface {
	Verify() error
}
