package insrcdata

import (
	"fmt"
	"slices"
)

// Labels gives names to selected rows of a table, so that code can refer to
// well-known rows without hard-coding positions.
type Labels[R any] struct {
	t      *Table[R]
	byName map[string]int
	byPos  map[int]string
}

// NewLabels binds label names to row positions of t. It panics with an
// *InvariantError if a label refers to a nonexistent row or if two labels
// share a row.
func NewLabels[R any](t *Table[R], labels map[string]int) *Labels[R] {
	l := &Labels[R]{
		t:      t,
		byName: make(map[string]int, len(labels)),
		byPos:  make(map[int]string, len(labels)),
	}
	for name, pos := range labels {
		t.At(pos)
		if prev, ok := l.byPos[pos]; ok {
			panic(brokenf("label", t.name, pos, "row labelled both %q and %q", prev, name))
		}
		l.byName[name] = pos
		l.byPos[pos] = name
	}
	return l
}

// Ref returns the row labelled name.
func (l *Labels[R]) Ref(name string) (Ref[R], error) {
	pos, ok := l.byName[name]
	if !ok {
		return Ref[R]{}, fmt.Errorf("%w %q for table %q", ErrUnknownLabel, name, l.t.name)
	}
	return l.t.At(pos), nil
}

// MustRef is like Ref but panics on unknown labels.
func (l *Labels[R]) MustRef(name string) Ref[R] {
	ref, err := l.Ref(name)
	if err != nil {
		panic(err)
	}
	return ref
}

// Name returns the label of the row at pos, if any.
func (l *Labels[R]) Name(pos int) (string, bool) {
	name, ok := l.byPos[pos]
	return name, ok
}

// Names returns all label names in row order.
func (l *Labels[R]) Names() []string {
	pos := make([]int, 0, len(l.byPos))
	for p := range l.byPos {
		pos = append(pos, p)
	}
	slices.Sort(pos)

	names := make([]string, len(pos))
	for i, p := range pos {
		names[i] = l.byPos[p]
	}
	return names
}
