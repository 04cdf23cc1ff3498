package insrcdata

import (
	"cmp"
	"context"
	"fmt"

	"github.com/sebkeim/insrcdata/pack"
)

// LoadOptions configure index loading from a pack.
type LoadOptions struct {
	// Logger receives load diagnostics.
	// Default: NoopLogger().
	Logger *Logger

	// Filtered accepts sections listing a subset of the table rows, as
	// stored for optional relations. Full indices must list every row.
	// Default: false.
	Filtered bool
}

func (o *LoadOptions) norm() *LoadOptions {
	var oo LoadOptions
	if o != nil {
		oo = *o
	}

	if oo.Logger == nil {
		oo.Logger = NoopLogger()
	}
	return &oo
}

// AddIndex stores the permutation of x in b, under the index name.
func AddIndex[R any, K cmp.Ordered](b *pack.Builder, x *Index[R, K]) error {
	return b.AddPositions(x.name, x.perm)
}

// LoadIndex decodes the permutation stored under name in r and wraps it in a
// verified index over t.
func LoadIndex[R any, K cmp.Ordered](ctx context.Context, r *pack.Reader, t *Table[R], name string, key func(*R) K, o *LoadOptions) (*Index[R, K], error) {
	o = o.norm()

	perm, err := r.Positions(name)
	var x *Index[R, K]
	if err == nil {
		if o.Filtered {
			x = NewFilteredIndex(t, name, key, perm)
		} else {
			x = NewIndex(t, name, key, perm)
		}
		err = x.Verify()
	}
	o.Logger.LogLoad(ctx, name, len(perm), err)

	if err != nil {
		return nil, fmt.Errorf("insrcdata: load index %q: %w", name, err)
	}
	return x, nil
}

// MustLoadIndex is like LoadIndex but panics on error. It is meant for
// package-level static initialisation from an embedded pack.
func MustLoadIndex[R any, K cmp.Ordered](r *pack.Reader, t *Table[R], name string, key func(*R) K) *Index[R, K] {
	x, err := LoadIndex(context.Background(), r, t, name, key, nil)
	if err != nil {
		panic(err)
	}
	return x
}
