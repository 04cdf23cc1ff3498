/*
Package insrcdata contains the runtime of static, read-only relational data
embedded in Go programs: immutable tables of fixed-schema rows, generated
ahead of time, queried through sorted secondary indices, relationship
resolvers, variant columns and depth-first hierarchies.

All structures are built once, before the first query, and never mutated.
Every query is a synchronous bounded computation returning an Iterator,
safe to issue from any number of goroutines.

Data Structure Documentation

Table

A table is a slice of rows. A row is identified by its position.

    +-------+-------+-------+-----+-----------+
    | row 0 | row 1 | row 2 | ... | row n - 1 |
    +-------+-------+-------+-----+-----------+

Index

An index is a slice of row positions, sorted by a key. A range query
[start, stop] is resolved by two binary searches, lo = first key >= start,
hi = first key > stop, and yields the rows index[lo:hi].

    person.score: keys  1.0   2.1   2.1   3.2
                  rows  0     1     3     2
                              ^-- Range(2.1, 3.2) --^

Relations

    mandatory to-one  stored as the target position
    optional to-one   stored as a Link (absent, or a target position)
    to-many           an index over the foreign key column, queried [owner, owner]
    many-to-many      a junction table with one index per side

Variants

A variant column stores a single integer per row. Each target table owns a
contiguous block of values, in declaration order; optional variants reserve
the value 0 for None.

    optional object: 0 = None | 1..4 = person[0..3] | 5..7 = lettercase[0..2]

Hierarchy

Nodes are stored in depth-first order, each holding its parent position.
The subtree of node i is [i, j) where j is the first following node whose
parent precedes i.

    pos     0  1  2  3  4  5  6
    parent  0  0  1  1  0  4  4
            A  B  b1 b2 C  c1 c2      subtree(B) = [1, 4)
*/
package insrcdata
