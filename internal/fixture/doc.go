// Package fixture holds small datasets laid out the way the generator emits
// them: row tables, permutation indices, encoded relations and variants.
package fixture
