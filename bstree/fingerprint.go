package bstree

import (
	"fmt"

	"github.com/creachadair/cityhash"
)

// Fingerprint hashes the pre-order record stream of the tree. Two trees
// holding the same keys in the same shape have the same fingerprint, which
// makes it cheap to assert that an operation left the structure alone.
func (t *Tree[K, V]) Fingerprint() uint64 {
	var buf []byte
	tr := t.Traverse()
	for rec, ok := tr.Next(); ok; rec, ok = tr.Next() {
		buf = fmt.Appendf(buf, "%v|%s|%s|%s;", rec.Key, optional(rec.Parent), optional(rec.Left), optional(rec.Right))
	}
	return cityhash.Hash64(buf)
}
