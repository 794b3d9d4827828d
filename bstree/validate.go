package bstree

import (
	"cmp"

	"github.com/ansel1/merry"
)

type bounds[K cmp.Ordered, V any] struct {
	n      *Node[K, V]
	lo, hi *Node[K, V]
}

// Validate walks the whole tree and reports the first broken invariant:
// key ordering, parent/child agreement, absence of cycles and shared
// children, and agreement between Size and the reachable node count.
func (t *Tree[K, V]) Validate() error {
	if t.root == nil {
		if t.count != 0 {
			return violation("empty tree counts %d nodes", t.count)
		}
		return nil
	}
	if t.root.parent != nil {
		return violation("root %v has parent %v", t.root.key, t.root.parent.key)
	}

	seen := make(map[*Node[K, V]]struct{}, t.count)
	stack := []bounds[K, V]{{n: t.root}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := b.n

		if _, ok := seen[n]; ok {
			return violation("node %v reachable twice", n.key)
		}
		seen[n] = struct{}{}

		if b.lo != nil && !(b.lo.key < n.key) {
			return violation("key %v not greater than ancestor %v", n.key, b.lo.key)
		}
		if b.hi != nil && !(n.key < b.hi.key) {
			return violation("key %v not less than ancestor %v", n.key, b.hi.key)
		}
		for _, child := range [2]*Node[K, V]{n.left, n.right} {
			if child != nil && child.parent != n {
				return merry.WithValue(
					violation("child %v of %v points to another parent", child.key, n.key),
					"key", child.key)
			}
		}
		if n.left != nil {
			stack = append(stack, bounds[K, V]{n: n.left, lo: b.lo, hi: n})
		}
		if n.right != nil {
			stack = append(stack, bounds[K, V]{n: n.right, lo: n, hi: b.hi})
		}
	}

	if len(seen) != t.count {
		return violation("tree counts %d nodes, %d reachable", t.count, len(seen))
	}
	return nil
}
