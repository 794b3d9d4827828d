package bstree

import (
	"cmp"
	"fmt"
)

type (
	// Record describes one node and its immediate neighbours. Absent
	// neighbours are nil.
	Record[K cmp.Ordered] struct {
		Key    K
		Parent *K
		Left   *K
		Right  *K
	}

	// Traversal walks a tree in pre-order, one Record per call to Next.
	// It must not be used across a mutation of the tree it came from.
	Traversal[K cmp.Ordered, V any] struct {
		stack []*Node[K, V]
	}
)

// Traverse starts a fresh pre-order walk from the root.
func (t *Tree[K, V]) Traverse() *Traversal[K, V] {
	tr := &Traversal[K, V]{}
	if t.root != nil {
		tr.stack = append(tr.stack, t.root)
	}
	return tr
}

// Next returns the next record, or false once every node has been visited.
func (tr *Traversal[K, V]) Next() (rec Record[K], ok bool) {
	if len(tr.stack) == 0 {
		return rec, false
	}
	n := tr.stack[len(tr.stack)-1]
	tr.stack = tr.stack[:len(tr.stack)-1]
	if n.right != nil {
		tr.stack = append(tr.stack, n.right)
	}
	if n.left != nil {
		tr.stack = append(tr.stack, n.left)
	}
	return Record[K]{
		Key:    n.key,
		Parent: keyOf(n.parent),
		Left:   keyOf(n.left),
		Right:  keyOf(n.right),
	}, true
}

func keyOf[K cmp.Ordered, V any](n *Node[K, V]) *K {
	if n == nil {
		return nil
	}
	k := n.key
	return &k
}

func (r Record[K]) String() string {
	return fmt.Sprintf("%v (p:%s l:%s r:%s)", r.Key, optional(r.Parent), optional(r.Left), optional(r.Right))
}

func optional[K cmp.Ordered](k *K) string {
	if k == nil {
		return "-"
	}
	return fmt.Sprint(*k)
}

// Ascend calls fn for every key in increasing order until fn returns false.
func (t *Tree[K, V]) Ascend(fn func(key K, payload V) bool) {
	var stack []*Node[K, V]
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n.key, n.payload) {
			return
		}
		n = n.right
	}
}

// Keys returns every key in increasing order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	t.Ascend(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
