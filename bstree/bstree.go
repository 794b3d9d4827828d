// Package bstree implements an unbalanced binary search tree with parent
// back-references. The tree rejects duplicate keys, deletes by splicing
// (leaf, one child, two children) and exposes depth diagnostics so that
// the shape produced by a key stream can be inspected.
//
// A Tree is not safe for concurrent use.
package bstree

import (
	"cmp"
	"io"

	"github.com/ansel1/merry"
	log "github.com/sirupsen/logrus"
)

type (
	// Tree is an ordered key/payload container. The zero value is not
	// usable, construct trees with New.
	Tree[K cmp.Ordered, V any] struct {
		root     *Node[K, V]
		count    int
		inserted int

		logger   log.FieldLogger
		validate bool
	}

	// Option configures a Tree.
	Option func(*options)

	options struct {
		logger   log.FieldLogger
		validate bool
	}
)

// WithLogger routes the tree's diagnostics to logger.
func WithLogger(logger log.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithValidation makes every Insert and Delete re-check the whole tree
// afterwards and panic on the first inconsistency. This is O(n) per
// mutation and meant for tests and debugging runs.
func WithValidation(enabled bool) Option {
	return func(o *options) {
		o.validate = enabled
	}
}

// New returns an empty tree.
func New[K cmp.Ordered, V any](opts ...Option) *Tree[K, V] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		discard := log.New()
		discard.Out = io.Discard
		o.logger = discard
	}
	return &Tree[K, V]{logger: o.logger, validate: o.validate}
}

// Size returns the number of nodes currently held.
func (t *Tree[K, V]) Size() int { return t.count }

// Inserted returns the number of successful insertions over the lifetime of
// the tree, regardless of later deletions.
func (t *Tree[K, V]) Inserted() int { return t.inserted }

// Insert adds key with its payload and returns the new node together with
// its depth, counting the root as depth 1. Keys smaller than a node's key
// go left, larger keys go right.
//
// If key is already present the tree is not modified and the returned
// error satisfies IsDuplicateKey; depth then is the depth of the node
// holding the key.
func (t *Tree[K, V]) Insert(key K, payload V) (*Node[K, V], int, error) {
	if t.root == nil {
		t.root = newNode(key, payload)
		t.grew()
		t.check("insert")
		return t.root, 1, nil
	}

	var parent *Node[K, V]
	depth := 0
	for cur := t.root; cur != nil; {
		parent = cur
		depth++
		switch {
		case key < cur.key:
			cur = cur.left
		case key > cur.key:
			cur = cur.right
		default:
			err := merry.Here(ErrDuplicateKey).Appendf("%v", key).WithValue("key", key)
			return nil, depth, err
		}
	}

	n := newNode(key, payload)
	n.parent = parent
	if key < parent.key {
		parent.left = n
	} else {
		parent.right = n
	}
	t.grew()
	t.check("insert")
	return n, depth + 1, nil
}

// Delete removes key and releases its payload. It returns false, leaving
// the tree untouched, when key is not present.
func (t *Tree[K, V]) Delete(key K) bool {
	n := t.Find(key)
	if n == nil {
		return false
	}
	t.deleteNode(n, true)
	t.check("delete")
	return true
}

// deleteNode splices n out of the tree. A node with two children takes over
// the key and payload of the smallest node in its right subtree, and that
// donor, which has no left child, is removed instead.
func (t *Tree[K, V]) deleteNode(n *Node[K, V], ownsPayload bool) {
	if n.left != nil && n.right != nil {
		donor := t.FindMin(n.right)
		n.releasePayload()
		n.key, n.payload = donor.key, donor.payload
		t.deleteNode(donor, false)
		return
	}

	successor := n.left
	if successor == nil {
		successor = n.right
	}
	t.replaceChild(n.parent, n, successor)
	if successor != nil {
		successor.parent = n.parent
	}
	if ownsPayload {
		n.release()
	} else {
		n.unlink()
	}
	t.shrank()
}

// replaceChild points the link that held old at child. A nil parent means
// old is the root.
func (t *Tree[K, V]) replaceChild(parent, old, child *Node[K, V]) {
	switch {
	case parent == nil:
		if t.root != old {
			t.abort(violation("node %v has no parent but is not the root", old.key))
		}
		t.root = child
	case parent.left == old:
		parent.left = child
	case parent.right == old:
		parent.right = child
	default:
		t.abort(violation("node %v is not a child of its parent %v", old.key, parent.key))
	}
}

// Find returns the node holding key, or nil.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	cur := t.root
	for cur != nil {
		switch {
		case key < cur.key:
			cur = cur.left
		case key > cur.key:
			cur = cur.right
		default:
			return cur
		}
	}
	return nil
}

// Get returns the payload associated with key.
func (t *Tree[K, V]) Get(key K) (payload V, found bool) {
	if n := t.Find(key); n != nil {
		return n.payload, true
	}
	return payload, false
}

// FindMin returns the node with the smallest key in the subtree rooted at
// n. It panics if n is nil.
func (t *Tree[K, V]) FindMin(n *Node[K, V]) *Node[K, V] {
	if n == nil {
		panic(merry.New("bstree: FindMin on an empty subtree"))
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func (t *Tree[K, V]) findMax(n *Node[K, V]) *Node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Min returns the smallest key and its payload.
func (t *Tree[K, V]) Min() (key K, payload V, found bool) {
	if t.root == nil {
		return key, payload, false
	}
	n := t.FindMin(t.root)
	return n.key, n.payload, true
}

// Max returns the largest key and its payload.
func (t *Tree[K, V]) Max() (key K, payload V, found bool) {
	if t.root == nil {
		return key, payload, false
	}
	n := t.findMax(t.root)
	return n.key, n.payload, true
}

// Close releases every node, children before their parent, and leaves the
// tree empty and ready for reuse. Parent links drive the walk so no stack
// is needed, however deep the tree.
func (t *Tree[K, V]) Close() {
	released := 0
	n := t.root
	for n != nil {
		switch {
		case n.left != nil:
			n = n.left
		case n.right != nil:
			n = n.right
		default:
			parent := n.parent
			if parent != nil {
				if parent.left == n {
					parent.left = nil
				} else {
					parent.right = nil
				}
			}
			n.release()
			released++
			n = parent
		}
	}
	if released != t.count {
		t.logger.WithFields(log.Fields{"released": released, "count": t.count}).
			Warn("teardown released a different number of nodes than the tree counted")
	}
	t.root, t.count = nil, 0
	t.logger.WithField("released", released).Debug("tree released")
}

func (t *Tree[K, V]) grew() {
	t.count++
	t.inserted++
}

func (t *Tree[K, V]) shrank() {
	if t.count > 0 {
		t.count--
	}
}

func (t *Tree[K, V]) check(op string) {
	if !t.validate {
		return
	}
	if err := t.Validate(); err != nil {
		t.abort(merry.WithValue(err, "op", op))
	}
}

// abort logs and panics; the tree can no longer be trusted.
func (t *Tree[K, V]) abort(err error) {
	t.logger.WithField("error", merry.Details(err)).Error("tree corrupted")
	panic(err)
}
