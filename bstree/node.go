package bstree

import (
	"cmp"
	"reflect"
)

type (
	// Releaser is implemented by payloads that hold resources of their own.
	// Release is called exactly once, when the node owning the payload is
	// destroyed or the payload is overwritten by a relocated one. Nil
	// payloads are never released.
	Releaser interface {
		Release()
	}

	// Node is a single key/payload cell of the tree. A node owns its left
	// and right children; parent is a back-reference and owns nothing.
	//
	// Handles returned by Insert and Find stay valid only until the next
	// Delete on the same tree, which may move a key into a different node or
	// free the node outright.
	Node[K cmp.Ordered, V any] struct {
		key     K
		payload V
		left    *Node[K, V]
		right   *Node[K, V]
		parent  *Node[K, V]
	}
)

func newNode[K cmp.Ordered, V any](key K, payload V) *Node[K, V] {
	return &Node[K, V]{key: key, payload: payload}
}

// Key returns the key held by the node.
func (n *Node[K, V]) Key() K { return n.key }

// Payload returns the value associated with the key.
func (n *Node[K, V]) Payload() V { return n.payload }

func (n *Node[K, V]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// releasePayload hands the payload back to its Releaser, if any, and clears
// the slot so it cannot be released twice.
func (n *Node[K, V]) releasePayload() {
	if r, ok := any(n.payload).(Releaser); ok && !isNil(r) {
		r.Release()
	}
	var zero V
	n.payload = zero
}

// release destroys the node: payload first, then every link.
func (n *Node[K, V]) release() {
	n.releasePayload()
	n.unlink()
}

// unlink drops the node's links without touching the payload, for donors
// whose payload has already been relocated.
func (n *Node[K, V]) unlink() {
	var zero V
	n.payload = zero
	n.left, n.right, n.parent = nil, nil, nil
}

func isNil(v interface{}) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
