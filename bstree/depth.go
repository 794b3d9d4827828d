package bstree

import "cmp"

// DepthStats summarises the depth, in edges from the root, of every leaf.
type DepthStats struct {
	Leaves int
	Min    int
	Max    int
	Mean   float64
}

type depthFrame[K cmp.Ordered, V any] struct {
	n     *Node[K, V]
	depth int
}

// MaxDepth returns the number of edges between the root and the deepest
// leaf, 0 for an empty tree or a lone root.
func (t *Tree[K, V]) MaxDepth() int {
	deepest := 0
	t.LeafDepths(func(depth int) {
		if depth > deepest {
			deepest = depth
		}
	})
	return deepest
}

// LeafDepths calls fn with the depth of every leaf, in pre-order.
func (t *Tree[K, V]) LeafDepths(fn func(depth int)) {
	if t.root == nil {
		return
	}
	stack := []depthFrame[K, V]{{n: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n.isLeaf() {
			fn(f.depth)
			continue
		}
		if f.n.right != nil {
			stack = append(stack, depthFrame[K, V]{n: f.n.right, depth: f.depth + 1})
		}
		if f.n.left != nil {
			stack = append(stack, depthFrame[K, V]{n: f.n.left, depth: f.depth + 1})
		}
	}
}

// Depths collects leaf depth statistics in a single walk.
func (t *Tree[K, V]) Depths() DepthStats {
	var stats DepthStats
	total := 0
	t.LeafDepths(func(depth int) {
		if stats.Leaves == 0 || depth < stats.Min {
			stats.Min = depth
		}
		if depth > stats.Max {
			stats.Max = depth
		}
		stats.Leaves++
		total += depth
	})
	if stats.Leaves > 0 {
		stats.Mean = float64(total) / float64(stats.Leaves)
	}
	return stats
}
