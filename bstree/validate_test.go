package bstree

import (
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		scenario string
		corrupt  func(*Tree[int, string])
	}{
		{
			scenario: "a child pointing at the wrong parent",
			corrupt:  func(tr *Tree[int, string]) { tr.Find(8).parent = tr.Find(3) },
		},
		{
			scenario: "a key on the wrong side of an ancestor",
			corrupt:  func(tr *Tree[int, string]) { tr.Find(4).key = 6 },
		},
		{
			scenario: "a node count that disagrees with the reachable nodes",
			corrupt:  func(tr *Tree[int, string]) { tr.count++ },
		},
		{
			scenario: "a root with a parent",
			corrupt:  func(tr *Tree[int, string]) { tr.root.parent = tr.Find(1) },
		},
		{
			scenario: "a subtree linked from two parents",
			corrupt: func(tr *Tree[int, string]) {
				// 9 hangs below 8 and below 4 at once
				tr.Find(4).right = tr.Find(9)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			tr := newTree(t, 5, 3, 8, 1, 4, 7, 9)
			require.NoError(t, tr.Validate())
			test.corrupt(tr)
			err := tr.Validate()
			require.Error(t, err)
			assert.True(t, IsInvariantViolation(err), "%v", err)
			assert.False(t, IsDuplicateKey(err))
		})
	}
}

func TestValidateEmptyTreeWithCount(t *testing.T) {
	tr := New[int, int]()
	require.NoError(t, tr.Validate())
	tr.count = 1
	assert.True(t, IsInvariantViolation(tr.Validate()))
}

func TestDeleteWithBrokenParentLinkPanics(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	tr := New[int, string](WithLogger(logger))
	for _, k := range []int{5, 3} {
		_, _, err := tr.Insert(k, "")
		require.NoError(t, err)
	}
	tr.Find(3).parent = newNode(100, "stray")

	requireInvariantPanic(t, func() { tr.Delete(3) })

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "tree corrupted", entry.Message)
}

func TestDeleteOfDetachedNodePanics(t *testing.T) {
	tr := New[int, string]()
	for _, k := range []int{5, 3} {
		_, _, err := tr.Insert(k, "")
		require.NoError(t, err)
	}
	tr.Find(3).parent = nil

	requireInvariantPanic(t, func() { tr.Delete(3) })
}

func TestValidationOptionPanicsOnCorruption(t *testing.T) {
	tr := newTree(t, 5, 3, 8)
	tr.Find(8).parent = tr.Find(3)

	requireInvariantPanic(t, func() { _, _, _ = tr.Insert(1, "v1") })
}
