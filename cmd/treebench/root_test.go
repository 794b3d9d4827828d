package main

import (
	"bytes"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seipan/treebench/bench"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	out, err := execute(t, "-N", "64", "-i", "2", "-e", "bstree,btree", "--validate", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "KEYS: 64  TRIES TOT: 2")
	assert.Contains(t, out, "bstree:")
	assert.Contains(t, out, "btree:")
	assert.NotContains(t, out, "llrb:")
}

func TestRootCommandPrint(t *testing.T) {
	out, err := execute(t, "-N", "8", "-i", "1", "-e", "bstree", "--print", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "(p:- ")
	assert.Contains(t, out, "FINGERPRINT: ")
}

func TestRootCommandErrors(t *testing.T) {
	_, err := execute(t, "-e", "splay")
	require.Error(t, err)
	assert.True(t, merry.Is(err, bench.ErrUnknownEngine))

	_, err = execute(t, "--log-level", "loud")
	require.Error(t, err)
	assert.Equal(t, "log-level", merry.Value(err, "flag"))

	_, err = execute(t, "extra")
	assert.Error(t, err)
}
