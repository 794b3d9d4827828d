package bench

import (
	"strconv"

	"github.com/NVIDIA/sortedmap"
	"github.com/ansel1/merry"
	log "github.com/sirupsen/logrus"

	"github.com/seipan/treebench"
)

const llrbEngineName = "llrb"

// LLRBEngine measures the left-leaning red-black tree of
// NVIDIA/sortedmap. The tree only fails on keys its comparison function
// cannot handle, which the int-only engine contract rules out, so such
// errors panic.
type LLRBEngine struct {
	tree sortedmap.LLRBTree
}

func newLLRBEngine(_ *Config, _ log.FieldLogger) (treebench.Engine, error) {
	e := &LLRBEngine{}
	e.tree = sortedmap.NewLLRBTree(sortedmap.CompareInt, e)
	return e, nil
}

func (e *LLRBEngine) Name() string { return llrbEngineName }

func (e *LLRBEngine) Insert(key int) error {
	ok, err := e.tree.Put(key, key)
	if err != nil {
		return merry.Wrap(err)
	}
	if !ok {
		return merry.Here(ErrDuplicateKey).Appendf("%v", key).WithValue("key", key)
	}
	return nil
}

func (e *LLRBEngine) Find(key int) bool {
	_, ok, err := e.tree.GetByKey(key)
	must(err)
	return ok
}

func (e *LLRBEngine) Delete(key int) bool {
	ok, err := e.tree.DeleteByKey(key)
	must(err)
	return ok
}

func (e *LLRBEngine) Len() int {
	n, err := e.tree.Len()
	must(err)
	return n
}

// Close drops the tree and starts over with an empty one.
func (e *LLRBEngine) Close() {
	e.tree = sortedmap.NewLLRBTree(sortedmap.CompareInt, e)
}

// DumpKey implements sortedmap.DumpCallbacks.
func (e *LLRBEngine) DumpKey(key sortedmap.Key) (string, error) {
	k, ok := key.(int)
	if !ok {
		return "", merry.Errorf("llrb: key %v is not an int", key)
	}
	return strconv.Itoa(k), nil
}

// DumpValue implements sortedmap.DumpCallbacks.
func (e *LLRBEngine) DumpValue(value sortedmap.Value) (string, error) {
	v, ok := value.(int)
	if !ok {
		return "", merry.Errorf("llrb: value %v is not an int", value)
	}
	return strconv.Itoa(v), nil
}

func must(err error) {
	if err != nil {
		panic(merry.Wrap(err))
	}
}
