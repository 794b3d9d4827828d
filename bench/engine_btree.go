package bench

import (
	"github.com/ansel1/merry"
	"github.com/google/btree"
	log "github.com/sirupsen/logrus"

	"github.com/seipan/treebench"
)

const btreeEngineName = "btree"

// BTreeEngine measures google/btree with the configured degree.
type BTreeEngine struct {
	tree *btree.BTree
}

func newBTreeEngine(cfg *Config, _ log.FieldLogger) (treebench.Engine, error) {
	if cfg.BTreeDegree < 2 {
		return nil, merry.Here(ErrInvalidConfig).Appendf("btree degree %d", cfg.BTreeDegree)
	}
	return &BTreeEngine{tree: btree.New(cfg.BTreeDegree)}, nil
}

func (e *BTreeEngine) Name() string { return btreeEngineName }

func (e *BTreeEngine) Insert(key int) error {
	if e.tree.Has(btree.Int(key)) {
		return merry.Here(ErrDuplicateKey).Appendf("%v", key).WithValue("key", key)
	}
	e.tree.ReplaceOrInsert(btree.Int(key))
	return nil
}

func (e *BTreeEngine) Find(key int) bool {
	return e.tree.Has(btree.Int(key))
}

func (e *BTreeEngine) Delete(key int) bool {
	return e.tree.Delete(btree.Int(key)) != nil
}

func (e *BTreeEngine) Len() int { return e.tree.Len() }

func (e *BTreeEngine) Close() {
	e.tree.Clear(false)
}
