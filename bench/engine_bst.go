package bench

import (
	log "github.com/sirupsen/logrus"

	"github.com/seipan/treebench"
	"github.com/seipan/treebench/bstree"
)

const bstEngineName = "bstree"

// BSTEngine adapts bstree.Tree to the engine contract. Payloads mirror the
// key.
type BSTEngine struct {
	tree   *bstree.Tree[int, int]
	depths []int
}

func newBSTEngine(cfg *Config, logger log.FieldLogger) (treebench.Engine, error) {
	tree := bstree.New[int, int](
		bstree.WithLogger(logger.WithField("engine", bstEngineName)),
		bstree.WithValidation(cfg.Validate),
	)
	return &BSTEngine{tree: tree}, nil
}

func (e *BSTEngine) Name() string { return bstEngineName }

func (e *BSTEngine) Insert(key int) error {
	_, depth, err := e.tree.Insert(key, key)
	if err != nil {
		return err
	}
	e.depths = append(e.depths, depth)
	return nil
}

func (e *BSTEngine) Find(key int) bool {
	return e.tree.Find(key) != nil
}

func (e *BSTEngine) Delete(key int) bool {
	return e.tree.Delete(key)
}

func (e *BSTEngine) Len() int { return e.tree.Size() }

func (e *BSTEngine) MaxDepth() int { return e.tree.MaxDepth() }

// InsertDepths returns the depth reported for every successful insertion,
// root counted as 1, in insertion order.
func (e *BSTEngine) InsertDepths() []int { return e.depths }

// Tree exposes the underlying tree for diagnostics.
func (e *BSTEngine) Tree() *bstree.Tree[int, int] { return e.tree }

func (e *BSTEngine) Close() {
	e.tree.Close()
	e.depths = nil
}
