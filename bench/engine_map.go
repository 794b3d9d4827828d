package bench

import (
	"github.com/ansel1/merry"
	log "github.com/sirupsen/logrus"

	"github.com/seipan/treebench"
)

const mapEngineName = "map"

// MapEngine is the unordered baseline: a plain Go map.
type MapEngine struct {
	mp map[int]int
}

func newMapEngine(cfg *Config, _ log.FieldLogger) (treebench.Engine, error) {
	return &MapEngine{mp: make(map[int]int, cfg.Keys)}, nil
}

func (e *MapEngine) Name() string { return mapEngineName }

func (e *MapEngine) Insert(key int) error {
	if _, ok := e.mp[key]; ok {
		return merry.Here(ErrDuplicateKey).Appendf("%v", key).WithValue("key", key)
	}
	e.mp[key] = key
	return nil
}

func (e *MapEngine) Find(key int) bool {
	_, ok := e.mp[key]
	return ok
}

func (e *MapEngine) Delete(key int) bool {
	if _, ok := e.mp[key]; !ok {
		return false
	}
	delete(e.mp, key)
	return true
}

func (e *MapEngine) Len() int { return len(e.mp) }

// Close drops every entry; the engine stays usable.
func (e *MapEngine) Close() {
	e.mp = make(map[int]int)
}
