// Package bench drives insert, lookup and delete workloads against the
// registered engines and reports timing statistics for each phase.
package bench

import (
	"sort"

	"github.com/ansel1/merry"
	log "github.com/sirupsen/logrus"

	"github.com/seipan/treebench"
	"github.com/seipan/treebench/bstree"
)

// EngineFactory builds a fresh, empty engine.
type EngineFactory func(cfg *Config, logger log.FieldLogger) (treebench.Engine, error)

var (
	// ErrUnknownEngine is returned by NewEngine for unregistered names.
	ErrUnknownEngine = merry.New("unknown engine")

	// ErrDuplicateKey is reported by every engine when Insert is handed a
	// key it already holds.
	ErrDuplicateKey = bstree.ErrDuplicateKey

	globalEngineRegistry map[string]EngineFactory
)

func init() {
	globalEngineRegistry = make(map[string]EngineFactory)

	Register(bstEngineName, newBSTEngine)
	Register(mapEngineName, newMapEngine)
	Register(btreeEngineName, newBTreeEngine)
	Register(llrbEngineName, newLLRBEngine)
}

// Register makes an engine available under name, replacing any previous
// registration.
func Register(name string, factory EngineFactory) {
	globalEngineRegistry[name] = factory
}

// NewEngine returns a new instance of the engine registered under name.
func NewEngine(name string, cfg *Config, logger log.FieldLogger) (treebench.Engine, error) {
	factory, ok := globalEngineRegistry[name]
	if !ok {
		return nil, merry.Here(ErrUnknownEngine).Appendf("%q", name).WithValue("engine", name)
	}
	return factory(cfg, logger)
}

// EngineNames lists the registered engines in lexical order.
func EngineNames() []string {
	names := make([]string, 0, len(globalEngineRegistry))
	for name := range globalEngineRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
