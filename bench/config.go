package bench

import (
	"github.com/ansel1/merry"
)

// ErrInvalidConfig is returned when a Config cannot drive a run.
var ErrInvalidConfig = merry.New("invalid config")

// Config describes one benchmark run.
type Config struct {
	// Keys is the dataset size; keys are the integers 0..Keys-1 in a
	// pseudo-random order.
	Keys int
	// Iterations is the number of times each engine is built, loaded and
	// torn down.
	Iterations int
	// Seed drives the dataset permutation.
	Seed int64
	// Engines names the registered engines to measure, in report order.
	Engines []string
	// DeleteKey is removed after the lookup sweep. Keys outside the dataset
	// exercise the not-found path.
	DeleteKey int
	// BTreeDegree is the degree of the btree engine.
	BTreeDegree int
	// Validate re-checks the bstree invariants after every mutation.
	Validate bool
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() *Config {
	return &Config{
		Keys:        1000,
		Iterations:  10,
		Seed:        1,
		Engines:     []string{bstEngineName, mapEngineName, btreeEngineName, llrbEngineName},
		DeleteKey:   17,
		BTreeDegree: 32,
	}
}

// Check reports the first setting that makes the configuration unusable.
func (c *Config) Check() error {
	switch {
	case c.Keys < 1:
		return merry.Here(ErrInvalidConfig).Appendf("keys must be positive, got %d", c.Keys)
	case c.Iterations < 1:
		return merry.Here(ErrInvalidConfig).Appendf("iterations must be positive, got %d", c.Iterations)
	case len(c.Engines) == 0:
		return merry.Here(ErrInvalidConfig).Append("no engines selected")
	}
	seen := make(map[string]bool, len(c.Engines))
	for _, name := range c.Engines {
		if _, ok := globalEngineRegistry[name]; !ok {
			return merry.Here(ErrUnknownEngine).Appendf("%q", name).WithValue("engine", name)
		}
		if seen[name] {
			return merry.Here(ErrInvalidConfig).Appendf("engine %q selected twice", name)
		}
		seen[name] = true
	}
	return nil
}
