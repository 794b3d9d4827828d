// Package treebench measures ordered key/value containers against each
// other. The engines live in sub-packages: bstree holds the unbalanced
// binary search tree, bench drives the measurements and cmd/treebench is
// the command line front end.
package treebench

type (
	// Engine is the contract every container under measurement satisfies.
	// Keys handed to Insert are unique; an engine that detects a repeated
	// key reports it as an error rather than overwriting the entry.
	Engine interface {
		Name() string
		Insert(key int) error
		Find(key int) bool
		Delete(key int) bool
		Len() int
		// Close releases every entry held by the engine.
		Close()
	}

	// Depther is implemented by engines that can report their height, in
	// edges from the root to the deepest leaf.
	Depther interface {
		MaxDepth() int
	}
)
