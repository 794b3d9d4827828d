package bstree

import "github.com/ansel1/merry"

var (
	// ErrDuplicateKey is returned by Insert when the key is already held by
	// the tree. The tree is left unmodified.
	ErrDuplicateKey = merry.New("duplicate key")

	// ErrInvariantViolation marks a structural inconsistency between parent
	// and child links. It is never returned from a mutating operation, the
	// tree panics with it instead.
	ErrInvariantViolation = merry.New("invariant violation")
)

// IsDuplicateKey reports whether err was caused by inserting a key twice.
func IsDuplicateKey(err error) bool {
	return merry.Is(err, ErrDuplicateKey)
}

// IsInvariantViolation reports whether err, or a value recovered from a
// panic, describes a corrupted tree.
func IsInvariantViolation(err error) bool {
	return merry.Is(err, ErrInvariantViolation)
}

func violation(format string, args ...interface{}) merry.Error {
	return merry.Here(ErrInvariantViolation).Appendf(format, args...)
}
