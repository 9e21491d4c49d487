package temporal

import (
	"cmp"
	"strings"
	"time"
)

// Comparator orders two values; negative means a ranks before b. It is the
// same contract as slices.SortStableFunc expects.
type Comparator[T any] func(a, b T) int

// Chain reduces comparators left to right, falling through to the next one
// on ties. Keeping precedence as an explicit ordered list makes each rule
// independently testable.
func Chain[T any](cmps ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, c := range cmps {
			if v := c(a, b); v != 0 {
				return v
			}
		}
		return 0
	}
}

// Desc inverts a comparator so that higher values rank first.
func Desc[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return -c(a, b)
	}
}

// Record is the subset of a versioned snapshot the shared tie-break reads.
type Record interface {
	RecordVersion() int
	RecordEffectiveAt() time.Time
	RecordID() string
}

// PreferLatest is the tie-break shared by every resolver: highest version
// first, then most recently effective, then id ascending. The id leg exists
// because two records can legitimately share version and timestamp, and the
// pick must stay deterministic regardless of input order.
func PreferLatest[T Record]() Comparator[T] {
	return Chain(
		Desc[T](func(a, b T) int { return cmp.Compare(a.RecordVersion(), b.RecordVersion()) }),
		Desc[T](func(a, b T) int { return a.RecordEffectiveAt().Compare(b.RecordEffectiveAt()) }),
		func(a, b T) int { return strings.Compare(a.RecordID(), b.RecordID()) },
	)
}
