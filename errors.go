package sparsebitmap

import "github.com/pkg/errors"

// Sentinel errors returned by this package. Callers should compare
// against these with the standard library's errors.Is, which still
// works through a pkg/errors wrap since that package's errors implement
// Unwrap.
var (
	// ErrOutOfOrder is returned by Set when the requested position
	// would require rewriting a pair other than the trailing one, and
	// by Add when the word offset is below the bitmap's sizeinwords.
	ErrOutOfOrder = errors.New("sparsebitmap: position out of order")

	// ErrEmptyAggregate is returned by the skip-driven n-ary kernels
	// (AndIterators, FastAndIterators, TreeAndIterators, FlatAndIterators,
	// ReverseFlatAndIterators) when called with zero inputs. The bitmap
	// aggregation scheduler (And, Or, Xor) never returns this: it
	// returns an empty bitmap instead.
	ErrEmptyAggregate = errors.New("sparsebitmap: aggregate requires at least one input")

	// ErrUnsupported is returned by AdvanceUntil on the iterator
	// produced by FastAndIterators, which does not implement it.
	ErrUnsupported = errors.New("sparsebitmap: operation not supported")

	// ErrTruncated is returned when deserializing a truncated or
	// malformed byte stream.
	ErrTruncated = errors.New("sparsebitmap: truncated byte stream")
)
