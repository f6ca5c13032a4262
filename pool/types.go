package pool

// MapFunc is the transformation applied to every item. It must be safe to
// call from several goroutines at once.
//
// Type parameters:
//   - T: The input item type
//   - R: The result type
type MapFunc[T any, R any] func(item T) R

// Mapper is an order-preserving parallel map. Implementations differ only in
// how the parallel branch is scheduled; for the same items, function and
// threshold every Mapper returns the same slice.
type Mapper[T any, R any] interface {
	// Map returns fn applied to every item, in input order.
	Map(items []T, fn MapFunc[T, R]) ([]R, error)

	// Threshold returns the input length at and above which work runs in
	// parallel.
	Threshold() int
}

// workItem is an input tagged with its position in the input slice.
type workItem[T any] struct {
	index   int
	payload T
}

// resultItem is a value tagged with the position of the input it came from.
type resultItem[R any] struct {
	index int
	value R
}
