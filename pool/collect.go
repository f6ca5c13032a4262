package pool

import (
	"cmp"
	"fmt"
	"slices"
)

// collect drains results until the channel is closed, sorts the buffer by
// input index and projects out the values. size is the number of inputs;
// any gap or duplicate index is reported as ErrIndexMismatch.
func collect[R any](results <-chan resultItem[R], size int) ([]R, error) {
	buf := make([]resultItem[R], 0, size)
	for r := range results {
		buf = append(buf, r)
	}

	if len(buf) != size {
		return nil, fmt.Errorf("%w: got %d results for %d items", ErrIndexMismatch, len(buf), size)
	}

	slices.SortStableFunc(buf, func(a, b resultItem[R]) int {
		return cmp.Compare(a.index, b.index)
	})

	out := make([]R, size)
	for i, r := range buf {
		if r.index != i {
			return nil, fmt.Errorf("%w: position %d holds index %d", ErrIndexMismatch, i, r.index)
		}
		out[i] = r.value
	}

	return out, nil
}
