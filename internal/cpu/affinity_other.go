//go:build !linux

package cpu

// Resolve reports the cores as unavailable; no affinity API is wired here.
func Resolve() (cores []int, ok bool) {
	return nil, false
}

// Pin always fails with ErrUnsupported.
func Pin(core int) (release func(), err error) {
	return nil, ErrUnsupported
}
