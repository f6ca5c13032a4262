// Package cpu resolves the logical cores available to the process and pins
// worker threads to them.
//
// Core enumeration and pinning are best effort: on platforms without an
// affinity API Resolve reports the cores as unavailable and Pin returns
// ErrUnsupported, and callers simply run unpinned.
package cpu

import "errors"

// ErrUnsupported is returned by Pin on platforms without thread affinity.
var ErrUnsupported = errors.New("cpu: thread affinity not supported on this platform")
