package domain

import "errors"

var (
	// ErrNotFound signals a missing movie or comment. An unparseable
	// identifier maps to the same condition: both mean "no such entity".
	ErrNotFound = errors.New("not found")
	// ErrFilterTooBroad signals that a facet aggregation exceeded the
	// store's resource limits and the caller should narrow the filter.
	ErrFilterTooBroad = errors.New("filter too broad, narrow the search")
)
