package roaring

import "errors"

// Errors returned by the portable codec (C9). Internal invariant violations
// (a container with a typecode the dispatcher doesn't recognize, a corrupt
// shared-container refcount) are not in this list and are not detected: the
// dispatch switches have no case for an unknown typecode and fall through to
// a zero result, and nothing panics.
var (
	// ErrTruncated is returned when the buffer ends before a length the
	// header promised.
	ErrTruncated = errors.New("roaring: truncated input")

	// ErrBadCookie is returned when neither serial cookie matches.
	ErrBadCookie = errors.New("roaring: bad serial cookie")

	// ErrTooManyContainers is returned when the container count exceeds
	// the 1<<16 containers a 16-bit key space can address.
	ErrTooManyContainers = errors.New("roaring: container count exceeds 65536")

	// ErrUnorderedKeys is returned when container keys are not strictly
	// ascending.
	ErrUnorderedKeys = errors.New("roaring: container keys are not strictly ascending")

	// ErrCardinalityMismatch is returned when a descriptor's cardinality
	// contradicts what the container's type can hold.
	ErrCardinalityMismatch = errors.New("roaring: cardinality does not match container type")

	// ErrOverflow is returned when a run container's encoded runs would
	// overflow the 16-bit value space.
	ErrOverflow = errors.New("roaring: run overflows 16-bit range")
)
