package immutable

import "errors"

var (
	// ErrDecode is returned when a document cannot be decoded into collections.
	ErrDecode = errors.New("failed to decode immutable value")

	// ErrTooDeep is returned when a document nests deeper than MaxDecodeDepth.
	ErrTooDeep = errors.New("document nesting too deep")

	// ErrUnsupportedNode is returned for YAML nodes that have no collection equivalent.
	ErrUnsupportedNode = errors.New("unsupported document node")
)
