// Package resxtext implements the format-preserving editing engine for
// .resx resource tables.
//
// The engine never builds a document tree. Every operation is a single
// forward pass over a stream of raw-span tokens: tokens outside the
// targeted region are copied to the output verbatim, and only the
// targeted region is intercepted and replaced. Because the tokens are
// contiguous byte spans of the input, an edit that targets nothing
// reproduces the document byte-for-byte, and untouched entries keep
// their exact indentation, attribute order, comments, and entity usage.
//
// The shared state machine for update, remove, and streaming insert is
//
//	OUTSIDE -> (entry start matches target) -> INSIDE_TARGET
//	INSIDE_TARGET -> (matching entry end) -> OUTSIDE
//
// with tokens seen INSIDE_TARGET suppressed or selectively rewritten and
// tokens seen OUTSIDE passed through unchanged.
package resxtext
