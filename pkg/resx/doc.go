// Package resx is the public surface of the format-preserving .resx
// editing engine.
//
// Two levels of API are provided. The bytes-level functions take a whole
// document as input and return a whole document as output; they never
// touch the filesystem. The file-level functions wrap them in a complete
// read-modify-write transaction: content is read fresh from disk at the
// start of every call and written back in full at the end, so there is
// no document object spanning calls.
//
// Every mutating operation preserves the parts of the document it did
// not touch byte-for-byte: indentation, line-ending convention, the
// leading byte-order marker, comments, attribute order, and entry
// ordering all survive. Formatting conventions are re-inferred from the
// document on every call rather than cached.
//
// The engine performs no locking; serializing concurrent edits to one
// file is the caller's responsibility.
package resx
