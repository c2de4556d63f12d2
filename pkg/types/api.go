package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindIO          ErrKind = iota // source unreadable or unwritable
	ErrKindMalformed                  // token stream not well-formed
	ErrKindDuplicate                  // add-new-key target already present
	ErrKindNotFound                   // missing key (lookups only; mutations no-op)
	ErrKindUnsupported                // recognized but unsupported encoding/feature
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind. This lets
// errors.Is match wrapped engine errors against the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrMalformed indicates the document's token stream is not well-formed.
	ErrMalformed = &Error{Kind: ErrKindMalformed, Msg: "malformed resource document"}
	// ErrDuplicateKey indicates an add-new-key target already exists.
	ErrDuplicateKey = &Error{Kind: ErrKindDuplicate, Msg: "key already exists"}
	// ErrNotFound indicates a missing key. Mutations never return it; only
	// explicit lookups do.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "key not found"}
	// ErrUnsupportedEncoding indicates a document encoding the engine
	// cannot process.
	ErrUnsupportedEncoding = &Error{Kind: ErrKindUnsupported, Msg: "unsupported document encoding"}
)

// -----------------------------------------------------------------------------
// Core Data Types
// -----------------------------------------------------------------------------

// Entry is one key/value pair of a resource table. Order among entries is
// significant: it defines the ordinal index used by insert and remove.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// InsertItem is one pending insertion for a batch insert pass. Index is
// the 0-based ordinal rank the new entry should occupy among the entries
// that survive the pass; indices past the end append.
type InsertItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Index int    `json:"index"`
}

// Fingerprint captures the formatting conventions of a document: whether
// it begins with a byte-order marker, which line-ending convention
// dominates, and the whitespace prefix used before entry elements.
//
// A fingerprint is re-derived on every mutating call and never cached
// across calls, so edits from different sessions stay consistent with the
// file as it is on disk.
type Fingerprint struct {
	HasMarker  bool   `json:"hasMarker"`
	LineEnding string `json:"lineEnding"` // "\n" or "\r\n"
	IndentUnit string `json:"indentUnit"`
}
