package resx

import "github.com/resxtools/resxkit/pkg/types"

// Re-export commonly used types from pkg/types so most callers only
// need to import pkg/resx.

// Core types.
type (
	Entry       = types.Entry
	InsertItem  = types.InsertItem
	Fingerprint = types.Fingerprint
)

// Error types.
type (
	Error   = types.Error
	ErrKind = types.ErrKind
)

// Error kind constants.
const (
	ErrKindIO          = types.ErrKindIO
	ErrKindMalformed   = types.ErrKindMalformed
	ErrKindDuplicate   = types.ErrKindDuplicate
	ErrKindNotFound    = types.ErrKindNotFound
	ErrKindUnsupported = types.ErrKindUnsupported
)

// Sentinel errors.
var (
	ErrMalformed           = types.ErrMalformed
	ErrDuplicateKey        = types.ErrDuplicateKey
	ErrNotFound            = types.ErrNotFound
	ErrUnsupportedEncoding = types.ErrUnsupportedEncoding
)
