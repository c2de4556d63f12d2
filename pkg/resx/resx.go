package resx

import (
	"github.com/resxtools/resxkit/internal/format"
	"github.com/resxtools/resxkit/internal/resxtext"
	"github.com/resxtools/resxkit/pkg/types"
)

// Parse extracts the key-to-value mapping of a document. For duplicate
// keys the last occurrence wins. Entries with an empty name are skipped.
func Parse(doc []byte) (map[string]string, error) {
	text, _, err := format.Decode(doc)
	if err != nil {
		return nil, err
	}
	return resxtext.Parse(text)
}

// Entries returns every entry of the document in document order,
// duplicates included. The position of an entry in the returned slice is
// its ordinal index.
func Entries(doc []byte) ([]types.Entry, error) {
	text, _, err := format.Decode(doc)
	if err != nil {
		return nil, err
	}
	return resxtext.Entries(text)
}

// Lookup returns the value of one key, or ErrNotFound. This is a
// convenience for callers that would otherwise parse the whole document
// and index the map.
func Lookup(doc []byte, key string) (string, error) {
	m, err := Parse(doc)
	if err != nil {
		return "", err
	}
	v, ok := m[key]
	if !ok {
		return "", types.ErrNotFound
	}
	return v, nil
}

// Sniff reports the document's format fingerprint: encoding marker,
// dominant line-ending convention, and inferred indentation unit.
func Sniff(doc []byte) (types.Fingerprint, error) {
	text, enc, err := format.Decode(doc)
	if err != nil {
		return types.Fingerprint{}, err
	}
	return types.Fingerprint{
		HasMarker:  enc.HasMarker(),
		LineEnding: format.DetectLineEnding(text),
		IndentUnit: format.InferIndent(text),
	}, nil
}

// UpdateValue rewrites the value of one entry. A key absent from the
// document is a silent no-op.
func UpdateValue(doc []byte, key, value string) ([]byte, error) {
	return UpdateValues(doc, map[string]string{key: value})
}

// UpdateValues rewrites the values of every entry named in updates in a
// single pass. Absent keys are silently ignored; an empty map returns
// the document byte-for-byte.
func UpdateValues(doc []byte, updates map[string]string) ([]byte, error) {
	return mutate(doc, func(text []byte, _ types.Fingerprint) ([]byte, error) {
		return resxtext.UpdateValues(text, updates)
	})
}

// RenameKey changes the name attribute of the entry keyed oldKey. The
// entry's value and every sibling stay byte-identical. A missing oldKey
// is a silent no-op; no uniqueness check is made against newKey.
func RenameKey(doc []byte, oldKey, newKey string) ([]byte, error) {
	return mutate(doc, func(text []byte, _ types.Fingerprint) ([]byte, error) {
		return resxtext.RenameKey(text, oldKey, newKey)
	})
}

// InsertEntry synthesizes a new entry at the given ordinal index,
// indented to match its neighbors. Indices at or past the entry count
// append. Returns ErrDuplicateKey when the key already exists, detected
// by the raw literal pre-check.
func InsertEntry(doc []byte, key, value string, index int) ([]byte, error) {
	return mutate(doc, func(text []byte, fp types.Fingerprint) ([]byte, error) {
		return resxtext.InsertEntry(text, key, value, index, fp.LineEnding, fp.IndentUnit)
	})
}

// InsertEntries inserts every item in one streaming pass. Items are
// applied in ascending index order, caller order for ties.
func InsertEntries(doc []byte, items []types.InsertItem) ([]byte, error) {
	return mutate(doc, func(text []byte, fp types.Fingerprint) ([]byte, error) {
		return resxtext.InsertEntries(text, items, fp.LineEnding, fp.IndentUnit)
	})
}

// RemoveEntry deletes one entry and the whitespace that separated it
// from its neighbors. It returns the ordinal index the entry occupied,
// or -1 when the key was not present (a silent no-op, consistent with
// update and rename).
func RemoveEntry(doc []byte, key string) ([]byte, int, error) {
	out, ordinals, err := RemoveEntries(doc, []string{key})
	if err != nil {
		return nil, -1, err
	}
	ordinal, ok := ordinals[key]
	if !ok {
		ordinal = -1
	}
	return out, ordinal, nil
}

// RemoveEntries deletes every listed entry in one pass and returns, per
// removed key, the ordinal index it occupied. Keys not present in the
// document are absent from the map.
func RemoveEntries(doc []byte, keys []string) ([]byte, map[string]int, error) {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	var ordinals map[string]int
	out, err := mutate(doc, func(text []byte, _ types.Fingerprint) ([]byte, error) {
		var err error
		var res []byte
		res, ordinals, err = resxtext.RemoveEntries(text, set)
		return res, err
	})
	if err != nil {
		return nil, nil, err
	}
	return out, ordinals, nil
}

// mutate runs one editing pass between the decode and encode halves of
// the preprocessor: the marker is stripped and the text decoded, the
// fingerprint re-derived, the pass applied, and the marker re-attached.
func mutate(doc []byte, pass func(text []byte, fp types.Fingerprint) ([]byte, error)) ([]byte, error) {
	text, enc, err := format.Decode(doc)
	if err != nil {
		return nil, err
	}
	fp := types.Fingerprint{
		HasMarker:  enc.HasMarker(),
		LineEnding: format.DetectLineEnding(text),
		IndentUnit: format.InferIndent(text),
	}
	edited, err := pass(text, fp)
	if err != nil {
		return nil, err
	}
	return format.Encode(edited, enc)
}
