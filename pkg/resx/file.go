package resx

import (
	"io/fs"
	"math"
	"os"

	"github.com/resxtools/resxkit/internal/mmfile"
	"github.com/resxtools/resxkit/pkg/types"
)

const defaultFileMode fs.FileMode = 0o644

// ioError wraps a filesystem failure in the typed error so callers can
// branch on kind; the cause stays reachable through errors.Is/As.
func ioError(op, path string, err error) error {
	return &types.Error{Kind: types.ErrKindIO, Msg: op + " " + path, Err: err}
}

// ParseFile parses a document straight off disk. The file is
// memory-mapped where the platform supports it, so parse-only access
// never copies the document into the heap.
func ParseFile(path string) (map[string]string, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, ioError("read", path, err)
	}
	defer cleanup()
	return Parse(data)
}

// EntriesFile returns the ordered entries of a document on disk.
func EntriesFile(path string) ([]types.Entry, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, ioError("read", path, err)
	}
	defer cleanup()
	return Entries(data)
}

// SniffFile reports the format fingerprint of a document on disk.
func SniffFile(path string) (types.Fingerprint, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return types.Fingerprint{}, ioError("read", path, err)
	}
	defer cleanup()
	return Sniff(data)
}

// UpdateFileValue is the read-modify-write form of UpdateValue.
func UpdateFileValue(path, key, value string) error {
	return rewriteFile(path, func(doc []byte) ([]byte, error) {
		return UpdateValue(doc, key, value)
	})
}

// UpdateFileValues is the read-modify-write form of UpdateValues.
func UpdateFileValues(path string, updates map[string]string) error {
	return rewriteFile(path, func(doc []byte) ([]byte, error) {
		return UpdateValues(doc, updates)
	})
}

// RenameFileKey is the read-modify-write form of RenameKey.
func RenameFileKey(path, oldKey, newKey string) error {
	return rewriteFile(path, func(doc []byte) ([]byte, error) {
		return RenameKey(doc, oldKey, newKey)
	})
}

// InsertFileEntry is the read-modify-write form of InsertEntry.
func InsertFileEntry(path, key, value string, index int) error {
	return rewriteFile(path, func(doc []byte) ([]byte, error) {
		return InsertEntry(doc, key, value, index)
	})
}

// AddFileEntry appends a new entry at the end of the table.
func AddFileEntry(path, key, value string) error {
	return InsertFileEntry(path, key, value, math.MaxInt)
}

// InsertFileEntries is the read-modify-write form of InsertEntries.
func InsertFileEntries(path string, items []types.InsertItem) error {
	return rewriteFile(path, func(doc []byte) ([]byte, error) {
		return InsertEntries(doc, items)
	})
}

// RemoveFileEntry is the read-modify-write form of RemoveEntry. The
// returned ordinal is -1 when the key was not present.
func RemoveFileEntry(path, key string) (int, error) {
	ordinal := -1
	err := rewriteFile(path, func(doc []byte) ([]byte, error) {
		out, ord, err := RemoveEntry(doc, key)
		ordinal = ord
		return out, err
	})
	return ordinal, err
}

// RemoveFileEntries is the read-modify-write form of RemoveEntries.
func RemoveFileEntries(path string, keys []string) (map[string]int, error) {
	var ordinals map[string]int
	err := rewriteFile(path, func(doc []byte) ([]byte, error) {
		out, ords, err := RemoveEntries(doc, keys)
		ordinals = ords
		return out, err
	})
	return ordinals, err
}

// rewriteFile is the one-shot read-modify-write transaction every
// file-level mutation runs: read fresh, transform, overwrite whole. If
// the transform fails nothing is written and the file stays untouched.
func rewriteFile(path string, transform func(doc []byte) ([]byte, error)) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		return ioError("read", path, err)
	}
	out, err := transform(doc)
	if err != nil {
		return err
	}
	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, out, mode); err != nil {
		return ioError("write", path, err)
	}
	return nil
}
