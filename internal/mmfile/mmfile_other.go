//go:build !unix

// Package mmfile provides a platform-specific read path for resource
// documents: memory-mapped where supported, a plain read elsewhere.
// Parse-only callers go through Map so large tables are never copied
// onto the heap just to be scanned once.
package mmfile

import "os"

// Map reads the entire document when mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
