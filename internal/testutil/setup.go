// Package testutil holds helpers for tests that need resource documents
// on disk.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Doc builds a document from entry lines with the given line ending,
// wrapped in the standard root element. Each pair of args is a key and a
// value, emitted in the Visual Studio block layout with two-space
// entries.
func Doc(le string, pairs ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + le)
	b.WriteString("<root>" + le)
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(`  <data name="` + pairs[i] + `" xml:space="preserve">` + le)
		b.WriteString(`    <value>` + pairs[i+1] + `</value>` + le)
		b.WriteString("  </data>" + le)
	}
	b.WriteString("</root>" + le)
	return b.String()
}

// WriteDoc writes content to name inside a fresh temp dir and returns
// the full path.
func WriteDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// WriteDocAt writes content to name inside dir.
func WriteDocAt(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
