// Package format detects and reproduces the byte-level conventions of a
// resource document: encoding marker, line endings, and indentation.
// Every mutating pass derives these fresh from the document it is about
// to edit, so entries synthesized in one session stay visually consistent
// with pre-existing ones.
package format

import "bytes"

const (
	// LF is the Unix line-ending convention.
	LF = "\n"
	// CRLF is the Windows line-ending convention.
	CRLF = "\r\n"

	// DefaultIndent is used when no indentation can be inferred from the
	// document itself.
	DefaultIndent = "    "
)

// DetectLineEnding returns CRLF if that sequence occurs anywhere in the
// text, LF otherwise.
func DetectLineEnding(text []byte) string {
	if bytes.Contains(text, []byte(CRLF)) {
		return CRLF
	}
	return LF
}

// InferIndent determines the whitespace prefix used before entry
// elements. It looks for the first newline followed by a whitespace run
// and then a "<data" opening tag; failing that it tries "<resheader",
// the header element resx documents carry; failing both it falls back to
// DefaultIndent.
func InferIndent(text []byte) string {
	if unit, ok := indentBefore(text, []byte("<data")); ok {
		return unit
	}
	if unit, ok := indentBefore(text, []byte("<resheader")); ok {
		return unit
	}
	return DefaultIndent
}

// indentBefore finds the first occurrence of tag that is preceded by a
// non-empty run of spaces/tabs reaching back to a newline, and returns
// that run.
func indentBefore(text, tag []byte) (string, bool) {
	from := 0
	for {
		i := bytes.Index(text[from:], tag)
		if i < 0 {
			return "", false
		}
		i += from
		j := i
		for j > 0 && (text[j-1] == ' ' || text[j-1] == '\t') {
			j--
		}
		if j < i && j > 0 && text[j-1] == '\n' {
			return string(text[j:i]), true
		}
		from = i + len(tag)
	}
}

// IndentOf returns the trailing indentation of a whitespace run: the
// portion after its last newline. It is used to pick up the local indent
// of the entry an insertion lands next to.
func IndentOf(ws []byte) string {
	if i := bytes.LastIndexByte(ws, '\n'); i >= 0 {
		return string(ws[i+1:])
	}
	return string(ws)
}
