package resxtext

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/resxtools/resxkit/internal/format"
	"github.com/resxtools/resxkit/pkg/types"
)

// checkDuplicate is the fast add-new-key guard: a raw literal-text scan
// for the name attribute, not a structural parse. The semantics of this
// pre-check are part of the contract; do not upgrade it to a parse-based
// check.
func checkDuplicate(text []byte, key string) error {
	if bytes.Contains(text, []byte(NameAttr+`="`+key+`"`)) {
		return &types.Error{
			Kind: types.ErrKindDuplicate,
			Msg:  fmt.Sprintf("resxtext: key %q already exists", key),
		}
	}
	return nil
}

// entryBlock synthesizes a complete entry element, without leading or
// trailing line breaks. The value child is indented one level deeper
// than the entry itself.
func entryBlock(key, value, le, indent string) string {
	var b strings.Builder
	b.WriteString(`<` + DataElement + ` ` + NameAttr + `="`)
	b.WriteString(EscapeAttr(key))
	b.WriteString(`" ` + SpacePreserveAttr + `>`)
	b.WriteString(le)
	b.WriteString(indent + indent)
	b.WriteString(`<` + ValueElement + `>`)
	b.WriteString(EscapeText(value))
	b.WriteString(`</` + ValueElement + `>`)
	b.WriteString(le)
	b.WriteString(indent)
	b.WriteString(`</` + DataElement + `>`)
	return b.String()
}

// docShape is the structural summary a point insert needs: where each
// top-level entry starts and where the closing wrapper tag begins.
type docShape struct {
	entryOffs []int
	closeOff  int // -1 when the document has no end tag at all
}

func scanShape(text []byte) (docShape, error) {
	sc := NewScanner(text)
	shape := docShape{closeOff: -1}
	depth := 0
	for {
		tok, err := sc.Next()
		if err != nil {
			return shape, err
		}
		switch tok.Kind {
		case KindEOF:
			return shape, nil
		case KindStartTag, KindSelfClose:
			if tok.Name == DataElement {
				if depth == 0 {
					shape.entryOffs = append(shape.entryOffs, tok.Off)
				}
				if tok.Kind == KindStartTag {
					depth++
				}
			}
		case KindEndTag:
			if tok.Name == DataElement {
				if depth > 0 {
					depth--
				}
			} else if depth == 0 {
				shape.closeOff = tok.Off
			}
		}
	}
}

// precedingIndent returns the run of spaces/tabs between the last
// newline and off, or "" when off is not preceded by such a run.
func precedingIndent(text []byte, off int) string {
	j := off
	for j > 0 && (text[j-1] == ' ' || text[j-1] == '\t') {
		j--
	}
	if j == off || (j > 0 && text[j-1] != '\n') {
		return ""
	}
	return string(text[j:off])
}

// InsertEntry splices one synthesized entry immediately before the entry
// currently at the requested ordinal index. An index at or past the
// entry count appends before the closing wrapper tag. The new element is
// indented to match its neighbor, falling back to the globally inferred
// unit when no local indentation exists.
func InsertEntry(text []byte, key, value string, index int, le, indent string) ([]byte, error) {
	if err := checkDuplicate(text, key); err != nil {
		return nil, err
	}
	shape, err := scanShape(text)
	if err != nil {
		return nil, err
	}
	if index < 0 {
		index = 0
	}

	if index < len(shape.entryOffs) {
		off := shape.entryOffs[index]
		local := precedingIndent(text, off)
		if local == "" {
			local = indent
		}
		block := entryBlock(key, value, le, local) + le + local
		out := make([]byte, 0, len(text)+len(block))
		out = append(out, text[:off]...)
		out = append(out, block...)
		return append(out, text[off:]...), nil
	}

	// Append: splice before the whitespace that precedes the closing tag
	// so that whitespace keeps separating the last entry from the tag.
	if shape.closeOff < 0 {
		return nil, malformed(len(text), "missing closing wrapper tag")
	}
	ws := shape.closeOff
	for ws > 0 && isSpace(text[ws-1]) {
		ws--
	}
	block := le + indent + entryBlock(key, value, le, indent)
	out := make([]byte, 0, len(text)+len(block))
	out = append(out, text[:ws]...)
	out = append(out, block...)
	return append(out, text[ws:]...), nil
}

// InsertEntries applies every item in a single streaming pass. Items are
// processed in ascending target-index order, caller order for ties, so
// two items both aimed at one position land in the order supplied. Each
// synthesized element carries its own complete block including line
// breaks and indentation.
func InsertEntries(text []byte, items []types.InsertItem, le, indent string) ([]byte, error) {
	if len(items) == 0 {
		out := make([]byte, len(text))
		copy(out, text)
		return out, nil
	}
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if err := checkDuplicate(text, it.Key); err != nil {
			return nil, err
		}
		if _, dup := seen[it.Key]; dup {
			return nil, &types.Error{
				Kind: types.ErrKindDuplicate,
				Msg:  fmt.Sprintf("resxtext: key %q inserted twice", it.Key),
			}
		}
		seen[it.Key] = struct{}{}
	}

	sorted := make([]types.InsertItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	sc := NewScanner(text)
	var out bytes.Buffer
	out.Grow(len(text) + len(sorted)*64)

	rootName := ""
	emitted := 0
	next := 0
	depth := 0
	var pendingWS []byte

	flushWS := func() {
		if pendingWS != nil {
			out.Write(pendingWS)
			pendingWS = nil
		}
	}
	appendRemaining := func() {
		for ; next < len(sorted); next++ {
			out.WriteString(le + indent + entryBlock(sorted[next].Key, sorted[next].Value, le, indent))
		}
	}

	for {
		tok, err := sc.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case KindEOF:
			appendRemaining()
			flushWS()
			return out.Bytes(), nil

		case KindStartTag, KindSelfClose:
			if rootName == "" {
				rootName = tok.Name
			}
			if tok.Name == DataElement && depth == 0 {
				local := indent
				if s := format.IndentOf(pendingWS); s != "" {
					local = s
				}
				flushWS()
				for next < len(sorted) && sorted[next].Index <= emitted {
					out.WriteString(entryBlock(sorted[next].Key, sorted[next].Value, le, local))
					out.WriteString(le + local)
					next++
				}
				emitted++
			} else {
				flushWS()
			}
			out.Write(tok.Raw)
			if tok.Kind == KindStartTag && tok.Name == DataElement {
				depth++
			}

		case KindEndTag:
			if tok.Name == DataElement {
				if depth > 0 {
					depth--
				}
			} else if tok.Name == rootName && depth == 0 {
				appendRemaining()
			}
			flushWS()
			out.Write(tok.Raw)

		case KindText:
			if len(bytes.TrimSpace(tok.Raw)) == 0 {
				pendingWS = tok.Raw
			} else {
				flushWS()
				out.Write(tok.Raw)
			}

		default:
			flushWS()
			out.Write(tok.Raw)
		}
	}
}
