package resxtext

import (
	"strings"

	"github.com/resxtools/resxkit/pkg/types"
)

// Entries extracts every committed entry of the document in document
// order, duplicates included. An entry is committed when its data
// element ends and its name attribute is non-empty; malformed entries
// with an empty name are silently skipped. Self-closing data elements
// carry no value child and are skipped the same way.
func Entries(text []byte) ([]types.Entry, error) {
	sc := NewScanner(text)
	var out []types.Entry
	var key string
	var val strings.Builder
	inData, inValue := false, false

	for {
		tok, err := sc.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case KindEOF:
			return out, nil
		case KindStartTag:
			switch tok.Name {
			case DataElement:
				inData = true
				key = ""
				val.Reset()
				if a, ok := tok.Attr(NameAttr); ok {
					key = UnescapeText(a.Value)
				}
			case ValueElement:
				if inData {
					inValue = true
					val.Reset()
				}
			}
		case KindText:
			if inValue {
				val.WriteString(UnescapeText(string(tok.Raw)))
			}
		case KindEndTag:
			switch tok.Name {
			case ValueElement:
				inValue = false
			case DataElement:
				if inData && key != "" {
					out = append(out, types.Entry{Key: key, Value: val.String()})
				}
				inData = false
				key = ""
			}
		}
	}
}

// Parse extracts the key-to-value mapping of the document. For duplicate
// keys the last occurrence wins; duplicates are not themselves an error.
func Parse(text []byte) (map[string]string, error) {
	entries, err := Entries(text)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return m, nil
}
