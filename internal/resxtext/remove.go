package resxtext

import "bytes"

// RemoveEntries deletes the whole element block of every entry whose key
// is in keys, together with exactly the whitespace-only text that
// separated it from its neighbors, so repeated remove/insert cycles do
// not accumulate blank-line artifacts.
//
// The returned map records, per removed key, the ordinal rank the entry
// occupied among all entries in document order; inserting at that index
// later restores the original ordering. Keys not present in the document
// simply do not appear in the map.
//
// The pass buffers a whitespace-only text token instead of emitting it:
// it is flushed once a following kept token appears, and discarded when a
// removed element follows instead, collapsing the gap.
func RemoveEntries(text []byte, keys map[string]struct{}) ([]byte, map[string]int, error) {
	sc := NewScanner(text)
	var out bytes.Buffer
	out.Grow(len(text))

	ordinals := make(map[string]int)
	ordinal := 0
	depth := 0 // >0 while inside a removed data element
	var pendingWS []byte

	flush := func() {
		if pendingWS != nil {
			out.Write(pendingWS)
			pendingWS = nil
		}
	}

	for {
		tok, err := sc.Next()
		if err != nil {
			return nil, nil, err
		}
		if depth > 0 {
			// INSIDE_TARGET: suppress everything until the matching end.
			switch tok.Kind {
			case KindEOF:
				return nil, nil, malformed(tok.Off, "unterminated data element")
			case KindStartTag:
				if tok.Name == DataElement {
					depth++
				}
			case KindEndTag:
				if tok.Name == DataElement {
					depth--
				}
			}
			continue
		}

		switch tok.Kind {
		case KindEOF:
			flush()
			return out.Bytes(), ordinals, nil

		case KindStartTag, KindSelfClose:
			if tok.Name == DataElement {
				key := ""
				if a, ok := tok.Attr(NameAttr); ok {
					key = UnescapeText(a.Value)
				}
				if _, hit := keys[key]; hit && key != "" {
					ordinals[key] = ordinal
					ordinal++
					pendingWS = nil // drop the gap before the element
					if tok.Kind == KindStartTag {
						depth = 1
					}
					continue
				}
				ordinal++
			}
			flush()
			out.Write(tok.Raw)

		case KindText:
			if len(bytes.TrimSpace(tok.Raw)) == 0 {
				pendingWS = tok.Raw
			} else {
				flush()
				out.Write(tok.Raw)
			}

		default:
			flush()
			out.Write(tok.Raw)
		}
	}
}
