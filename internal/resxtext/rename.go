package resxtext

import "bytes"

// RenameKey changes the name attribute of every entry element keyed
// oldKey to newKey. The new key is spliced between the original quote
// delimiters inside the raw start-tag bytes, so attribute order, the
// values of every other attribute, and all intra-tag whitespace stay
// byte-identical. A missing oldKey is a silent no-op, and no uniqueness
// check is made against an existing newKey.
func RenameKey(text []byte, oldKey, newKey string) ([]byte, error) {
	sc := NewScanner(text)
	var out bytes.Buffer
	out.Grow(len(text) + len(newKey))

	for {
		tok, err := sc.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case KindEOF:
			return out.Bytes(), nil
		case KindStartTag, KindSelfClose:
			if tok.Name == DataElement {
				if a, ok := tok.Attr(NameAttr); ok && a.ValEnd > a.ValStart && UnescapeText(a.Value) == oldKey {
					out.Write(tok.Raw[:a.ValStart])
					out.WriteString(EscapeAttr(newKey))
					out.Write(tok.Raw[a.ValEnd:])
					continue
				}
			}
			out.Write(tok.Raw)
		default:
			out.Write(tok.Raw)
		}
	}
}
