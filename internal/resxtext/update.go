package resxtext

import "bytes"

// UpdateValues rewrites the text content of the value element of every
// entry whose key appears in updates; attributes, surrounding whitespace,
// and all other entries stay byte-identical. Keys absent from the
// document are silently ignored. An empty updates map reproduces the
// document unchanged.
func UpdateValues(text []byte, updates map[string]string) ([]byte, error) {
	sc := NewScanner(text)
	var out bytes.Buffer
	out.Grow(len(text))

	var replacement string
	armed := false   // inside a data element targeted by updates
	inValue := false // inside that element's value child

	for {
		tok, err := sc.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case KindEOF:
			return out.Bytes(), nil

		case KindStartTag:
			switch tok.Name {
			case DataElement:
				if a, ok := tok.Attr(NameAttr); ok {
					if v, hit := updates[UnescapeText(a.Value)]; hit {
						armed = true
						replacement = v
					}
				}
				out.Write(tok.Raw)
			case ValueElement:
				out.Write(tok.Raw)
				if armed {
					inValue = true
					out.WriteString(EscapeText(replacement))
				}
			default:
				out.Write(tok.Raw)
			}

		case KindSelfClose:
			if armed && tok.Name == ValueElement {
				// Expand so the new text has somewhere to live.
				out.WriteString("<" + ValueElement + ">")
				out.WriteString(EscapeText(replacement))
				out.WriteString("</" + ValueElement + ">")
			} else {
				out.Write(tok.Raw)
			}

		case KindText, KindCData:
			if !inValue {
				out.Write(tok.Raw)
			}
			// Original text inside a rewritten value is discarded; the
			// synthetic text was already emitted at the value start.

		case KindEndTag:
			switch tok.Name {
			case ValueElement:
				inValue = false
			case DataElement:
				armed = false
			}
			out.Write(tok.Raw)

		default:
			out.Write(tok.Raw)
		}
	}
}
