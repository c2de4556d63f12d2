package resxtext

import (
	"bytes"
	"fmt"

	"github.com/resxtools/resxkit/pkg/types"
)

// Kind identifies a structural token produced by the Scanner.
type Kind int

const (
	// KindText is character data between tags.
	KindText Kind = iota
	// KindStartTag is an element start such as <data name="K">.
	KindStartTag
	// KindSelfClose is a self-closing element such as <value/>.
	KindSelfClose
	// KindEndTag is an element end such as </data>.
	KindEndTag
	// KindComment is a <!-- --> comment, passed through verbatim.
	KindComment
	// KindCData is a <![CDATA[ ]]> section, passed through verbatim.
	KindCData
	// KindDirective is an XML declaration, processing instruction, or
	// DOCTYPE-style declaration, passed through verbatim.
	KindDirective
	// KindEOF marks the end of the token stream.
	KindEOF
)

// Attr is one attribute within a start tag. ValStart/ValEnd are byte
// offsets into the token's Raw slice, so editors can splice a new value
// between the original quote delimiters without disturbing any other
// byte of the tag.
type Attr struct {
	Name     string
	Value    string // raw (still escaped) value text
	ValStart int
	ValEnd   int
}

// Token is a contiguous span of the input. Concatenating the Raw field
// of every token scanned from a document reproduces the document
// byte-for-byte; the editing passes rely on this invariant.
type Token struct {
	Kind  Kind
	Off   int    // byte offset of the span within the input
	Raw   []byte // exact source bytes of the span
	Name  string // element name, tag kinds only
	Attrs []Attr // start and self-closing tags only
}

// Attr returns the raw value of the named attribute and whether it was
// present.
func (t Token) Attr(name string) (Attr, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}

// Scanner walks the constrained resx token stream. It understands
// exactly what the editing passes need: tags, text, comments, CDATA, and
// processing directives, each as a raw span.
type Scanner struct {
	src []byte
	pos int
}

// NewScanner returns a Scanner over decoded (UTF-8, marker-free) text.
func NewScanner(src []byte) *Scanner {
	return &Scanner{src: src}
}

func malformed(off int, what string) error {
	return &types.Error{
		Kind: types.ErrKindMalformed,
		Msg:  fmt.Sprintf("resxtext: %s at offset %d", what, off),
	}
}

// Next returns the next token. After the end of input it keeps returning
// a token with Kind KindEOF.
func (s *Scanner) Next() (Token, error) {
	if s.pos >= len(s.src) {
		return Token{Kind: KindEOF, Off: s.pos}, nil
	}
	start := s.pos
	if s.src[start] != '<' {
		end := bytes.IndexByte(s.src[start:], '<')
		if end < 0 {
			s.pos = len(s.src)
		} else {
			s.pos = start + end
		}
		return Token{Kind: KindText, Off: start, Raw: s.src[start:s.pos]}, nil
	}

	rest := s.src[start:]
	switch {
	case bytes.HasPrefix(rest, []byte("<!--")):
		return s.spanned(start, "-->", KindComment, "unterminated comment")
	case bytes.HasPrefix(rest, []byte("<![CDATA[")):
		return s.spanned(start, "]]>", KindCData, "unterminated CDATA section")
	case bytes.HasPrefix(rest, []byte("<?")):
		return s.spanned(start, "?>", KindDirective, "unterminated processing instruction")
	case bytes.HasPrefix(rest, []byte("<!")):
		return s.spanned(start, ">", KindDirective, "unterminated declaration")
	case bytes.HasPrefix(rest, []byte("</")):
		end := bytes.IndexByte(rest, '>')
		if end < 0 {
			return Token{}, malformed(start, "unterminated end tag")
		}
		s.pos = start + end + 1
		name := string(bytes.TrimSpace(rest[2:end]))
		if name == "" {
			return Token{}, malformed(start, "end tag without a name")
		}
		return Token{Kind: KindEndTag, Off: start, Raw: s.src[start:s.pos], Name: name}, nil
	default:
		return s.startTag(start)
	}
}

// spanned consumes a token that runs from start to the closing delimiter.
func (s *Scanner) spanned(start int, close string, kind Kind, errWhat string) (Token, error) {
	end := bytes.Index(s.src[start:], []byte(close))
	if end < 0 {
		return Token{}, malformed(start, errWhat)
	}
	s.pos = start + end + len(close)
	return Token{Kind: kind, Off: start, Raw: s.src[start:s.pos]}, nil
}

// startTag consumes an element start or self-closing tag, locating the
// terminating '>' while honoring quoted attribute values.
func (s *Scanner) startTag(start int) (Token, error) {
	i := start + 1
	var quote byte
	for i < len(s.src) {
		c := s.src[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			s.pos = i + 1
			return s.finishStartTag(start)
		case c == '<':
			return Token{}, malformed(i, "unexpected '<' inside tag")
		}
		i++
	}
	if quote != 0 {
		return Token{}, malformed(start, "unterminated attribute value")
	}
	return Token{}, malformed(start, "unterminated start tag")
}

// finishStartTag parses name and attributes out of the raw span
// s.src[start:s.pos].
func (s *Scanner) finishStartTag(start int) (Token, error) {
	raw := s.src[start:s.pos]
	tok := Token{Kind: KindStartTag, Off: start, Raw: raw}

	inner := raw[1 : len(raw)-1] // between '<' and '>'
	if n := len(inner); n > 0 && inner[n-1] == '/' {
		tok.Kind = KindSelfClose
		inner = inner[:n-1]
	}

	i := 0
	for i < len(inner) && !isSpace(inner[i]) && inner[i] != '/' {
		i++
	}
	tok.Name = string(inner[:i])
	if tok.Name == "" {
		return Token{}, malformed(start, "start tag without a name")
	}

	for i < len(inner) {
		for i < len(inner) && isSpace(inner[i]) {
			i++
		}
		if i >= len(inner) {
			break
		}
		nameStart := i
		for i < len(inner) && inner[i] != '=' && !isSpace(inner[i]) {
			i++
		}
		attr := Attr{Name: string(inner[nameStart:i])}
		for i < len(inner) && isSpace(inner[i]) {
			i++
		}
		if i < len(inner) && inner[i] == '=' {
			i++
			for i < len(inner) && isSpace(inner[i]) {
				i++
			}
			if i >= len(inner) || (inner[i] != '"' && inner[i] != '\'') {
				return Token{}, malformed(start, "attribute value without quotes")
			}
			q := inner[i]
			i++
			valStart := i
			for i < len(inner) && inner[i] != q {
				i++
			}
			if i >= len(inner) {
				return Token{}, malformed(start, "unterminated attribute value")
			}
			// Offsets are relative to raw; inner starts one byte in.
			attr.Value = string(inner[valStart:i])
			attr.ValStart = valStart + 1
			attr.ValEnd = i + 1
			i++
		}
		if attr.Name != "" {
			tok.Attrs = append(tok.Attrs, attr)
		}
	}
	return tok, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
