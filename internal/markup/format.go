package markup

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

var voidTags = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

// Indent reformats serialized HTML with one tag or text run per line,
// indented two spaces per nesting level. Raw token bytes are preserved so
// the result carries the same markup as src.
func Indent(src []byte) ([]byte, error) {
	z := html.NewTokenizer(bytes.NewReader(src))
	var buf bytes.Buffer
	depth := 0

	writeLine := func(raw []byte) {
		buf.WriteString(strings.Repeat("  ", depth))
		buf.Write(raw)
		buf.WriteByte('\n')
	}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return buf.Bytes(), nil
			}
			return nil, z.Err()
		case html.StartTagToken:
			raw := bytes.Clone(z.Raw())
			name, _ := z.TagName()
			writeLine(raw)
			if _, void := voidTags[string(name)]; !void {
				depth++
			}
		case html.EndTagToken:
			depth = max(0, depth-1)
			writeLine(z.Raw())
		case html.TextToken:
			raw := bytes.TrimSpace(z.Raw())
			if len(raw) > 0 {
				writeLine(raw)
			}
		default:
			writeLine(z.Raw())
		}
	}
}

// IndentString renders n and indents the result.
func IndentString(n *Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return "", err
	}
	out, err := Indent(buf.Bytes())
	if err != nil {
		return "", err
	}
	return string(out), nil
}
