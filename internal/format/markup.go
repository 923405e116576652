package format

import (
	"encoding/xml"
	"io"
	"strings"
)

type markupKind int

const (
	elementNode markupKind = iota
	textNode
	leafNode
)

type markupNode struct {
	kind markupKind
	name xml.Name
	// open is the raw start tag of an element or the raw token of any other node.
	open  string
	close string
	// start and end delimit the whole node in the source.
	start, end int
	children   []*markupNode
}

// hasText reports whether the element directly holds characters other than whitespace.
func (nd *markupNode) hasText() bool {
	for _, c := range nd.children {
		if c.kind == textNode && strings.TrimSpace(c.open) != "" {
			return true
		}
	}
	return false
}

// PrettyPrintMarkup re-indents a markup document by two spaces per level. Tags, attributes and
// the content of elements holding text are copied from the source unchanged. Text that cannot be
// parsed is returned as is.
func PrettyPrintMarkup(text string) string {
	roots, ok := parseMarkup(text)
	if !ok || !hasElement(roots) {
		return text
	}

	var b strings.Builder
	for _, nd := range roots {
		writeMarkup(&b, text, nd, 0)
	}
	return b.String()
}

func hasElement(nodes []*markupNode) bool {
	for _, nd := range nodes {
		if nd.kind == elementNode {
			return true
		}
	}
	return false
}

func parseMarkup(text string) ([]*markupNode, bool) {
	dec := xml.NewDecoder(strings.NewReader(text))
	var (
		roots []*markupNode
		stack []*markupNode
	)
	add := func(nd *markupNode) {
		if len(stack) == 0 {
			roots = append(roots, nd)
			return
		}
		parent := stack[len(stack)-1]
		parent.children = append(parent.children, nd)
	}

	for {
		begin := int(dec.InputOffset())
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, false
		}
		end := int(dec.InputOffset())
		raw := text[begin:end]

		switch t := tok.(type) {
		case xml.StartElement:
			nd := &markupNode{kind: elementNode, name: t.Name, open: raw, start: begin}
			add(nd)
			stack = append(stack, nd)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, false
			}
			nd := stack[len(stack)-1]
			if nd.name != t.Name {
				return nil, false
			}
			nd.close, nd.end = raw, end
			stack = stack[:len(stack)-1]
		case xml.CharData:
			add(&markupNode{kind: textNode, open: raw, start: begin, end: end})
		default:
			add(&markupNode{kind: leafNode, open: raw, start: begin, end: end})
		}
	}
	if len(stack) > 0 {
		return nil, false
	}
	return roots, true
}

func writeMarkup(b *strings.Builder, src string, nd *markupNode, depth int) {
	indent := strings.Repeat("  ", depth)
	switch nd.kind {
	case textNode:
		if s := strings.TrimSpace(nd.open); s != "" {
			b.WriteString(indent + s + "\n")
		}
		return
	case leafNode:
		b.WriteString(indent + nd.open + "\n")
		return
	}

	if nd.hasText() {
		b.WriteString(indent + src[nd.start:nd.end] + "\n")
		return
	}

	var children []*markupNode
	for _, c := range nd.children {
		if c.kind != textNode {
			children = append(children, c)
		}
	}
	if len(children) == 0 {
		b.WriteString(indent + nd.open + nd.close + "\n")
		return
	}

	b.WriteString(indent + nd.open + "\n")
	for _, c := range children {
		writeMarkup(b, src, c, depth+1)
	}
	b.WriteString(indent + nd.close + "\n")
}
