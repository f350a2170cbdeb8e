package parse

import (
	"strconv"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/jward/jsxrewrite/internal/estree"
)

// jsx converts an element, self-closing element or fragment.
func (c *converter) jsx(n *sitter.Node) estree.Expression {
	switch n.Type() {
	case "jsx_self_closing_element":
		return &estree.JSXElement{
			OpeningElement: &estree.JSXOpeningElement{
				Name:        c.jsxName(n.ChildByFieldName("name")),
				Attributes:  c.jsxAttributes(n),
				SelfClosing: true,
			},
			Origin: c.origin,
			Pos:    position(n),
		}
	case "jsx_fragment":
		return &estree.JSXFragment{Children: c.jsxChildren(n)}
	}

	open := n.ChildByFieldName("open_tag")
	if open == nil || open.ChildByFieldName("name") == nil {
		return &estree.JSXFragment{Children: c.jsxChildren(n)}
	}
	el := &estree.JSXElement{
		OpeningElement: &estree.JSXOpeningElement{
			Name:       c.jsxName(open.ChildByFieldName("name")),
			Attributes: c.jsxAttributes(open),
		},
		Children: c.jsxChildren(n),
		Origin:   c.origin,
		Pos:      position(n),
	}
	if closeTag := n.ChildByFieldName("close_tag"); closeTag != nil {
		if name := closeTag.ChildByFieldName("name"); name != nil {
			el.ClosingElement = &estree.JSXClosingElement{Name: c.jsxName(name)}
		}
	}
	if el.ClosingElement == nil {
		el.ClosingElement = &estree.JSXClosingElement{Name: estree.JSXNameOf(estree.JSXNameString(el.OpeningElement.Name))}
	}
	return el
}

func position(n *sitter.Node) estree.Position {
	pt := n.StartPoint()
	return estree.Position{Line: int(pt.Row) + 1, Column: int(pt.Column)}
}

func (c *converter) jsxName(n *sitter.Node) estree.JSXName {
	switch n.Type() {
	case "jsx_namespace_name":
		ids := named(n)
		return &estree.JSXNamespacedName{
			Namespace: &estree.JSXIdentifier{Name: c.text(ids[0])},
			Name:      &estree.JSXIdentifier{Name: c.text(ids[1])},
		}
	case "member_expression", "nested_identifier":
		// a.b.c in either grammar revision; the text is enough.
		return estree.JSXNameOf(c.text(n))
	}
	return &estree.JSXIdentifier{Name: c.text(n)}
}

func (c *converter) jsxAttributes(n *sitter.Node) []estree.JSXAttr {
	var attrs []estree.JSXAttr
	for _, k := range named(n) {
		switch k.Type() {
		case "jsx_attribute":
			parts := named(k)
			attr := &estree.JSXAttribute{Name: c.jsxAttributeName(parts[0])}
			if len(parts) > 1 {
				attr.Value = c.jsxAttributeValue(parts[1])
			}
			attrs = append(attrs, attr)
		case "jsx_expression":
			inner := named(k)
			if len(inner) > 0 && inner[0].Type() == "spread_element" {
				attrs = append(attrs, &estree.JSXSpreadAttribute{Argument: c.expression(named(inner[0])[0])})
			}
		}
	}
	return attrs
}

func (c *converter) jsxAttributeName(n *sitter.Node) estree.JSXName {
	if n.Type() == "jsx_namespace_name" {
		return c.jsxName(n)
	}
	return &estree.JSXIdentifier{Name: c.text(n)}
}

func (c *converter) jsxAttributeValue(n *sitter.Node) estree.Node {
	switch n.Type() {
	case "string":
		raw := c.text(n)
		// JSX attribute strings have no escape sequences.
		return &estree.Literal{Value: raw[1 : len(raw)-1]}
	case "jsx_expression":
		return c.jsxExpression(n)
	case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
		return c.jsx(n)
	}
	return c.raw(n)
}

func (c *converter) jsxExpression(n *sitter.Node) *estree.JSXExpressionContainer {
	inner := named(n)
	if len(inner) == 0 {
		return &estree.JSXExpressionContainer{Expression: &estree.JSXEmptyExpression{}}
	}
	return &estree.JSXExpressionContainer{Expression: c.expression(inner[0])}
}

func (c *converter) jsxChildren(n *sitter.Node) []estree.JSXChild {
	var children []estree.JSXChild
	for _, k := range named(n) {
		switch k.Type() {
		case "jsx_opening_element", "jsx_closing_element", "identifier", "member_expression",
			"nested_identifier", "jsx_namespace_name", "jsx_attribute":
			// Tag parts of a fragment or element, not children.
		case "jsx_text", "html_character_reference":
			children = append(children, &estree.JSXText{Value: c.text(k)})
		case "jsx_expression":
			children = append(children, c.jsxExpression(k))
		case "jsx_element", "jsx_self_closing_element", "jsx_fragment":
			if child, ok := c.jsx(k).(estree.JSXChild); ok {
				children = append(children, child)
			}
		}
	}
	return children
}

// unquote decodes a JavaScript string literal including its quotes. Invalid
// escapes are kept verbatim.
func unquote(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	body := raw[1 : len(raw)-1]
	if !strings.Contains(body, `\`) {
		return body
	}
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch != '\\' || i+1 >= len(body) {
			sb.WriteByte(ch)
			continue
		}
		i++
		switch e := body[i]; e {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case '0':
			sb.WriteByte(0)
		case '\n':
			// Line continuation.
		case '\r':
			if i+1 < len(body) && body[i+1] == '\n' {
				i++
			}
		case 'x':
			if r, ok := hexRune(body, i+1, 2); ok {
				sb.WriteRune(r)
				i += 2
			} else {
				sb.WriteString(`\x`)
			}
		case 'u':
			if i+1 < len(body) && body[i+1] == '{' {
				end := strings.IndexByte(body[i:], '}')
				if end > 2 {
					if v, err := strconv.ParseUint(body[i+2:i+end], 16, 32); err == nil && utf8.ValidRune(rune(v)) {
						sb.WriteRune(rune(v))
						i += end
						continue
					}
				}
				sb.WriteString(`\u`)
				continue
			}
			if r, ok := hexRune(body, i+1, 4); ok {
				i += 4
				// Combine surrogate pairs.
				if r >= 0xd800 && r < 0xdc00 && i+6 < len(body) && body[i+1] == '\\' && body[i+2] == 'u' {
					if lo, ok := hexRune(body, i+3, 4); ok && lo >= 0xdc00 && lo < 0xe000 {
						sb.WriteRune((r-0xd800)<<10 + (lo - 0xdc00) + 0x10000)
						i += 6
						continue
					}
				}
				sb.WriteRune(r)
			} else {
				sb.WriteString(`\u`)
			}
		default:
			sb.WriteByte(e)
		}
	}
	return sb.String()
}

func hexRune(s string, start, n int) (rune, bool) {
	if start+n > len(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s[start:start+n], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
