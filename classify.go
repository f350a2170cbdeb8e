package jsxrewrite

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jward/jsxrewrite/internal/estree"
)

// classify files the element's name into the root frame and reroutes plain
// tags through _components. Rules apply in order:
//
//  1. a.b.c: a is recorded as an object; the element is left alone.
//  2. ns:tag is ignored.
//  3. An identifier not starting with a-z is a component.
//  4. Explicit markup is left alone.
//  5. Anything else is a tag and is renamed.
func (p *pass) classify(el *estree.JSXElement) {
	name := el.OpeningElement.Name
	f := p.stack.root
	if f == nil {
		p.result.Unscoped = append(p.result.Unscoped, estree.JSXNameString(name))
		p.logger.Debug("element outside any function", zap.String("name", estree.JSXNameString(name)))
		return
	}

	switch n := name.(type) {
	case *estree.JSXMemberExpression:
		id := leftmost(n)
		if !f.objects.has(id) && !p.top.Has(id) {
			f.objects.add(id)
			p.logger.Debug("object", zap.String("name", id))
		}
	case *estree.JSXNamespacedName:
	case *estree.JSXIdentifier:
		switch {
		case isComponentName(n.Name):
			if !f.components.has(n.Name) && !p.top.Has(n.Name) {
				f.components.add(n.Name)
				if n.Name != layoutName {
					p.needsHelper = true
				}
				p.logger.Debug("component", zap.String("name", n.Name))
			}
		case el.Origin == estree.OriginExplicit:
		default:
			if f.tags.add(n.Name) {
				p.logger.Debug("tag", zap.String("name", n.Name))
			}
			routeTag(el, f, n.Name)
		}
	default:
		panic(fmt.Sprintf("jsxrewrite: unexpected element name %T", name))
	}
}

// routeTag renames the element to _components.tag, or to the tag's local
// alias when tag cannot appear after a dot.
func routeTag(el *estree.JSXElement, f *frame, tag string) {
	var target string
	if estree.IsIdentifierName(tag) {
		target = componentsID + "." + tag
	} else {
		target = f.alias(tag)
	}
	el.OpeningElement.Name = estree.JSXNameOf(target)
	if el.ClosingElement != nil {
		el.ClosingElement.Name = estree.JSXNameOf(target)
	}
}

func leftmost(n *estree.JSXMemberExpression) string {
	var cur estree.JSXName = n
	for {
		switch c := cur.(type) {
		case *estree.JSXMemberExpression:
			cur = c.Object
		case *estree.JSXIdentifier:
			return c.Name
		default:
			panic(fmt.Sprintf("jsxrewrite: unexpected member object %T", cur))
		}
	}
}

// isComponentName reports whether an element name refers to a component
// binding rather than a tag.
func isComponentName(name string) bool {
	return estree.IsIdentifierName(name) && !startsLowercase(name)
}

func startsLowercase(name string) bool {
	return name != "" && name[0] >= 'a' && name[0] <= 'z'
}
