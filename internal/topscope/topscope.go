// Package topscope computes the names bound at a program's outermost lexical
// level.
package topscope

import (
	"sort"

	"github.com/jward/jsxrewrite/internal/estree"
)

// Set is a set of binding names.
type Set map[string]struct{}

// Has reports whether name is in the set. A nil Set is empty.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts names into the set.
func (s Set) Add(names ...string) {
	for _, n := range names {
		s[n] = struct{}{}
	}
}

// Names returns the members in sorted order.
func (s Set) Names() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Compute returns every name bound at the top level of prog: function and
// class declarations, variables (including destructured ones), import
// locals, and var declarations hoisted out of top-level blocks, loops, try
// and switch statements.
func Compute(prog *estree.Program) Set {
	s := Set{}
	for _, stmt := range prog.Body {
		collectStatement(s, stmt, true)
	}
	return s
}

// collectStatement records bindings introduced by stmt. Only var
// declarations escape nested blocks; lexical ones are added when top is set.
func collectStatement(s Set, stmt estree.Statement, top bool) {
	switch n := stmt.(type) {
	case *estree.VariableDeclaration:
		if top || n.Keyword == "var" {
			for _, d := range n.Declarations {
				collectPattern(s, d.ID)
			}
		}
	case *estree.FunctionDeclaration:
		if top && n.ID != nil {
			s.Add(n.ID.Name)
		}
	case *estree.ClassDeclaration:
		if top && n.ID != nil {
			s.Add(n.ID.Name)
		}
	case *estree.ImportDeclaration:
		for _, spec := range n.Specifiers {
			switch sp := spec.(type) {
			case *estree.ImportSpecifier:
				local := sp.Local
				if local == nil {
					local = sp.Imported
				}
				if local != nil {
					s.Add(local.Name)
				}
			case *estree.ImportDefaultSpecifier:
				s.Add(sp.Local.Name)
			case *estree.ImportNamespaceSpecifier:
				s.Add(sp.Local.Name)
			}
		}
	case *estree.ExportNamedDeclaration:
		if n.Declaration != nil {
			collectStatement(s, n.Declaration, top)
		}
	case *estree.ExportDefaultDeclaration:
		switch d := n.Declaration.(type) {
		case *estree.FunctionDeclaration:
			collectStatement(s, d, top)
		case *estree.ClassDeclaration:
			collectStatement(s, d, top)
		}
	case *estree.BlockStatement:
		for _, inner := range n.Body {
			collectStatement(s, inner, false)
		}
	case *estree.IfStatement:
		collectStatement(s, n.Consequent, false)
		if n.Alternate != nil {
			collectStatement(s, n.Alternate, false)
		}
	case *estree.ForStatement:
		if d, ok := n.Init.(*estree.VariableDeclaration); ok {
			collectStatement(s, d, false)
		}
		collectStatement(s, n.Body, false)
	case *estree.ForInStatement:
		collectLoopHead(s, n.Left)
		collectStatement(s, n.Body, false)
	case *estree.ForOfStatement:
		collectLoopHead(s, n.Left)
		collectStatement(s, n.Body, false)
	case *estree.WhileStatement:
		collectStatement(s, n.Body, false)
	case *estree.DoWhileStatement:
		collectStatement(s, n.Body, false)
	case *estree.LabeledStatement:
		collectStatement(s, n.Body, false)
	case *estree.TryStatement:
		collectBlock(s, n.Block)
		if n.Handler != nil {
			collectBlock(s, n.Handler.Body)
		}
		collectBlock(s, n.Finalizer)
	case *estree.SwitchStatement:
		for _, c := range n.Cases {
			for _, inner := range c.Consequent {
				collectStatement(s, inner, false)
			}
		}
	}
}

func collectLoopHead(s Set, left estree.Node) {
	if d, ok := left.(*estree.VariableDeclaration); ok {
		collectStatement(s, d, false)
	}
}

func collectBlock(s Set, b *estree.BlockStatement) {
	if b != nil {
		collectStatement(s, b, false)
	}
}

func collectPattern(s Set, p estree.Pattern) {
	switch n := p.(type) {
	case *estree.Identifier:
		s.Add(n.Name)
	case *estree.ObjectPattern:
		for _, m := range n.Properties {
			switch prop := m.(type) {
			case *estree.Property:
				if v, ok := prop.Value.(estree.Pattern); ok {
					collectPattern(s, v)
				}
			case *estree.RestElement:
				collectPattern(s, prop.Argument)
			}
		}
	case *estree.ArrayPattern:
		for _, el := range n.Elements {
			if el != nil {
				collectPattern(s, el)
			}
		}
	case *estree.AssignmentPattern:
		collectPattern(s, n.Left)
	case *estree.RestElement:
		collectPattern(s, n.Argument)
	}
}
