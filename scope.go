package jsxrewrite

import (
	"strconv"

	"github.com/jward/jsxrewrite/internal/estree"
)

// orderedSet keeps the first-insertion order of unique names.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

// add inserts name and reports whether it was new.
func (s *orderedSet) add(name string) bool {
	if s.has(name) {
		return false
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	s.seen[name] = struct{}{}
	s.items = append(s.items, name)
	return true
}

func (s *orderedSet) has(name string) bool {
	_, ok := s.seen[name]
	return ok
}

func (s *orderedSet) values() []string {
	return s.items
}

func (s *orderedSet) len() int {
	return len(s.items)
}

// frame is the state for one open function.
type frame struct {
	fn     estree.Function
	parent estree.Node // node the function was reached from

	objects    orderedSet
	components orderedSet
	tags       orderedSet

	// aliases maps tags that are not valid identifiers, such as custom
	// elements, to the local binding they are destructured into.
	aliases   map[string]string
	aliasList []string
}

func (f *frame) empty() bool {
	return f.objects.len() == 0 && f.components.len() == 0 && f.tags.len() == 0
}

// alias returns the local binding for tag, allocating _componentN on first
// use.
func (f *frame) alias(tag string) string {
	if a, ok := f.aliases[tag]; ok {
		return a
	}
	if f.aliases == nil {
		f.aliases = make(map[string]string)
	}
	a := "_component" + strconv.Itoa(len(f.aliasList))
	f.aliases[tag] = a
	f.aliasList = append(f.aliasList, tag)
	return a
}

// scopeStack tracks open functions. Every discovery is recorded on root, the
// outermost open frame, no matter how deeply the current function is nested:
// only top-level functions receive injected declarations.
type scopeStack struct {
	frames []*frame
	root   *frame
}

func (s *scopeStack) push(fn estree.Function, parent estree.Node) *frame {
	f := &frame{fn: fn, parent: parent}
	s.frames = append(s.frames, f)
	if len(s.frames) == 1 {
		s.root = f
	}
	return f
}

// pop removes the innermost frame. outermost is true when the stack became
// empty, meaning f is the frame that accumulated discoveries.
func (s *scopeStack) pop() (f *frame, outermost bool) {
	n := len(s.frames)
	if n == 0 {
		panic("jsxrewrite: scope stack underflow")
	}
	f = s.frames[n-1]
	s.frames = s.frames[:n-1]
	if n == 1 {
		s.root = nil
		return f, true
	}
	return f, false
}
