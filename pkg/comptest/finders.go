package comptest

import (
	"fmt"

	"github.com/go-umbra/umbra/pkg/dom"
)

// Finder locates elements in a document tree.
type Finder interface {
	// Matches reports whether el is a hit.
	Matches(el *dom.Element) bool
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []*dom.Element
	finder   Finder
}

// Find evaluates a finder over the whole document, including shadow
// subtrees, in tree order.
func (h *Tester) Find(f Finder) FinderResult {
	var matches []*dom.Element
	h.doc.Walk(func(el *dom.Element) {
		if f.Matches(el) {
			matches = append(matches, el)
		}
	})
	return FinderResult{elements: matches, finder: f}
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *dom.Element {
	if len(r.elements) == 0 {
		panic(fmt.Sprintf("finder found no elements: %s", r.finder.Description()))
	}
	return r.elements[0]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*dom.Element {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

type byTag struct{ tag string }

func (f byTag) Matches(el *dom.Element) bool { return el.Tag() == f.tag }
func (f byTag) Description() string          { return "ByTag(" + f.tag + ")" }

// ByTag matches elements with the given tag name.
func ByTag(tag string) Finder {
	return byTag{tag: tag}
}

type byAttr struct{ name, value string }

func (f byAttr) Matches(el *dom.Element) bool {
	v, ok := el.Attr(f.name)
	return ok && (f.value == "" || v == f.value)
}

func (f byAttr) Description() string {
	if f.value == "" {
		return "ByAttr(" + f.name + ")"
	}
	return fmt.Sprintf("ByAttr(%s=%s)", f.name, f.value)
}

// ByAttr matches elements carrying the attribute. An empty value matches
// any attribute value.
func ByAttr(name, value string) Finder {
	return byAttr{name: name, value: value}
}

type byText struct{ text string }

func (f byText) Matches(el *dom.Element) bool { return el.Text() == f.text }
func (f byText) Description() string          { return "ByText(" + f.text + ")" }

// ByText matches elements whose own text content equals text.
func ByText(text string) Finder {
	return byText{text: text}
}
