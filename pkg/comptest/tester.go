// Package comptest provides an isolated harness for component tests. It
// owns a fresh document, registry and scheduler per test, drives the
// deferred-callback queue explicitly, and offers finders over the resulting
// tree.
package comptest

import (
	"testing"

	"github.com/go-umbra/umbra/pkg/component"
	"github.com/go-umbra/umbra/pkg/dom"
	"github.com/go-umbra/umbra/pkg/render"
	"github.com/go-umbra/umbra/pkg/scheduler"
)

// Tester drives one document and its component registry in a test.
type Tester struct {
	t     *testing.T
	doc   *dom.Document
	reg   *component.Registry
	sched *scheduler.Queue
}

// NewTester creates a harness with a fresh document, a registry using the
// reference renderer, and an explicit scheduler driven by Tick.
func NewTester(t *testing.T) *Tester {
	t.Helper()
	doc := dom.NewDocument()
	sched := scheduler.New()
	reg, err := component.NewRegistry(doc,
		component.WithRenderer(render.HTML()),
		component.WithScheduler(sched),
	)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return &Tester{t: t, doc: doc, reg: reg, sched: sched}
}

// Document returns the harness document.
func (h *Tester) Document() *dom.Document {
	return h.doc
}

// Registry returns the harness registry.
func (h *Tester) Registry() *component.Registry {
	return h.reg
}

// Define registers a component type, failing the test on error.
func (h *Tester) Define(tag string, def *component.Definition) {
	h.t.Helper()
	if err := h.reg.Define(tag, def); err != nil {
		h.t.Fatalf("Define(%q): %v", tag, err)
	}
}

// Tick flushes the deferred-callback queue, running pending property
// reconciliation. One Tick is one scheduling turn.
func (h *Tester) Tick() {
	h.sched.Flush()
}

// Mount creates an element with tag and connects it to the document body,
// returning the element.
func (h *Tester) Mount(tag string) *dom.Element {
	el := h.doc.CreateElement(tag)
	h.doc.Body().AppendChild(el)
	return el
}

// MountDetached parses fragment and returns its single element without
// connecting it, so property writes stay plain pre-upgrade values.
func (h *Tester) MountDetached(fragment string) *dom.Element {
	h.t.Helper()
	els, err := dom.ParseFragment(h.doc, fragment)
	if err != nil {
		h.t.Fatalf("ParseFragment: %v", err)
	}
	if len(els) != 1 {
		h.t.Fatalf("expected one element in fragment, got %d", len(els))
	}
	return els[0]
}

// Unmount disconnects el from the document body.
func (h *Tester) Unmount(el *dom.Element) {
	h.doc.Body().RemoveChild(el)
}

// Instance returns the component instance upgraded onto el, failing the
// test when there is none.
func (h *Tester) Instance(el *dom.Element) *component.Instance {
	h.t.Helper()
	inst := h.reg.Instance(el)
	if inst == nil {
		h.t.Fatalf("no instance for <%s>", el.Tag())
	}
	return inst
}

// HeadStyles returns the style elements currently attached to the document
// head, in order.
func (h *Tester) HeadStyles() []*dom.Element {
	var out []*dom.Element
	for _, c := range h.doc.Head().Children() {
		if c.Tag() == "style" {
			out = append(out, c)
		}
	}
	return out
}

// ShadowStyles returns the style elements inside el's shadow root, or nil
// when it has none.
func (h *Tester) ShadowStyles(el *dom.Element) []*dom.Element {
	shadow := el.Shadow()
	if shadow == nil {
		return nil
	}
	var out []*dom.Element
	for _, c := range shadow.Children() {
		if c.Tag() == "style" {
			out = append(out, c)
		}
	}
	return out
}
