// Package render provides the reference renderer for component templates.
//
// Producers it understands:
//
//   - string: an HTML fragment, parsed and appended to the target
//   - *dom.Element / []*dom.Element: appended as is
//   - func(dom.Container) func(): an imperative builder; its return value
//     becomes part of the disposer
//
// Unknown producer types are reported through the errors package and render
// nothing.
package render

import (
	"fmt"

	"github.com/go-umbra/umbra/pkg/component"
	"github.com/go-umbra/umbra/pkg/dom"
	"github.com/go-umbra/umbra/pkg/errors"
)

// HTML returns a renderer materializing the supported producer types into
// the render target. Disposers remove exactly the nodes the pass appended
// and are idempotent.
func HTML() component.Renderer {
	return func(producer any, target dom.Container) component.Disposer {
		switch p := producer.(type) {
		case string:
			return renderFragment(p, target)
		case *dom.Element:
			return renderNodes(target, p)
		case []*dom.Element:
			return renderNodes(target, p...)
		case func(dom.Container) func():
			cleanup := p(target)
			done := false
			return func() {
				if done {
					return
				}
				done = true
				if cleanup != nil {
					cleanup()
				}
			}
		default:
			errors.Report(&errors.UmbraError{
				Op:   "render.HTML",
				Kind: errors.KindRender,
				Err:  fmt.Errorf("unsupported producer type %T", producer),
			})
			return nil
		}
	}
}

func renderFragment(fragment string, target dom.Container) component.Disposer {
	doc := documentOf(target)
	if doc == nil {
		return nil
	}
	els, err := dom.ParseFragment(doc, fragment)
	if err != nil {
		errors.Report(&errors.UmbraError{
			Op:   "render.HTML",
			Kind: errors.KindRender,
			Err:  err,
		})
		return nil
	}
	return renderNodes(target, els...)
}

func renderNodes(target dom.Container, els ...*dom.Element) component.Disposer {
	for _, el := range els {
		target.AppendChild(el)
	}
	done := false
	return func() {
		if done {
			return
		}
		done = true
		for _, el := range els {
			target.RemoveChild(el)
		}
	}
}

func documentOf(target dom.Container) *dom.Document {
	switch t := target.(type) {
	case *dom.Element:
		return t.Document()
	case *dom.ShadowRoot:
		return t.Host().Document()
	default:
		return nil
	}
}
