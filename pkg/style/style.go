// Package style computes and injects scoped style sheets for components.
//
// A component type can carry type-level CSS (computed once per tag and
// cached) and instance-level CSS (recomputed on every activation). In
// isolated mode both land in a single sheet inside the component's shadow
// root. In shared mode the type-level sheet is injected once per
// (root, tag) pair and reference-counted across instances, while each
// instance gets a dedicated sheet scoped to a unique marker attribute on
// its host element.
//
// CSS may address the component with the HostSelector placeholder. Isolated
// sheets keep it verbatim; shared sheets rewrite it to the tag selector
// (type CSS) or the instance marker selector (instance CSS).
//
// The manager is not goroutine-safe; all calls must come from the goroutine
// driving the document.
package style

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/go-umbra/umbra/pkg/dom"
)

// HostSelector is the placeholder selector for the component's host element.
const HostSelector = ":host"

// defaultDisplay is the leading rule of every isolated sheet, giving
// components block layout unless their CSS overrides it.
const defaultDisplay = ":host{display:block}"

// StyleAttr marks injected sheets with the component tag they belong to.
const StyleAttr = "umbra-style"

// Mode selects how an activation scopes its styles.
type Mode int

const (
	// ModeIsolated renders into a shadow root with built-in encapsulation.
	ModeIsolated Mode = iota
	// ModeShared renders into the surrounding document and scopes styles
	// manually.
	ModeShared
)

func (m Mode) String() string {
	if m == ModeShared {
		return "shared"
	}
	return "isolated"
}

// Activation describes one component activation to the manager.
type Activation struct {
	// Tag is the component's tag name.
	Tag string
	// ID is the process-unique instance id, used to derive the marker
	// attribute for instance-level CSS in shared mode.
	ID uint64
	// Host is the component's host element.
	Host *dom.Element
	// Target is the resolved render target. A *dom.ShadowRoot target selects
	// isolated mode; anything else selects shared mode.
	Target dom.Container
	// Root is the ancestor root styles attach to in shared mode. It must be
	// resolved while the host is connected.
	Root dom.Root
	// TypeCSS produces the type-level CSS. It is invoked at most once per
	// tag; the result is cached for the manager's lifetime. Nil means the
	// type has no CSS.
	TypeCSS func() string
	// InstanceCSS produces the instance-level CSS, re-evaluated on every
	// activation. Nil means the instance has no CSS.
	InstanceCSS func() string
}

// Scope is the style state of one activation. Release undoes exactly what
// the activation injected; it is idempotent.
type Scope interface {
	Mode() Mode
	Release()
}

type refEntry struct {
	count int
	node  *dom.Element
}

// Manager owns the shared-sheet reference counts and the per-tag CSS cache.
// One manager serves one component registry.
type Manager struct {
	refs    map[dom.Root]map[string]*refEntry
	typeCSS map[string]string
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		refs:    make(map[dom.Root]map[string]*refEntry),
		typeCSS: make(map[string]string),
	}
}

// Activate injects the styles for one activation and returns the scope that
// releases them. The mode is derived from the target.
func (m *Manager) Activate(a Activation) Scope {
	if shadow, ok := a.Target.(*dom.ShadowRoot); ok {
		return m.activateIsolated(a, shadow)
	}
	return m.activateShared(a)
}

// SharedCount returns the number of active shared-mode instances currently
// holding the (root, tag) type sheet.
func (m *Manager) SharedCount(root dom.Root, tag string) int {
	if entry, ok := m.refs[root][tag]; ok {
		return entry.count
	}
	return 0
}

// SharedNode returns the shared type sheet for (root, tag), or nil.
func (m *Manager) SharedNode(root dom.Root, tag string) *dom.Element {
	if entry, ok := m.refs[root][tag]; ok {
		return entry.node
	}
	return nil
}

// typeStyles returns the memoized type-level CSS for tag, invoking src at
// most once.
func (m *Manager) typeStyles(tag string, src func() string) string {
	if css, ok := m.typeCSS[tag]; ok {
		return css
	}
	var css string
	if src != nil {
		css = src()
	}
	m.typeCSS[tag] = css
	return css
}

func (m *Manager) activateIsolated(a Activation, shadow *dom.ShadowRoot) Scope {
	parts := []string{defaultDisplay}
	if css := m.typeStyles(a.Tag, a.TypeCSS); css != "" {
		parts = append(parts, css)
	}
	if a.InstanceCSS != nil {
		if css := a.InstanceCSS(); css != "" {
			parts = append(parts, css)
		}
	}

	node := a.Host.Document().CreateElement("style")
	node.SetAttr(StyleAttr, a.Tag)
	node.SetText(strings.Join(parts, "\n"))
	shadow.AppendStyle(node)

	Logger().Debug("isolated styles injected",
		zap.String("tag", a.Tag),
		zap.Uint64("id", a.ID))

	return &isolatedScope{shadow: shadow, node: node}
}

func (m *Manager) activateShared(a Activation) Scope {
	s := &sharedScope{manager: m, root: a.Root, tag: a.Tag, host: a.Host}

	if css := m.typeStyles(a.Tag, a.TypeCSS); css != "" {
		entry := m.refs[a.Root][a.Tag]
		if entry == nil {
			node := a.Host.Document().CreateElement("style")
			node.SetAttr(StyleAttr, a.Tag)
			node.SetText(rewriteHost(css, a.Tag))
			a.Root.AppendStyle(node)

			if m.refs[a.Root] == nil {
				m.refs[a.Root] = make(map[string]*refEntry)
			}
			m.refs[a.Root][a.Tag] = &refEntry{count: 1, node: node}
		} else {
			entry.count++
		}
		s.counted = true
	}

	if a.InstanceCSS != nil {
		if css := a.InstanceCSS(); css != "" {
			marker := fmt.Sprintf("umbra-%d", a.ID)
			a.Host.SetAttr(marker, "")

			node := a.Host.Document().CreateElement("style")
			node.SetAttr(StyleAttr, marker)
			node.SetText(rewriteHost(css, "["+marker+"]"))
			a.Root.AppendStyle(node)

			s.marker = marker
			s.instanceNode = node
		}
	}

	Logger().Debug("shared styles injected",
		zap.String("tag", a.Tag),
		zap.Uint64("id", a.ID),
		zap.Int("refcount", m.SharedCount(a.Root, a.Tag)))

	return s
}

// rewriteHost substitutes the host placeholder with a concrete selector.
func rewriteHost(css, selector string) string {
	return strings.ReplaceAll(css, HostSelector, selector)
}
