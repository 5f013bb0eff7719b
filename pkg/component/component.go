// Package component implements the component base layer: a registry that
// upgrades plain elements into live component instances, property
// reconciliation for values assigned before upgrade, and the activation
// lifecycle that wires rendering and scoped styles together.
package component

import "github.com/go-umbra/umbra/pkg/dom"

// Disposer undoes one rendering pass. Disposers must be idempotent; the
// lifecycle invokes each at most once per deactivation.
type Disposer func()

// Renderer materializes a content producer into a render target and returns
// the disposer that removes what it produced. The producer is opaque to the
// lifecycle; its interpretation belongs to the renderer.
type Renderer func(producer any, target dom.Container) Disposer

// AttrSpec maps one attribute to the property it backs.
type AttrSpec struct {
	// Prop is the property name the attribute maps to.
	Prop string
	// Coerce converts the attribute string into the property value. Nil
	// keeps the string as is.
	Coerce func(string) any
}

// AttributeMap maps attribute names to their property specs.
type AttributeMap map[string]AttrSpec

// Definition describes a component type.
type Definition struct {
	// Init runs once per instance, during upgrade, after property
	// reconciliation has been scheduled. It is the place to install
	// reactive accessors on the host.
	Init func(*Instance)

	// Template is the content producer handed to the renderer on every
	// activation. A func(*Instance) any value is resolved per instance
	// before rendering. Nil skips rendering.
	Template any

	// Styles is the type-level CSS, shared across instances. Use
	// StylesFunc instead when the CSS is computed; the result is still
	// cached once per tag.
	Styles     string
	StylesFunc func() string

	// InstanceStyles produces per-instance CSS, re-evaluated on every
	// activation.
	InstanceStyles func(*Instance) string

	// Attributes supplies the attribute-to-property mapping consumed by
	// property reconciliation. Nil means no reconciliation.
	Attributes func() AttributeMap

	// LightDOM renders into the host element itself instead of a shadow
	// root, selecting shared style scoping.
	LightDOM bool

	// Adopted is invoked when the host signals adoption into another
	// document. Nil is a no-op.
	Adopted func(*Instance)
}

// typeCSSSource returns the type-level CSS as a lazily invoked source, or
// nil when the definition has none.
func (d *Definition) typeCSSSource() func() string {
	if d.StylesFunc != nil {
		return d.StylesFunc
	}
	if d.Styles != "" {
		css := d.Styles
		return func() string { return css }
	}
	return nil
}
