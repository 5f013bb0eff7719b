package dom

// Accessor is a reactive property: reads and writes routed through functions
// installed by a component. Accessors live alongside plain own values; a
// plain own value assigned before the accessor existed shadows it until the
// component's property reconciliation removes it.
type Accessor struct {
	Get func() any
	Set func(any)
}

// Prop reads the property. A plain own value wins over an accessor of the
// same name.
func (e *Element) Prop(name string) (any, bool) {
	if v, ok := e.props[name]; ok {
		return v, true
	}
	if acc, ok := e.accessors[name]; ok {
		if acc.Get == nil {
			return nil, true
		}
		return acc.Get(), true
	}
	return nil, false
}

// SetProp writes the property. An existing plain own value is updated in
// place; otherwise an accessor takes the write; otherwise a plain own value
// is created.
func (e *Element) SetProp(name string, value any) {
	if _, ok := e.props[name]; ok {
		e.props[name] = value
		return
	}
	if acc, ok := e.accessors[name]; ok {
		if acc.Set != nil {
			acc.Set(value)
		}
		return
	}
	if e.props == nil {
		e.props = make(map[string]any)
	}
	e.props[name] = value
}

// OwnProp returns the plain own value for name, ignoring accessors.
func (e *Element) OwnProp(name string) (any, bool) {
	v, ok := e.props[name]
	return v, ok
}

// RemoveOwnProp deletes the plain own value for name, unshadowing any
// accessor of the same name.
func (e *Element) RemoveOwnProp(name string) {
	delete(e.props, name)
}

// DefineAccessor installs a reactive accessor for name. A later definition
// replaces an earlier one.
func (e *Element) DefineAccessor(name string, acc Accessor) {
	if e.accessors == nil {
		e.accessors = make(map[string]Accessor)
	}
	e.accessors[name] = acc
}

// HasAccessor reports whether an accessor is installed for name.
func (e *Element) HasAccessor(name string) bool {
	_, ok := e.accessors[name]
	return ok
}
