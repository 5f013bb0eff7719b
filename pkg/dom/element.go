package dom

// Container is a node that holds child elements. Render targets are
// containers: either an element (light DOM) or a shadow root.
type Container interface {
	AppendChild(child *Element)
	RemoveChild(child *Element)
	Children() []*Element
}

// Root is a style-scoping boundary: the document itself or a shadow root.
// Style sheets injected for shared-mode components are attached to the
// nearest root and reference-counted per root identity.
type Root interface {
	AppendStyle(style *Element)
	RemoveStyle(style *Element)
}

// Element is a node in the document tree.
type Element struct {
	doc      *Document
	tag      string
	parent   *Element
	inShadow *ShadowRoot // set when the element is a direct child of a shadow root
	children []*Element
	attrs    map[string]string
	text     string
	shadow   *ShadowRoot

	props     map[string]any
	accessors map[string]Accessor

	upgraded     bool
	onConnect    func()
	onDisconnect func()
}

func newElement(doc *Document, tag string) *Element {
	return &Element{doc: doc, tag: tag}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Document returns the document the element belongs to.
func (e *Element) Document() *Document {
	return e.doc
}

// Parent returns the parent element, or nil for detached elements, the
// document root, and direct children of a shadow root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the child elements in order.
func (e *Element) Children() []*Element {
	return e.children
}

// Text returns the element's own text content.
func (e *Element) Text() string {
	return e.text
}

// SetText replaces the element's own text content.
func (e *Element) SetText(text string) {
	e.text = text
}

// SetAttr sets an attribute. An empty value is a boolean marker attribute.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// Attr returns the attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// HasAttr reports whether the attribute is present, regardless of value.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// RemoveAttr removes the attribute if present.
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, name)
}

// AppendChild adds child as the last child, detaching it from any previous
// parent or shadow root first. Connection signals fire for the moved subtree.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child == e {
		return
	}
	detach(child)
	child.parent = e
	e.children = append(e.children, child)
	if e.Connected() {
		connectSubtree(child)
	}
}

// RemoveChild removes child if it is a child of e, firing disconnect signals
// for the subtree when it was connected.
func (e *Element) RemoveChild(child *Element) {
	idx := -1
	for i, c := range e.children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	wasConnected := child.Connected()
	e.children = append(e.children[:idx], e.children[idx+1:]...)
	child.parent = nil
	if wasConnected {
		disconnectSubtree(child)
	}
}

// AttachShadow returns the element's shadow root, creating it on first use.
func (e *Element) AttachShadow() *ShadowRoot {
	if e.shadow == nil {
		e.shadow = &ShadowRoot{host: e}
	}
	return e.shadow
}

// Shadow returns the element's shadow root, or nil if none was attached.
func (e *Element) Shadow() *ShadowRoot {
	return e.shadow
}

// Connected reports whether the element is reachable from its document,
// crossing shadow boundaries through the shadow host.
func (e *Element) Connected() bool {
	top := e
	for {
		if top.parent != nil {
			top = top.parent
			continue
		}
		if top.inShadow != nil {
			top = top.inShadow.host
			continue
		}
		break
	}
	return top.doc != nil && top == top.doc.root
}

// NearestRoot returns the nearest enclosing style-scoping root: the closest
// shadow root on the ancestor chain, or the document. It returns nil for
// elements that are not connected.
func (e *Element) NearestRoot() Root {
	if !e.Connected() {
		return nil
	}
	node := e
	for {
		if node.inShadow != nil {
			return node.inShadow
		}
		if node.parent == nil {
			return node.doc
		}
		node = node.parent
	}
}

// ObserveConnection registers the callbacks fired when the element enters or
// leaves the connected tree. A second call replaces the previous observer.
func (e *Element) ObserveConnection(connected, disconnected func()) {
	e.onConnect = connected
	e.onDisconnect = disconnected
}

// Upgraded reports whether the element has been claimed by a component
// upgrade.
func (e *Element) Upgraded() bool {
	return e.upgraded
}

// MarkUpgraded records that the element has been upgraded. Upgrades happen
// at most once per element.
func (e *Element) MarkUpgraded() {
	e.upgraded = true
}

// Walk visits e and every descendant in tree order, including shadow
// subtrees.
func (e *Element) Walk(visit func(*Element)) {
	visit(e)
	if e.shadow != nil {
		for _, c := range e.shadow.children {
			c.Walk(visit)
		}
	}
	for _, c := range e.children {
		c.Walk(visit)
	}
}

// detach unlinks el from its parent or shadow root, firing disconnect
// signals when the element was connected.
func detach(el *Element) {
	if el.parent != nil {
		el.parent.RemoveChild(el)
		return
	}
	if el.inShadow != nil {
		el.inShadow.RemoveChild(el)
	}
}

// connectSubtree fires upgrade and connect callbacks top-down over a subtree
// that just became connected, including shadow subtrees.
func connectSubtree(el *Element) {
	if doc := el.doc; doc != nil && doc.upgrader != nil && !el.upgraded {
		doc.upgrader(el)
	}
	if el.onConnect != nil {
		el.onConnect()
	}
	if el.shadow != nil {
		for _, c := range el.shadow.children {
			connectSubtree(c)
		}
	}
	for _, c := range el.children {
		connectSubtree(c)
	}
}

// disconnectSubtree fires disconnect callbacks top-down over a subtree that
// just left the connected tree.
func disconnectSubtree(el *Element) {
	if el.onDisconnect != nil {
		el.onDisconnect()
	}
	if el.shadow != nil {
		for _, c := range el.shadow.children {
			disconnectSubtree(c)
		}
	}
	for _, c := range el.children {
		disconnectSubtree(c)
	}
}
