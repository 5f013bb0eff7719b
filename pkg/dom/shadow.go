package dom

// ShadowRoot is a private subtree attached to a host element. Content
// rendered into it does not participate in the surrounding document flow,
// and styles appended to it do not leak out: the shadow root is its own
// style-scoping Root.
type ShadowRoot struct {
	host     *Element
	children []*Element
}

// Host returns the element the shadow root is attached to.
func (s *ShadowRoot) Host() *Element {
	return s.host
}

// Children returns the shadow root's child elements in order.
func (s *ShadowRoot) Children() []*Element {
	return s.children
}

// AppendChild adds child as the last child of the shadow root, detaching it
// from any previous location first.
func (s *ShadowRoot) AppendChild(child *Element) {
	if child == nil || child == s.host {
		return
	}
	detach(child)
	child.inShadow = s
	s.children = append(s.children, child)
	if s.host.Connected() {
		connectSubtree(child)
	}
}

// RemoveChild removes child if it is a direct child of the shadow root.
func (s *ShadowRoot) RemoveChild(child *Element) {
	idx := -1
	for i, c := range s.children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	wasConnected := child.Connected()
	s.children = append(s.children[:idx], s.children[idx+1:]...)
	child.inShadow = nil
	if wasConnected {
		disconnectSubtree(child)
	}
}

// AppendStyle attaches a style sheet element to the shadow root.
func (s *ShadowRoot) AppendStyle(style *Element) {
	s.AppendChild(style)
}

// RemoveStyle detaches a style sheet element from the shadow root.
func (s *ShadowRoot) RemoveStyle(style *Element) {
	s.RemoveChild(style)
}
