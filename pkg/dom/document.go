package dom

// Document owns an element tree rooted at an html element with head and body
// sections. Documents created with NewDocument support element upgrades; the
// zero value does not and cannot host components.
type Document struct {
	root *Element
	head *Element
	body *Element

	upgradable bool
	upgrader   func(*Element)
}

// NewDocument creates an empty document with html, head and body elements
// and upgrade support enabled.
func NewDocument() *Document {
	d := &Document{upgradable: true}
	d.root = newElement(d, "html")
	d.head = newElement(d, "head")
	d.body = newElement(d, "body")
	d.root.children = []*Element{d.head, d.body}
	d.head.parent = d.root
	d.body.parent = d.root
	return d
}

// Root returns the document's root html element.
func (d *Document) Root() *Element {
	return d.root
}

// Head returns the head element, the default attachment point for
// document-level style sheets.
func (d *Document) Head() *Element {
	return d.head
}

// Body returns the body element.
func (d *Document) Body() *Element {
	return d.body
}

// CreateElement creates a detached element owned by the document. When an
// upgrader is installed and the tag is claimed by it, the element is
// upgraded immediately, before it is connected.
func (d *Document) CreateElement(tag string) *Element {
	el := newElement(d, tag)
	if d.upgrader != nil {
		d.upgrader(el)
	}
	return el
}

// SupportsUpgrade reports whether the document can upgrade elements into
// components. It is false for the zero value.
func (d *Document) SupportsUpgrade() bool {
	return d != nil && d.upgradable
}

// SetUpgrader installs the callback invoked for each not-yet-upgraded
// element at creation and on connection. It is a no-op on documents without
// upgrade support.
func (d *Document) SetUpgrader(fn func(*Element)) {
	if !d.SupportsUpgrade() {
		return
	}
	d.upgrader = fn
}

// Walk visits every element in the document in tree order, including shadow
// subtrees.
func (d *Document) Walk(visit func(*Element)) {
	d.root.Walk(visit)
}

// AppendStyle attaches a style sheet element to the document head.
func (d *Document) AppendStyle(style *Element) {
	d.head.AppendChild(style)
}

// RemoveStyle detaches a style sheet element from the document head.
func (d *Document) RemoveStyle(style *Element) {
	d.head.RemoveChild(style)
}
