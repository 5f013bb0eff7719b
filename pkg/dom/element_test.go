package dom

import "testing"

func TestAppendChildConnects(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("div")

	if el.Connected() {
		t.Error("expected detached element to be disconnected")
	}

	d.Body().AppendChild(el)
	if !el.Connected() {
		t.Error("expected appended element to be connected")
	}

	d.Body().RemoveChild(el)
	if el.Connected() {
		t.Error("expected removed element to be disconnected")
	}
}

func TestConnectionObserverFires(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("x-foo")

	var connects, disconnects int
	el.ObserveConnection(
		func() { connects++ },
		func() { disconnects++ },
	)

	d.Body().AppendChild(el)
	if connects != 1 || disconnects != 0 {
		t.Fatalf("after append: connects=%d disconnects=%d", connects, disconnects)
	}

	d.Body().RemoveChild(el)
	if connects != 1 || disconnects != 1 {
		t.Fatalf("after remove: connects=%d disconnects=%d", connects, disconnects)
	}

	d.Body().AppendChild(el)
	if connects != 2 {
		t.Errorf("expected reconnect to fire again, connects=%d", connects)
	}
}

func TestObserverFiresForNestedSubtree(t *testing.T) {
	d := NewDocument()
	parent := d.CreateElement("div")
	child := d.CreateElement("x-foo")
	parent.AppendChild(child)

	var connects int
	child.ObserveConnection(func() { connects++ }, nil)

	d.Body().AppendChild(parent)
	if connects != 1 {
		t.Errorf("expected nested element to receive connect signal, got %d", connects)
	}
}

func TestReparentFiresDisconnectThenConnect(t *testing.T) {
	d := NewDocument()
	a := d.CreateElement("div")
	b := d.CreateElement("div")
	d.Body().AppendChild(a)
	d.Body().AppendChild(b)

	el := d.CreateElement("x-foo")
	var events []string
	el.ObserveConnection(
		func() { events = append(events, "connect") },
		func() { events = append(events, "disconnect") },
	)

	a.AppendChild(el)
	b.AppendChild(el)

	want := []string{"connect", "disconnect", "connect"}
	if len(events) != len(want) {
		t.Fatalf("expected %v, got %v", want, events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, events)
		}
	}
	if el.Parent() != b {
		t.Error("expected element to end up under b")
	}
}

func TestShadowSubtreeConnectivity(t *testing.T) {
	d := NewDocument()
	host := d.CreateElement("x-foo")
	shadow := host.AttachShadow()
	inner := d.CreateElement("div")
	shadow.AppendChild(inner)

	if inner.Connected() {
		t.Error("shadow content of a detached host must be disconnected")
	}

	d.Body().AppendChild(host)
	if !inner.Connected() {
		t.Error("shadow content of a connected host must be connected")
	}
}

func TestAttachShadowReturnsSameRoot(t *testing.T) {
	d := NewDocument()
	host := d.CreateElement("x-foo")
	first := host.AttachShadow()
	second := host.AttachShadow()
	if first != second {
		t.Error("expected AttachShadow to reuse the existing shadow root")
	}
	if host.Shadow() != first {
		t.Error("expected Shadow() to return the attached root")
	}
}

func TestNearestRoot(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("x-foo")

	if el.NearestRoot() != nil {
		t.Error("expected nil root for a disconnected element")
	}

	d.Body().AppendChild(el)
	if el.NearestRoot() != Root(d) {
		t.Error("expected the document as nearest root")
	}

	host := d.CreateElement("x-outer")
	d.Body().AppendChild(host)
	shadow := host.AttachShadow()
	inner := d.CreateElement("x-inner")
	shadow.AppendChild(inner)

	if inner.NearestRoot() != Root(shadow) {
		t.Error("expected the enclosing shadow root as nearest root")
	}
}

func TestUpgraderRunsOncePerElement(t *testing.T) {
	d := NewDocument()
	var upgrades []string
	d.SetUpgrader(func(el *Element) {
		el.MarkUpgraded()
		upgrades = append(upgrades, el.Tag())
	})

	el := d.CreateElement("x-foo")
	if len(upgrades) != 1 {
		t.Fatalf("expected upgrade at creation, got %d", len(upgrades))
	}

	d.Body().AppendChild(el)
	d.Body().RemoveChild(el)
	d.Body().AppendChild(el)
	if len(upgrades) != 1 {
		t.Errorf("expected exactly one upgrade, got %d", len(upgrades))
	}
}

func TestZeroValueDocumentLacksUpgradeSupport(t *testing.T) {
	var d Document
	if d.SupportsUpgrade() {
		t.Error("zero-value document must not support upgrades")
	}
	var nilDoc *Document
	if nilDoc.SupportsUpgrade() {
		t.Error("nil document must not support upgrades")
	}
}

func TestAppendStyleGoesToHead(t *testing.T) {
	d := NewDocument()
	style := d.CreateElement("style")
	style.SetText("*{color:red}")

	d.AppendStyle(style)
	if len(d.Head().Children()) != 1 {
		t.Fatalf("expected 1 style in head, got %d", len(d.Head().Children()))
	}

	d.RemoveStyle(style)
	if len(d.Head().Children()) != 0 {
		t.Errorf("expected empty head, got %d", len(d.Head().Children()))
	}
}

func TestBooleanMarkerAttr(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("div")

	el.SetAttr("umbra-7", "")
	if !el.HasAttr("umbra-7") {
		t.Error("expected marker attribute to be present")
	}
	if v, _ := el.Attr("umbra-7"); v != "" {
		t.Errorf("expected empty marker value, got %q", v)
	}

	el.RemoveAttr("umbra-7")
	if el.HasAttr("umbra-7") {
		t.Error("expected marker attribute to be removed")
	}
}

func TestWalkVisitsShadowContent(t *testing.T) {
	d := NewDocument()
	host := d.CreateElement("x-foo")
	d.Body().AppendChild(host)
	inner := d.CreateElement("p")
	host.AttachShadow().AppendChild(inner)

	seen := map[string]int{}
	d.Walk(func(el *Element) { seen[el.Tag()]++ })

	for _, tag := range []string{"html", "head", "body", "x-foo", "p"} {
		if seen[tag] != 1 {
			t.Errorf("expected to visit %q once, got %d", tag, seen[tag])
		}
	}
}
