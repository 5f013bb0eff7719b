package dom

import "testing"

func TestPlainPropRoundTrip(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("div")

	if _, ok := el.Prop("value"); ok {
		t.Error("expected missing property")
	}

	el.SetProp("value", 5)
	v, ok := el.Prop("value")
	if !ok || v != 5 {
		t.Errorf("expected 5, got %v (ok=%v)", v, ok)
	}
	if own, ok := el.OwnProp("value"); !ok || own != 5 {
		t.Error("expected a plain own value")
	}
}

func TestAccessorRoutesReadsAndWrites(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("div")

	var backing any
	sets := 0
	el.DefineAccessor("value", Accessor{
		Get: func() any { return backing },
		Set: func(v any) { backing = v; sets++ },
	})

	el.SetProp("value", 42)
	if sets != 1 {
		t.Errorf("expected 1 setter call, got %d", sets)
	}
	if v, ok := el.Prop("value"); !ok || v != 42 {
		t.Errorf("expected 42 via accessor, got %v", v)
	}
	if _, ok := el.OwnProp("value"); ok {
		t.Error("accessor write must not create a plain own value")
	}
}

func TestPlainValueShadowsAccessor(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("div")

	el.SetProp("value", "early") // assigned before the accessor exists

	sets := 0
	el.DefineAccessor("value", Accessor{
		Get: func() any { return "accessor" },
		Set: func(any) { sets++ },
	})

	if v, _ := el.Prop("value"); v != "early" {
		t.Errorf("expected plain value to shadow the accessor, got %v", v)
	}

	// Writes keep updating the shadowing plain value, not the accessor.
	el.SetProp("value", "later")
	if sets != 0 {
		t.Errorf("expected no setter calls while shadowed, got %d", sets)
	}

	el.RemoveOwnProp("value")
	if v, _ := el.Prop("value"); v != "accessor" {
		t.Errorf("expected accessor after unshadowing, got %v", v)
	}
	el.SetProp("value", "routed")
	if sets != 1 {
		t.Errorf("expected setter call after unshadowing, got %d", sets)
	}
}

func TestHasAccessor(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("div")

	if el.HasAccessor("value") {
		t.Error("expected no accessor")
	}
	el.DefineAccessor("value", Accessor{})
	if !el.HasAccessor("value") {
		t.Error("expected accessor to be installed")
	}
}
