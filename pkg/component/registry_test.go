package component

import (
	stderrors "errors"
	"testing"

	"github.com/go-umbra/umbra/pkg/dom"
	"github.com/go-umbra/umbra/pkg/errors"
)

func TestNewRegistryRequiresUpgradeSupport(t *testing.T) {
	var doc dom.Document
	_, err := NewRegistry(&doc)
	if err == nil {
		t.Fatal("expected error for document without upgrade support")
	}
	if !stderrors.Is(err, ErrUpgradeUnsupported) {
		t.Errorf("expected ErrUpgradeUnsupported, got %v", err)
	}
	var uerr *errors.UmbraError
	if !stderrors.As(err, &uerr) || uerr.Kind != errors.KindInit {
		t.Errorf("expected init-kind structured error, got %v", err)
	}
}

func TestMustNewRegistryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	var doc dom.Document
	MustNewRegistry(&doc)
}

func TestDefineRejectsInvalidTags(t *testing.T) {
	reg := MustNewRegistry(dom.NewDocument())
	for _, tag := range []string{"", "div", "X-Foo", "1-up", "-leading"} {
		if err := reg.Define(tag, &Definition{}); err == nil {
			t.Errorf("expected Define(%q) to fail", tag)
		} else if !stderrors.Is(err, ErrInvalidTag) {
			t.Errorf("Define(%q): expected ErrInvalidTag, got %v", tag, err)
		}
	}
}

func TestDefineRejectsDuplicates(t *testing.T) {
	reg := MustNewRegistry(dom.NewDocument())
	if err := reg.Define("x-foo", &Definition{}); err != nil {
		t.Fatalf("Define: %v", err)
	}
	err := reg.Define("x-foo", &Definition{})
	if !stderrors.Is(err, ErrDuplicateTag) {
		t.Errorf("expected ErrDuplicateTag, got %v", err)
	}
}

func TestUpgradeOnCreate(t *testing.T) {
	doc := dom.NewDocument()
	reg := MustNewRegistry(doc)

	inits := 0
	if err := reg.Define("x-foo", &Definition{
		Init: func(*Instance) { inits++ },
	}); err != nil {
		t.Fatalf("Define: %v", err)
	}

	el := doc.CreateElement("x-foo")
	if !el.Upgraded() {
		t.Error("expected element upgraded at creation")
	}
	if inits != 1 {
		t.Errorf("expected one Init call, got %d", inits)
	}
	inst := reg.Instance(el)
	if inst == nil {
		t.Fatal("expected a live instance")
	}
	if inst.Active() {
		t.Error("detached element must not be activated")
	}
}

func TestUpgradeOnConnect(t *testing.T) {
	doc := dom.NewDocument()
	reg := MustNewRegistry(doc)

	// Element created before the definition exists.
	el := doc.CreateElement("x-late")
	if el.Upgraded() {
		t.Fatal("element must not be upgraded without a definition")
	}
	if err := reg.Define("x-late", &Definition{}); err != nil {
		t.Fatalf("Define: %v", err)
	}

	doc.Body().AppendChild(el)
	if !el.Upgraded() {
		t.Error("expected upgrade on connection")
	}
	if inst := reg.Instance(el); inst == nil || !inst.Active() {
		t.Error("expected connected element activated")
	}
}

func TestDefineUpgradesConnectedElements(t *testing.T) {
	doc := dom.NewDocument()
	reg := MustNewRegistry(doc)

	el := doc.CreateElement("x-retro")
	doc.Body().AppendChild(el)
	if el.Upgraded() {
		t.Fatal("premature upgrade")
	}

	if err := reg.Define("x-retro", &Definition{}); err != nil {
		t.Fatalf("Define: %v", err)
	}
	if !el.Upgraded() {
		t.Error("expected retroactive upgrade of connected elements")
	}
	if inst := reg.Instance(el); inst == nil || !inst.Active() {
		t.Error("expected retroactively upgraded element activated")
	}
}

func TestUpgradeHappensOnce(t *testing.T) {
	doc := dom.NewDocument()
	reg := MustNewRegistry(doc)

	inits := 0
	if err := reg.Define("x-once", &Definition{
		Init: func(*Instance) { inits++ },
	}); err != nil {
		t.Fatalf("Define: %v", err)
	}

	el := doc.CreateElement("x-once")
	doc.Body().AppendChild(el)
	doc.Body().RemoveChild(el)
	doc.Body().AppendChild(el)

	if inits != 1 {
		t.Errorf("expected a single upgrade across reattachment, got %d Init calls", inits)
	}
}

func TestInstanceIDsUnique(t *testing.T) {
	doc := dom.NewDocument()
	reg := MustNewRegistry(doc)
	if err := reg.Define("x-id", &Definition{}); err != nil {
		t.Fatalf("Define: %v", err)
	}

	seen := make(map[uint64]bool)
	for i := 0; i < 100; i++ {
		el := doc.CreateElement("x-id")
		id := reg.Instance(el).ID()
		if seen[id] {
			t.Fatalf("duplicate instance id %d", id)
		}
		seen[id] = true
	}
}
