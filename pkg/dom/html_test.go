package dom

import (
	"strings"
	"testing"
)

func TestParseDocument(t *testing.T) {
	const src = `<html><head><title>t</title></head><body><x-badge level="info">hi</x-badge></body></html>`
	d, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !d.SupportsUpgrade() {
		t.Error("parsed document must support upgrades")
	}

	body := d.Body()
	if body == nil || len(body.Children()) != 1 {
		t.Fatalf("expected one body child, got %+v", body)
	}
	badge := body.Children()[0]
	if badge.Tag() != "x-badge" {
		t.Errorf("expected x-badge, got %q", badge.Tag())
	}
	if v, _ := badge.Attr("level"); v != "info" {
		t.Errorf("expected level=info, got %q", v)
	}
	if badge.Text() != "hi" {
		t.Errorf("expected text 'hi', got %q", badge.Text())
	}
	if !badge.Connected() {
		t.Error("expected parsed body content to be connected")
	}
}

func TestParseFragment(t *testing.T) {
	d := NewDocument()
	els, err := ParseFragment(d, `<p class="a">one</p><p>two</p>`)
	if err != nil {
		t.Fatalf("ParseFragment: %v", err)
	}
	if len(els) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(els))
	}
	if els[0].Tag() != "p" || els[0].Text() != "one" {
		t.Errorf("unexpected first element: %q %q", els[0].Tag(), els[0].Text())
	}
	if cls, _ := els[0].Attr("class"); cls != "a" {
		t.Errorf("expected class=a, got %q", cls)
	}
	if els[0].Connected() {
		t.Error("fragment elements must start detached")
	}
}

func TestParseFragmentWrapsBareText(t *testing.T) {
	d := NewDocument()
	els, err := ParseFragment(d, `hello`)
	if err != nil {
		t.Fatalf("ParseFragment: %v", err)
	}
	if len(els) != 1 || els[0].Tag() != "span" || els[0].Text() != "hello" {
		t.Errorf("expected bare text wrapped in span, got %+v", els)
	}
}

func TestWriteHTMLRoundTrip(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("x-badge")
	el.SetAttr("level", "warn")
	el.SetText("careful")
	d.Body().AppendChild(el)

	var sb strings.Builder
	if err := d.WriteHTML(&sb); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, `<x-badge level="warn">careful</x-badge>`) {
		t.Errorf("unexpected serialization: %s", out)
	}
}

func TestWriteHTMLSortsAttributes(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("div")
	el.SetAttr("zeta", "1")
	el.SetAttr("alpha", "2")

	var sb strings.Builder
	if err := el.WriteHTML(&sb); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	out := sb.String()
	if strings.Index(out, "alpha") > strings.Index(out, "zeta") {
		t.Errorf("expected deterministic attribute order, got %s", out)
	}
}
