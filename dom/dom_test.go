package dom

import (
	"errors"
	"strings"
	"testing"
)

const sampleDoc = `<html><head></head><body>
<div id="main" class="content wide">
  <h1>First</h1>
  <p>Some <em>emphasized</em> text</p>
  <h2>Second</h2>
</div>
<ul id="list"></ul>
</body></html>`

func mustParse(t *testing.T, source string) *Document {
	t.Helper()
	doc, err := ParseString(source)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	return doc
}

func TestQuery(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	el, err := doc.Query("#main")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if el.Tag() != "div" {
		t.Errorf("expected div, got %s", el.Tag())
	}
	if el.ID() != "main" {
		t.Errorf("expected id main, got %q", el.ID())
	}
}

func TestQueryNoMatch(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	_, err := doc.Query("#missing")
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

func TestQueryInvalidSelector(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	_, err := doc.Query("[unclosed")
	if !errors.Is(err, ErrInvalidSelector) {
		t.Fatalf("expected ErrInvalidSelector, got %v", err)
	}
}

func TestQueryAllDocumentOrder(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	els, err := doc.QueryAll("h1, h2")
	if err != nil {
		t.Fatalf("QueryAll failed: %v", err)
	}
	if len(els) != 2 {
		t.Fatalf("expected 2 headings, got %d", len(els))
	}
	if els[0].Tag() != "h1" || els[1].Tag() != "h2" {
		t.Errorf("wrong order: %s, %s", els[0].Tag(), els[1].Tag())
	}
}

func TestQueryAllEmpty(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	els, err := doc.QueryAll("h6")
	if err != nil {
		t.Fatalf("QueryAll failed: %v", err)
	}
	if len(els) != 0 {
		t.Errorf("expected no matches, got %d", len(els))
	}
}

func TestAttributes(t *testing.T) {
	doc := mustParse(t, sampleDoc)
	el, _ := doc.Query("#main")

	if v, ok := el.Attr("class"); !ok || v != "content wide" {
		t.Errorf("class = %q, %v", v, ok)
	}
	if el.HasAttr("data-x") {
		t.Error("unexpected data-x attribute")
	}
	el.SetAttr("data-x", "1")
	if v, _ := el.Attr("data-x"); v != "1" {
		t.Errorf("data-x = %q", v)
	}
	el.SetAttr("data-x", "2")
	if v, _ := el.Attr("data-x"); v != "2" {
		t.Errorf("data-x after overwrite = %q", v)
	}
	el.RemoveAttr("data-x")
	if el.HasAttr("data-x") {
		t.Error("data-x still present after removal")
	}
}

func TestAddClass(t *testing.T) {
	doc := mustParse(t, sampleDoc)
	el := doc.CreateElement("li")

	el.AddClass("level-h1")
	el.AddClass("active")
	got := el.Classes()
	if len(got) != 2 || got[0] != "level-h1" || got[1] != "active" {
		t.Errorf("classes = %v", got)
	}
}

func TestTextAndInnerHTML(t *testing.T) {
	doc := mustParse(t, sampleDoc)
	p, err := doc.Query("p")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	if got := p.Text(); got != "Some emphasized text" {
		t.Errorf("Text = %q", got)
	}
	inner, err := p.InnerHTML()
	if err != nil {
		t.Fatalf("InnerHTML failed: %v", err)
	}
	if inner != "Some <em>emphasized</em> text" {
		t.Errorf("InnerHTML = %q", inner)
	}
}

func TestAppendHTMLPreservesExistingContent(t *testing.T) {
	doc := mustParse(t, `<html><body><ul id="l"><li>old</li></ul></body></html>`)
	ul, _ := doc.Query("#l")

	if err := ul.AppendHTML("<li>new <em>item</em></li>"); err != nil {
		t.Fatalf("AppendHTML failed: %v", err)
	}
	inner, _ := ul.InnerHTML()
	if inner != "<li>old</li><li>new <em>item</em></li>" {
		t.Errorf("InnerHTML = %q", inner)
	}
}

func TestSetInnerHTML(t *testing.T) {
	doc := mustParse(t, `<html><body><div id="d"><span>old</span></div></body></html>`)
	d, _ := doc.Query("#d")

	if err := d.SetInnerHTML("<b>new</b>"); err != nil {
		t.Fatalf("SetInnerHTML failed: %v", err)
	}
	inner, _ := d.InnerHTML()
	if inner != "<b>new</b>" {
		t.Errorf("InnerHTML = %q", inner)
	}
}

func TestCreateElementAppendChild(t *testing.T) {
	doc := mustParse(t, sampleDoc)
	list, _ := doc.Query("#list")

	item := doc.CreateElement("li")
	item.SetAttr("class", "entry")
	list.AppendChild(item)

	got, err := doc.Query("#list > li.entry")
	if err != nil {
		t.Fatalf("appended element not found: %v", err)
	}
	if got.Tag() != "li" {
		t.Errorf("tag = %s", got.Tag())
	}
}

func TestDetachAttachRestoresPosition(t *testing.T) {
	doc := mustParse(t, `<html><body><div id="c"><i>a</i><span id="s">x</span><i>b</i></div></body></html>`)
	el, _ := doc.Query("#s")
	parent := el.Node().Parent
	next := el.Node().NextSibling

	anchor := el.Detach()
	if el.Attached() {
		t.Fatal("element still attached after Detach")
	}
	if _, err := doc.Query("#s"); !errors.Is(err, ErrNoMatch) {
		t.Fatal("detached element still reachable")
	}

	anchor.Attach(el)
	if el.Node().Parent != parent {
		t.Error("parent changed after reattach")
	}
	if el.Node().NextSibling != next {
		t.Error("next sibling changed after reattach")
	}
}

func TestDetachLastChild(t *testing.T) {
	doc := mustParse(t, `<html><body><div id="c"><i>a</i><span id="s">x</span></div></body></html>`)
	el, _ := doc.Query("#s")

	anchor := el.Detach()
	anchor.Attach(el)

	if el.Node().NextSibling != nil {
		t.Error("expected element to remain last child")
	}
	if el.Node().Parent == nil || el.Node().Parent.Data != "div" {
		t.Error("wrong parent after reattach")
	}
}

func TestRenderRoundTrip(t *testing.T) {
	doc := mustParse(t, sampleDoc)

	out, err := doc.HTML()
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if !strings.Contains(out, `<div id="main"`) {
		t.Errorf("serialized output missing content: %q", out)
	}
}

func TestParseWithCharset(t *testing.T) {
	doc, err := ParseWithCharset(strings.NewReader(sampleDoc), "text/html; charset=utf-8")
	if err != nil {
		t.Fatalf("ParseWithCharset failed: %v", err)
	}
	if _, err := doc.Query("#main"); err != nil {
		t.Errorf("Query after charset parse: %v", err)
	}
}
