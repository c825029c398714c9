package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Element wraps a single element node.
type Element struct {
	n *html.Node
}

// WrapNode wraps an existing element node. The node must be an element.
func WrapNode(n *html.Node) (*Element, error) {
	if n == nil || n.Type != html.ElementNode {
		return nil, fmt.Errorf("node is not an element")
	}
	return &Element{n: n}, nil
}

// Node returns the underlying node.
func (e *Element) Node() *html.Node { return e.n }

// Tag returns the lowercased tag name.
func (e *Element) Tag() string { return e.n.Data }

// Parent returns the parent element, or nil if the element is detached or
// its parent is not an element node.
func (e *Element) Parent() *Element {
	p := e.n.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return &Element{n: p}
}

// Attached reports whether the element currently has a parent in a tree.
func (e *Element) Attached() bool { return e.n.Parent != nil }

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present, regardless of value.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttr sets the named attribute, replacing any existing value.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.n.Attr {
		if a.Key == name {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr removes the named attribute if present.
func (e *Element) RemoveAttr(name string) {
	for i, a := range e.n.Attr {
		if a.Key == name {
			e.n.Attr = append(e.n.Attr[:i], e.n.Attr[i+1:]...)
			return
		}
	}
}

// ID returns the element's id attribute, or "" if unset.
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// SetID sets the element's id attribute.
func (e *Element) SetID(id string) { e.SetAttr("id", id) }

// AddClass appends a class token to the element's class attribute.
func (e *Element) AddClass(class string) {
	if existing, ok := e.Attr("class"); ok && existing != "" {
		e.SetAttr("class", existing+" "+class)
		return
	}
	e.SetAttr("class", class)
}

// Classes returns the element's class tokens.
func (e *Element) Classes() []string {
	v, _ := e.Attr("class")
	return strings.Fields(v)
}

// Text returns the concatenated text content of the element's subtree.
func (e *Element) Text() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.n)
	return sb.String()
}

// InnerHTML returns the serialized markup of the element's children.
func (e *Element) InnerHTML() (string, error) {
	var sb strings.Builder
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// AppendHTML parses markup as a fragment in the context of this element and
// appends the resulting nodes after any existing children.
func (e *Element) AppendHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.n)
	if err != nil {
		return fmt.Errorf("parsing fragment: %w", err)
	}
	for _, n := range nodes {
		e.n.AppendChild(n)
	}
	return nil
}

// SetInnerHTML replaces the element's children with markup parsed as a
// fragment in the context of this element.
func (e *Element) SetInnerHTML(markup string) error {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
	return e.AppendHTML(markup)
}

// AppendChild appends a detached element as the last child.
func (e *Element) AppendChild(child *Element) {
	e.n.AppendChild(child.n)
}

// Remove detaches the element from its parent. A no-op when already detached.
func (e *Element) Remove() {
	if e.n.Parent != nil {
		e.n.Parent.RemoveChild(e.n)
	}
}

// OuterHTML returns the serialized markup of the element itself.
func (e *Element) OuterHTML() (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, e.n); err != nil {
		return "", err
	}
	return sb.String(), nil
}
