package dom

import "golang.org/x/net/html"

// Anchor records an element's position in the tree: its parent and the
// sibling it immediately precedes. A nil next sibling means the element was
// the last child. Reattaching through the same Anchor restores the exact
// original position.
type Anchor struct {
	parent *html.Node
	next   *html.Node
}

// Anchor captures the element's current position without detaching it.
func (e *Element) Anchor() Anchor {
	return Anchor{parent: e.n.Parent, next: e.n.NextSibling}
}

// Detach captures the element's current position and removes it from the
// tree. The returned Anchor reattaches it at the same position.
func (e *Element) Detach() Anchor {
	a := e.Anchor()
	e.Remove()
	return a
}

// Attach re-inserts a detached element at the recorded position. A no-op
// when the anchor was captured on an element that had no parent.
func (a Anchor) Attach(e *Element) {
	if a.parent == nil {
		return
	}
	a.parent.InsertBefore(e.n, a.next)
}
