// Package engine defines the capability surface a paged-media rendering
// engine exposes on document elements: a page count readable off a rendered
// embedded-page element, a page-selector style directive, and element
// geometry. The transforms depend only on these interfaces so alternate
// engines can be substituted.
package engine

import (
	"github.com/wudi/pagedom/dom"
	"github.com/wudi/pagedom/geo"
)

// PageCounter reads the page-count property the rendering engine stamps on a
// rendered embedded-page element. A count of zero means the capability is
// absent on the element.
type PageCounter interface {
	PageCount(el *dom.Element) (int, error)
}

// PageSelector writes the page-selector directive onto an element, telling
// the engine which page of the referenced resource to render.
type PageSelector interface {
	SetPageSelector(el *dom.Element, page int)
}

// Measurer reports the bounding geometry of an attached element. Geometry is
// only meaningful while the element is in the tree.
type Measurer interface {
	Bounds(el *dom.Element) (geo.Rect, error)
}

// Engine is the full capability surface of a paged-media rendering engine.
type Engine interface {
	PageCounter
	PageSelector
	Measurer
}
