package engine

import (
	"github.com/wudi/pagedom/dom"
	"github.com/wudi/pagedom/geo"
)

// Static is a fixed-value engine for tests and hosts without a paged-media
// renderer: every embedded-page element reports the same page count and
// every element the same bounds. Page selectors are still written as inline
// style, so output is inspectable.
type Static struct {
	Pages int
	Size  geo.Rect
}

func (s Static) PageCount(*dom.Element) (int, error) { return s.Pages, nil }

func (Static) SetPageSelector(el *dom.Element, page int) {
	AttrEngine{}.SetPageSelector(el, page)
}

func (s Static) Bounds(*dom.Element) (geo.Rect, error) { return s.Size, nil }
