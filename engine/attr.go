package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wudi/pagedom/dom"
	"github.com/wudi/pagedom/geo"
)

// Conventions honored by the rendering engine. The page count appears as an
// attribute on rendered embedded-page elements; the page selector is an
// inline style property.
const (
	AttrPageCount     = "data-page-count"
	StylePageProperty = "-pagedom-page"
)

// AttrEngine is the attribute-backed capability implementation: the page
// count is read from AttrPageCount, the page selector written as the
// StylePageProperty inline style declaration, and geometry taken from
// width/height attributes with a viewBox fallback.
type AttrEngine struct{}

// NewAttrEngine returns the attribute-backed engine.
func NewAttrEngine() *AttrEngine { return &AttrEngine{} }

// PageCount returns the page count stamped on el, or 0 when the attribute is
// absent. An unparsable value is an error.
func (AttrEngine) PageCount(el *dom.Element) (int, error) {
	v, ok := el.Attr(AttrPageCount)
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", AttrPageCount, v, err)
	}
	return n, nil
}

// SetPageSelector writes the page-selector style declaration on el.
func (AttrEngine) SetPageSelector(el *dom.Element, page int) {
	SetStyleProperty(el, StylePageProperty, strconv.Itoa(page))
}

// Bounds derives element geometry from width/height attributes, falling back
// to the SVG viewBox when either is missing.
func (AttrEngine) Bounds(el *dom.Element) (geo.Rect, error) {
	w, wok := el.Attr("width")
	h, hok := el.Attr("height")
	if wok && hok {
		fw, err := geo.ParseLength(w)
		if err != nil {
			return geo.Rect{}, err
		}
		fh, err := geo.ParseLength(h)
		if err != nil {
			return geo.Rect{}, err
		}
		return geo.Rect{W: fw, H: fh}, nil
	}
	if vb, ok := el.Attr("viewbox"); ok {
		return geo.ParseViewBox(vb)
	}
	if vb, ok := el.Attr("viewBox"); ok {
		return geo.ParseViewBox(vb)
	}
	return geo.Rect{}, fmt.Errorf("element <%s> has no width/height or viewBox", el.Tag())
}

// SetStyleProperty sets one declaration in the element's inline style,
// replacing an existing declaration for the same property.
func SetStyleProperty(el *dom.Element, property, value string) {
	style, _ := el.Attr("style")
	var decls []string
	for _, d := range strings.Split(style, ";") {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		name := strings.TrimSpace(strings.SplitN(d, ":", 2)[0])
		if name == property {
			continue
		}
		decls = append(decls, d)
	}
	decls = append(decls, property+": "+value)
	el.SetAttr("style", strings.Join(decls, "; "))
}

// StyleProperty reads one declaration from the element's inline style.
func StyleProperty(el *dom.Element, property string) (string, bool) {
	style, ok := el.Attr("style")
	if !ok {
		return "", false
	}
	for _, d := range strings.Split(style, ";") {
		parts := strings.SplitN(d, ":", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.TrimSpace(parts[0]) == property {
			return strings.TrimSpace(parts[1]), true
		}
	}
	return "", false
}
