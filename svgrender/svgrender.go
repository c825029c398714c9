// Package svgrender rasterizes SVG elements taken from a document. It is
// the kind of expensive operation meant to run under
// transform.RenderOffscreen: the element is serialized and drawn while
// detached, using geometry captured before detachment.
package svgrender

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"github.com/wudi/pagedom/dom"
	"github.com/wudi/pagedom/geo"
)

// Rasterize draws the SVG element into an RGBA image of the given bounds.
func Rasterize(el *dom.Element, bounds geo.Rect) (*image.RGBA, error) {
	if bounds.Empty() {
		return nil, fmt.Errorf("rasterize <%s>: empty bounds", el.Tag())
	}
	markup, err := el.OuterHTML()
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("reading svg: %w", err)
	}

	w, h := int(bounds.W), int(bounds.H)
	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img, nil
}

// SetSize stamps the bounds onto the element's width and height attributes,
// the way hosts size an SVG root before handing it to the rasterizer.
func SetSize(el *dom.Element, bounds geo.Rect) {
	el.SetAttr("width", strconv.FormatFloat(bounds.W, 'f', -1, 64))
	el.SetAttr("height", strconv.FormatFloat(bounds.H, 'f', -1, 64))
}

// Scale resamples src into a new image of the given bounds.
func Scale(src image.Image, bounds geo.Rect) (*image.RGBA, error) {
	if bounds.Empty() {
		return nil, fmt.Errorf("scale: empty bounds")
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(bounds.W), int(bounds.H)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst, nil
}
