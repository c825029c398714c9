package transform

import (
	"strconv"

	"github.com/wudi/pagedom/dom"
	"github.com/wudi/pagedom/observability"
)

// Class markers identifying generated embedded-page elements. Every page
// carries ClassPDFPage plus a page-specific "pdf-page-<n>" class.
const (
	ClassPDFPage       = "pdf-page"
	classPDFPagePrefix = "pdf-page-"
)

// RenderPDF expands a PDF reference into one image element per page inside
// the element matched by parentSelector. Page 1 is appended first; the page
// count is then read off that element through the engine capability, and
// pages 2..count are appended in ascending order. A count below 2 leaves
// only the page-1 element. Existing parent content is kept.
func (r *Renderer) RenderPDF(parentSelector, src string) error {
	parent, err := r.doc.Query(parentSelector)
	if err != nil {
		return err
	}

	first := r.appendPage(parent, src, 1)
	count, err := r.eng.PageCount(first)
	if err != nil {
		return err
	}
	for page := 2; page <= count; page++ {
		r.appendPage(parent, src, page)
	}

	rendered := count
	if rendered < 1 {
		rendered = 1
	}
	r.log.Debug("pdf expanded",
		observability.String(observability.KeySource, src),
		observability.Int(observability.KeyPages, rendered))
	return nil
}

func (r *Renderer) appendPage(parent *dom.Element, src string, page int) *dom.Element {
	img := r.doc.CreateElement("img")
	img.SetAttr("src", src)
	img.AddClass(ClassPDFPage)
	img.AddClass(classPDFPagePrefix + strconv.Itoa(page))
	r.eng.SetPageSelector(img, page)
	parent.AppendChild(img)
	return img
}
