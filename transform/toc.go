package transform

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/wudi/pagedom/observability"
)

// DefaultHeadingSelector is used when RenderTOC is called with an empty
// heading selector.
const DefaultHeadingSelector = "h1, h2"

// AttrTOCIgnore excludes a heading from the table of contents. Presence
// alone excludes, regardless of value.
const AttrTOCIgnore = "data-toc-ignore"

var nonWord = regexp.MustCompile(`\W+`)

// RenderTOC collects the headings matching headingSelector in document
// order, skips those carrying AttrTOCIgnore, and appends one list item per
// heading to the element matched by targetSelector. Each item carries class
// "level-<tag>" and wraps a link to the heading whose inner markup mirrors
// the heading's own. Headings without an id are assigned one derived from
// their text: non-word runs collapse to a single hyphen and the heading's
// zero-based index within the filtered sequence is appended. Existing ids
// and existing target content are left untouched.
func (r *Renderer) RenderTOC(targetSelector, headingSelector string) error {
	if headingSelector == "" {
		headingSelector = DefaultHeadingSelector
	}
	target, err := r.doc.Query(targetSelector)
	if err != nil {
		return err
	}
	headings, err := r.doc.QueryAll(headingSelector)
	if err != nil {
		return err
	}

	idx := 0
	for _, h := range headings {
		if h.HasAttr(AttrTOCIgnore) {
			continue
		}
		if h.ID() == "" {
			base := nonWord.ReplaceAllString(strings.TrimSpace(h.Text()), "-")
			h.SetID(base + strconv.Itoa(idx))
		}

		inner, err := h.InnerHTML()
		if err != nil {
			return err
		}
		item := r.doc.CreateElement("li")
		item.AddClass("level-" + h.Tag())
		link := r.doc.CreateElement("a")
		link.SetAttr("href", "#"+h.ID())
		if err := link.AppendHTML(inner); err != nil {
			return err
		}
		item.AppendChild(link)
		target.AppendChild(item)
		idx++
	}

	r.log.Debug("toc rendered",
		observability.String(observability.KeySelector, headingSelector),
		observability.Int(observability.KeyEntries, idx))
	return nil
}
