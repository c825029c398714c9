package transform

import (
	"bytes"

	treeblood "github.com/wyatt915/goldmark-treeblood"
	"github.com/yuin/goldmark"

	"github.com/wudi/pagedom/observability"
)

// RenderMarkdown replaces the text payload of every element matching
// selector with HTML rendered from that text as markdown. TeX math inside
// $...$ / $$...$$ delimiters is converted to MathML. Elements with no text
// content are left alone.
func (r *Renderer) RenderMarkdown(selector string) error {
	els, err := r.doc.QueryAll(selector)
	if err != nil {
		return err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			treeblood.MathML(),
		),
	)

	converted := 0
	for _, el := range els {
		source := el.Text()
		if source == "" {
			continue
		}
		var buf bytes.Buffer
		if err := md.Convert([]byte(source), &buf); err != nil {
			return err
		}
		if err := el.SetInnerHTML(buf.String()); err != nil {
			return err
		}
		converted++
	}

	r.log.Debug("markdown expanded",
		observability.String(observability.KeySelector, selector),
		observability.Int(observability.KeyEntries, converted))
	return nil
}
