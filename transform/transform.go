// Package transform implements the DOM rewrites applied to HTML documents
// before paged-media rendering: table-of-contents generation, expansion of
// an embedded PDF reference into per-page image elements, off-screen
// rendering of detached elements, and markdown expansion.
package transform

import (
	"github.com/wudi/pagedom/dom"
	"github.com/wudi/pagedom/engine"
	"github.com/wudi/pagedom/observability"
)

// Renderer applies transforms to one document. The document handle, engine
// capabilities and logger are injected at construction; the operations
// themselves are stateless between calls.
type Renderer struct {
	doc *dom.Document
	eng engine.Engine
	log observability.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithEngine sets the paged-media engine capabilities. Defaults to the
// attribute-backed engine.
func WithEngine(e engine.Engine) Option {
	return func(r *Renderer) { r.eng = e }
}

// WithLogger sets the logger. Defaults to a no-op.
func WithLogger(l observability.Logger) Option {
	return func(r *Renderer) { r.log = l }
}

// New returns a Renderer bound to doc.
func New(doc *dom.Document, opts ...Option) *Renderer {
	r := &Renderer{
		doc: doc,
		eng: engine.NewAttrEngine(),
		log: observability.NopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Document returns the document the renderer is bound to.
func (r *Renderer) Document() *dom.Document { return r.doc }
