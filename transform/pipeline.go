package transform

import (
	"context"
	"sort"

	"github.com/wudi/pagedom/dom"
	"github.com/wudi/pagedom/engine"
	"github.com/wudi/pagedom/observability"
)

// Transform is one named document rewrite. Lower priorities run first.
type Transform interface {
	Name() string
	Priority() int
	Apply(ctx context.Context, doc *dom.Document) error
}

// Pipeline runs a set of transforms over a document in priority order.
type Pipeline struct {
	transforms []Transform
	log        observability.Logger
}

// NewPipeline returns an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{log: observability.NopLogger{}}
}

// SetLogger replaces the pipeline logger.
func (p *Pipeline) SetLogger(l observability.Logger) { p.log = l }

// Register adds a transform, keeping the set sorted by priority.
func (p *Pipeline) Register(t Transform) {
	p.transforms = append(p.transforms, t)
	sort.SliceStable(p.transforms, func(i, j int) bool {
		return p.transforms[i].Priority() < p.transforms[j].Priority()
	})
}

// Transforms returns the registered transforms in execution order.
func (p *Pipeline) Transforms() []Transform {
	return append([]Transform(nil), p.transforms...)
}

// Run applies every transform to doc, stopping at the first failure or when
// ctx is cancelled.
func (p *Pipeline) Run(ctx context.Context, doc *dom.Document) error {
	for _, t := range p.transforms {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.log.Debug("applying transform", observability.String("name", t.Name()))
		if err := t.Apply(ctx, doc); err != nil {
			p.log.Error("transform failed",
				observability.String("name", t.Name()),
				observability.Error("err", err))
			return err
		}
	}
	return nil
}

// TOCTransform generates a table of contents as a pipeline step.
type TOCTransform struct {
	Target   string
	Headings string
	Engine   engine.Engine
}

func (t *TOCTransform) Name() string  { return "toc" }
func (t *TOCTransform) Priority() int { return 100 }
func (t *TOCTransform) Apply(ctx context.Context, doc *dom.Document) error {
	return t.renderer(doc).RenderTOC(t.Target, t.Headings)
}

func (t *TOCTransform) renderer(doc *dom.Document) *Renderer {
	if t.Engine != nil {
		return New(doc, WithEngine(t.Engine))
	}
	return New(doc)
}

// PDFTransform expands an embedded PDF reference as a pipeline step.
type PDFTransform struct {
	Parent string
	Src    string
	Engine engine.Engine
}

func (t *PDFTransform) Name() string  { return "pdf-pages" }
func (t *PDFTransform) Priority() int { return 200 }
func (t *PDFTransform) Apply(ctx context.Context, doc *dom.Document) error {
	r := New(doc)
	if t.Engine != nil {
		r = New(doc, WithEngine(t.Engine))
	}
	return r.RenderPDF(t.Parent, t.Src)
}

// MarkdownTransform expands markdown payloads as a pipeline step. It runs
// before the TOC so generated headings are picked up.
type MarkdownTransform struct {
	Selector string
}

func (t *MarkdownTransform) Name() string  { return "markdown" }
func (t *MarkdownTransform) Priority() int { return 50 }
func (t *MarkdownTransform) Apply(ctx context.Context, doc *dom.Document) error {
	return New(doc).RenderMarkdown(t.Selector)
}
