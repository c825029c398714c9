package transform

import (
	"context"
	"errors"
	"testing"

	"github.com/wudi/pagedom/dom"
	"github.com/wudi/pagedom/engine"
)

type recordingTransform struct {
	name     string
	priority int
	order    *[]string
	err      error
}

func (r *recordingTransform) Name() string  { return r.name }
func (r *recordingTransform) Priority() int { return r.priority }
func (r *recordingTransform) Apply(ctx context.Context, doc *dom.Document) error {
	*r.order = append(*r.order, r.name)
	return r.err
}

func TestPipelinePriorityOrder(t *testing.T) {
	doc := mustParse(t, `<html><body></body></html>`)
	var order []string

	p := NewPipeline()
	p.Register(&recordingTransform{name: "late", priority: 200, order: &order})
	p.Register(&recordingTransform{name: "early", priority: 10, order: &order})
	p.Register(&recordingTransform{name: "middle", priority: 100, order: &order})

	if err := p.Run(context.Background(), doc); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := []string{"early", "middle", "late"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i, name := range want {
		if order[i] != name {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestPipelineStopsOnError(t *testing.T) {
	doc := mustParse(t, `<html><body></body></html>`)
	var order []string
	boom := errors.New("boom")

	p := NewPipeline()
	p.Register(&recordingTransform{name: "first", priority: 1, order: &order, err: boom})
	p.Register(&recordingTransform{name: "second", priority: 2, order: &order})

	if err := p.Run(context.Background(), doc); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if len(order) != 1 {
		t.Errorf("transforms after failure still ran: %v", order)
	}
}

func TestPipelineContextCancelled(t *testing.T) {
	doc := mustParse(t, `<html><body></body></html>`)
	var order []string

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPipeline()
	p.Register(&recordingTransform{name: "never", priority: 1, order: &order})

	if err := p.Run(ctx, doc); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(order) != 0 {
		t.Errorf("transform ran despite cancelled context: %v", order)
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	doc := mustParse(t, `<html><body>
<div class="md"># Generated Heading</div>
<ul id="toc"></ul>
<div id="pdf"></div>
</body></html>`)

	p := NewPipeline()
	p.Register(&TOCTransform{Target: "#toc"})
	p.Register(&MarkdownTransform{Selector: ".md"})
	p.Register(&PDFTransform{Parent: "#pdf", Src: "report.pdf", Engine: engine.Static{Pages: 2}})

	if err := p.Run(context.Background(), doc); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Markdown runs before the TOC, so the generated heading is indexed.
	link, err := doc.Query("#toc a")
	if err != nil {
		t.Fatalf("toc entry missing: %v", err)
	}
	if link.Text() != "Generated Heading" {
		t.Errorf("toc entry text = %q", link.Text())
	}
	imgs, _ := doc.QueryAll("#pdf > img")
	if len(imgs) != 2 {
		t.Errorf("expected 2 pdf pages, got %d", len(imgs))
	}
}
