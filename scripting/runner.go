package scripting

import (
	"context"

	"github.com/wudi/pagedom/dom"
	"github.com/wudi/pagedom/engine"
	"github.com/wudi/pagedom/transform"
)

// ScriptType is the type attribute marking script elements the runner
// executes. Regular browser scripts are left alone.
const ScriptType = "text/x-pagedom"

// ScriptRunner is a pipeline transform that executes document-embedded
// helper scripts in document order.
type ScriptRunner struct {
	engine       Engine
	capabilities engine.Engine
}

// NewScriptRunner returns a runner executing scripts through eng. A nil
// capabilities engine falls back to the attribute-backed one.
func NewScriptRunner(eng Engine, capabilities engine.Engine) *ScriptRunner {
	return &ScriptRunner{engine: eng, capabilities: capabilities}
}

func (r *ScriptRunner) Name() string { return "script-runner" }

func (r *ScriptRunner) Priority() int { return 300 }

func (r *ScriptRunner) Apply(ctx context.Context, doc *dom.Document) error {
	if r.engine == nil {
		return nil
	}

	opts := []transform.Option{}
	if r.capabilities != nil {
		opts = append(opts, transform.WithEngine(r.capabilities))
	}
	if err := r.engine.RegisterDocument(transform.New(doc, opts...)); err != nil {
		return err
	}

	scripts, err := doc.QueryAll(`script[type="` + ScriptType + `"]`)
	if err != nil {
		return err
	}
	for _, s := range scripts {
		if _, err := r.engine.Execute(ctx, s.Text()); err != nil {
			return err
		}
	}
	return nil
}
