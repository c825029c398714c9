package scripting

import (
	"context"

	"github.com/dop251/goja"

	"github.com/wudi/pagedom/dom"
	"github.com/wudi/pagedom/geo"
	"github.com/wudi/pagedom/observability"
	"github.com/wudi/pagedom/transform"
)

type GojaEngine struct {
	vm  *goja.Runtime
	log observability.Logger
}

func NewEngine() *GojaEngine {
	vm := goja.New()
	return &GojaEngine{vm: vm, log: observability.NopLogger{}}
}

// SetLogger routes console output and engine diagnostics to l.
func (e *GojaEngine) SetLogger(l observability.Logger) { e.log = l }

func (e *GojaEngine) Execute(ctx context.Context, script string) (interface{}, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := e.vm.RunString(script)
	if err != nil {
		if interruptedErr, ok := err.(*goja.InterruptedError); ok {
			if cause := interruptedErr.Unwrap(); cause != nil {
				return nil, cause
			}
			return nil, context.Canceled
		}
		return nil, err
	}
	return val.Export(), nil
}

func (e *GojaEngine) RegisterDocument(api DocumentAPI) error {
	// Expose 'console' object
	consoleObj := e.vm.NewObject()
	err := consoleObj.Set("log", func(call goja.FunctionCall) goja.Value {
		msg := ""
		if len(call.Arguments) > 0 {
			msg = call.Arguments[0].String()
		}
		e.log.Info("script log", observability.String("message", msg))
		return goja.Undefined()
	})
	if err != nil {
		return err
	}
	e.vm.Set("console", consoleObj)

	e.vm.Set("renderToc", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			panic(e.vm.NewTypeError("renderToc: target selector required"))
		}
		target := call.Arguments[0].String()
		headings := ""
		if len(call.Arguments) > 1 {
			headings = call.Arguments[1].String()
		}
		if err := api.RenderTOC(target, headings); err != nil {
			panic(e.vm.NewGoError(err))
		}
		return goja.Undefined()
	})

	e.vm.Set("renderPdf", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(e.vm.NewTypeError("renderPdf: parent selector and src required"))
		}
		if err := api.RenderPDF(call.Arguments[0].String(), call.Arguments[1].String()); err != nil {
			panic(e.vm.NewGoError(err))
		}
		return goja.Undefined()
	})

	e.vm.Set("renderMarkdown", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			panic(e.vm.NewTypeError("renderMarkdown: selector required"))
		}
		if err := api.RenderMarkdown(call.Arguments[0].String()); err != nil {
			panic(e.vm.NewGoError(err))
		}
		return goja.Undefined()
	})

	e.vm.Set("renderOffscreen", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(e.vm.NewTypeError("renderOffscreen: selector and callback required"))
		}
		selector := call.Arguments[0].String()
		cb, ok := goja.AssertFunction(call.Arguments[1])
		if !ok {
			panic(e.vm.NewTypeError("renderOffscreen: second argument must be a function"))
		}

		err := api.RenderOffscreen(selector, func(el *dom.Element, bounds geo.Rect, attached transform.RunAttached) error {
			attachedFn := e.vm.ToValue(func(inner goja.FunctionCall) goja.Value {
				if len(inner.Arguments) < 1 {
					panic(e.vm.NewTypeError("attached: task function required"))
				}
				task, ok := goja.AssertFunction(inner.Arguments[0])
				if !ok {
					panic(e.vm.NewTypeError("attached: task must be a function"))
				}
				result, err := attached(func() (interface{}, error) {
					v, err := task(goja.Undefined())
					if err != nil {
						return nil, err
					}
					return v.Export(), nil
				})
				if err != nil {
					panic(e.vm.NewGoError(err))
				}
				return e.vm.ToValue(result)
			})

			_, err := cb(goja.Undefined(),
				e.vm.ToValue(&elementProxy{el: el}),
				e.vm.ToValue(boundsObject(bounds)),
				attachedFn)
			return err
		})
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
		return goja.Undefined()
	})

	return nil
}

func boundsObject(r geo.Rect) map[string]interface{} {
	return map[string]interface{}{
		"x":      r.X,
		"y":      r.Y,
		"width":  r.W,
		"height": r.H,
	}
}

type elementProxy struct {
	el *dom.Element
}

func (p *elementProxy) Tag() string { return p.el.Tag() }

func (p *elementProxy) Id() string { return p.el.ID() }

func (p *elementProxy) GetAttr(name string) string {
	v, _ := p.el.Attr(name)
	return v
}

func (p *elementProxy) SetAttr(name, value string) { p.el.SetAttr(name, value) }

func (p *elementProxy) Attached() bool { return p.el.Attached() }
