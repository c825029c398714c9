package transform

import (
	"github.com/wudi/pagedom/dom"
	"github.com/wudi/pagedom/geo"
)

// RunAttached re-inserts the detached element at its original position for
// the duration of one task, then detaches it again on every exit path. It
// returns whatever the task returned and may be called any number of times.
type RunAttached func(task func() (interface{}, error)) (interface{}, error)

// RenderFunc is the callback invoked by RenderOffscreen while the element is
// detached. It receives the element, its bounding geometry captured before
// detachment, and a RunAttached function.
type RenderFunc func(el *dom.Element, bounds geo.Rect, attached RunAttached) error

// RenderOffscreen detaches the element matched by selector so expensive
// rendering can run off-screen, then guarantees reattachment at the original
// position (same parent, same next sibling) whether fn returns normally,
// returns an error, or panics. Errors from fn propagate unchanged after
// restoration. Geometry is captured through the engine's Measurer before
// detachment, the last point it is valid.
func (r *Renderer) RenderOffscreen(selector string, fn RenderFunc) error {
	el, err := r.doc.Query(selector)
	if err != nil {
		return err
	}
	bounds, err := r.eng.Bounds(el)
	if err != nil {
		return err
	}

	anchor := el.Detach()
	defer func() {
		if !el.Attached() {
			anchor.Attach(el)
		}
	}()

	attached := func(task func() (interface{}, error)) (interface{}, error) {
		anchor.Attach(el)
		defer el.Remove()
		return task()
	}
	return fn(el, bounds, attached)
}
