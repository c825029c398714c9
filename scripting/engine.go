// Package scripting executes document-embedded scripts against the
// paged-media helper surface, so HTML documents can drive their own DOM
// rewrites the way they would in a browser-based paged-media host.
package scripting

import (
	"context"

	"github.com/wudi/pagedom/transform"
)

// Engine represents a scripting engine (e.g., JavaScript).
type Engine interface {
	// Execute executes a script in the context of the registered document.
	Execute(ctx context.Context, script string) (interface{}, error)

	// RegisterDocument binds the helper surface scripts call into.
	RegisterDocument(api DocumentAPI) error
}

// DocumentAPI is the controlled surface exposed to scripts. It is satisfied
// by *transform.Renderer.
type DocumentAPI interface {
	RenderTOC(targetSelector, headingSelector string) error
	RenderPDF(parentSelector, src string) error
	RenderOffscreen(selector string, fn transform.RenderFunc) error
	RenderMarkdown(selector string) error
}

var _ DocumentAPI = (*transform.Renderer)(nil)
