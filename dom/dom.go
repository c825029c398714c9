// Package dom provides a light document handle over golang.org/x/net/html
// trees: CSS selector lookup, element-level attribute and markup access, and
// tree mutation that preserves sibling positions. It is the host surface the
// paged-media transforms operate on.
package dom

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

// Sentinel errors for selector resolution.
var (
	ErrNoMatch         = errors.New("selector matched no element")
	ErrInvalidSelector = errors.New("invalid selector")
)

// Document wraps a parsed HTML tree.
type Document struct {
	root *html.Node
}

// Parse reads an HTML document from r. Input must be UTF-8.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseWithCharset reads an HTML document from r, sniffing the character
// encoding from contentType and the stream itself before parsing.
func ParseWithCharset(r io.Reader, contentType string) (*Document, error) {
	cr, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}
	return Parse(cr)
}

// ParseFile reads an HTML document from the named file.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseWithCharset(f, "")
}

// ParseString parses an HTML document held in a string.
func ParseString(source string) (*Document, error) {
	return Parse(strings.NewReader(source))
}

// Root returns the underlying root node.
func (d *Document) Root() *html.Node { return d.root }

// Render writes the serialized document to w.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// HTML returns the serialized document.
func (d *Document) HTML() (string, error) {
	var sb strings.Builder
	if err := d.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Query returns the first element matching the selector, in document order.
// Returns ErrNoMatch (wrapped with the selector) when nothing matches.
func (d *Document) Query(selector string) (*Element, error) {
	sel, err := compile(selector)
	if err != nil {
		return nil, err
	}
	n := sel.MatchFirst(d.root)
	if n == nil {
		return nil, fmt.Errorf("%q: %w", selector, ErrNoMatch)
	}
	return &Element{n: n}, nil
}

// QueryAll returns all elements matching the selector, in document order.
// An empty result is not an error.
func (d *Document) QueryAll(selector string) ([]*Element, error) {
	sel, err := compile(selector)
	if err != nil {
		return nil, err
	}
	nodes := sel.MatchAll(d.root)
	els := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		els = append(els, &Element{n: n})
	}
	return els, nil
}

// CreateElement returns a new detached element with the given tag name.
func (d *Document) CreateElement(tag string) *Element {
	tag = strings.ToLower(tag)
	return &Element{n: &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
	}}
}

func compile(selector string) (cascadia.Selector, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%q: %w: %v", selector, ErrInvalidSelector, err)
	}
	return sel, nil
}
