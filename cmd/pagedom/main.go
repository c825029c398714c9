// Command pagedom applies paged-media DOM transforms to an HTML document:
// markdown expansion, table-of-contents generation, embedded-PDF page
// expansion and execution of embedded helper scripts. The transformed
// document is written to stdout or -out.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/wudi/pagedom/dom"
	"github.com/wudi/pagedom/scripting"
	"github.com/wudi/pagedom/transform"
)

type options struct {
	htmlPath    string
	outPath     string
	tocTarget   string
	tocHeadings string
	pdfParent   string
	pdfSrc      string
	markdown    string
	runScripts  bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pagedom: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "pagedom: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: pagedom [flags] <html>\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.outPath, "out", "", "Output file (default stdout)")
	flag.StringVar(&opts.tocTarget, "toc-target", "", "Selector of the TOC container; empty disables TOC generation")
	flag.StringVar(&opts.tocHeadings, "toc-headings", "", "Heading selector for the TOC (default \"h1, h2\")")
	flag.StringVar(&opts.pdfParent, "pdf-parent", "", "Selector of the container receiving embedded PDF pages")
	flag.StringVar(&opts.pdfSrc, "pdf-src", "", "URL of the PDF to expand into page images")
	flag.StringVar(&opts.markdown, "markdown", "", "Selector of elements whose text is rendered as markdown")
	flag.BoolVar(&opts.runScripts, "scripts", false, "Execute embedded "+scripting.ScriptType+" scripts")
	flag.Parse()

	if flag.NArg() != 1 {
		return opts, fmt.Errorf("expected exactly one input file")
	}
	opts.htmlPath = flag.Arg(0)
	if (opts.pdfParent == "") != (opts.pdfSrc == "") {
		return opts, fmt.Errorf("-pdf-parent and -pdf-src must be used together")
	}
	return opts, nil
}

func run(opts options) error {
	doc, err := dom.ParseFile(opts.htmlPath)
	if err != nil {
		return err
	}

	pipeline := transform.NewPipeline()
	if opts.markdown != "" {
		pipeline.Register(&transform.MarkdownTransform{Selector: opts.markdown})
	}
	if opts.tocTarget != "" {
		pipeline.Register(&transform.TOCTransform{Target: opts.tocTarget, Headings: opts.tocHeadings})
	}
	if opts.pdfParent != "" {
		pipeline.Register(&transform.PDFTransform{Parent: opts.pdfParent, Src: opts.pdfSrc})
	}
	if opts.runScripts {
		pipeline.Register(scripting.NewScriptRunner(scripting.NewEngine(), nil))
	}

	if err := pipeline.Run(context.Background(), doc); err != nil {
		return err
	}

	out := os.Stdout
	if opts.outPath != "" {
		f, err := os.Create(opts.outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return doc.Render(out)
}
