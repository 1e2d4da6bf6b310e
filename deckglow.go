// Package deckglow provides a fluent API for beautifying slide decks:
// parsing a presentation into a classified page tree and rebuilding it
// on a designed template.
//
// Basic usage:
//
//	out, err := deckglow.New("assets/template.pptx").
//	    Scripts("scripts").
//	    Beautify(ctx, "talk.pptx")
//	if err != nil {
//	    // handle error
//	}
//
// Parsing alone needs no template or tools:
//
//	deck, err := deckglow.ParseFile("talk.pptx")
//
// For advanced use cases, the lower-level pptx, classify, template, and
// beautify packages are also available.
package deckglow

import (
	"context"
	"time"

	"go.uber.org/zap"

	"deckglow/beautify"
	"deckglow/classify"
	"deckglow/model"
	"deckglow/normalize"
	"deckglow/pptx"
	"deckglow/template"
)

// Beautifier provides a fluent interface for deck beautification. Each
// configuration method returns a new Beautifier instance, making it safe
// for concurrent use and allowing method chaining.
type Beautifier struct {
	templatePath string
	options      beautifyOptions
}

// New creates a Beautifier for the given template document. Validation
// happens at the terminal operations, so chains never fail mid-way.
func New(templatePath string) *Beautifier {
	return &Beautifier{
		templatePath: templatePath,
		options:      defaultOptions(),
	}
}

// clone copies the Beautifier with its options deep-copied.
func (b *Beautifier) clone() *Beautifier {
	return &Beautifier{
		templatePath: b.templatePath,
		options:      b.options.clone(),
	}
}

// Scripts sets the directory holding the rearrange, inventory, and
// replace scripts.
func (b *Beautifier) Scripts(dir string) *Beautifier {
	nb := b.clone()
	nb.options.scriptsDir = dir
	return nb
}

// Python sets the interpreter used to run the scripts.
func (b *Beautifier) Python(bin string) *Beautifier {
	nb := b.clone()
	nb.options.python = bin
	return nb
}

// Timeout bounds each external tool invocation.
func (b *Beautifier) Timeout(d time.Duration) *Beautifier {
	nb := b.clone()
	nb.options.timeout = d
	return nb
}

// WorkDir sets where per-run scratch directories are created.
func (b *Beautifier) WorkDir(dir string) *Beautifier {
	nb := b.clone()
	nb.options.workDir = dir
	return nb
}

// Keywords overlays custom keyword tables on the classifier defaults.
func (b *Beautifier) Keywords(k classify.Keywords) *Beautifier {
	nb := b.clone()
	nb.options.keywords = k
	return nb.clone() // deep-copy the caller's maps too
}

// Pools overrides the label-to-template-page pools.
func (b *Beautifier) Pools(p template.Pools) *Beautifier {
	nb := b.clone()
	nb.options.pools = p
	return nb.clone()
}

// Tools replaces the script-based tools, mainly for tests.
func (b *Beautifier) Tools(t beautify.Tools) *Beautifier {
	nb := b.clone()
	nb.options.tools = t
	return nb
}

// Logger sets the structured logger used by the pipeline.
func (b *Beautifier) Logger(log *zap.Logger) *Beautifier {
	nb := b.clone()
	nb.options.logger = log
	return nb
}

// pipeline assembles the configured beautify.Pipeline.
func (b *Beautifier) pipeline() (*beautify.Pipeline, error) {
	tools := b.options.tools
	if tools == nil {
		tools = &beautify.ScriptTools{
			Python:  b.options.python,
			Dir:     b.options.scriptsDir,
			Timeout: b.options.timeout,
		}
	}

	var classifier *classify.Classifier
	if b.options.keywords != nil {
		classifier = classify.NewWithKeywords(b.options.keywords)
	}
	var selector *template.Selector
	if b.options.pools != nil {
		selector = template.NewSelector(b.options.pools)
	}

	return beautify.New(beautify.Config{
		Tools:        tools,
		TemplatePath: b.templatePath,
		WorkDir:      b.options.workDir,
		Classifier:   classifier,
		Selector:     selector,
		Logger:       b.options.logger,
	})
}

// Beautify runs the full pipeline on the document at path and returns
// the path of the beautified output file.
func (b *Beautifier) Beautify(ctx context.Context, path string) (string, error) {
	p, err := b.pipeline()
	if err != nil {
		return "", err
	}
	return p.Run(ctx, path)
}

// Parse reads and classifies the document at path. It does not touch the
// template or the external tools.
func (b *Beautifier) Parse(path string) (*model.Deck, error) {
	classifier := classify.New()
	if b.options.keywords != nil {
		classifier = classify.NewWithKeywords(b.options.keywords)
	}
	return parseWith(classifier, path)
}

// ParseFile reads and classifies a document with the default classifier.
func ParseFile(path string) (*model.Deck, error) {
	return parseWith(classify.New(), path)
}

func parseWith(classifier *classify.Classifier, path string) (*model.Deck, error) {
	r, err := pptx.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	deck := normalize.Deck(r)
	meta := deck.Meta()
	for _, page := range deck.Pages {
		page.SlideType = classifier.Classify(page, meta)
	}
	return deck, nil
}
