// Package beautify orchestrates the full beautification flow: parse the
// user's document, classify its pages, pick and rearrange template pages,
// and carry the user's text onto the rearranged template through the
// external document tools.
package beautify

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"deckglow/classify"
	"deckglow/model"
	"deckglow/normalize"
	"deckglow/pptx"
	"deckglow/replace"
	"deckglow/template"
)

// Config assembles a Pipeline. Tools and TemplatePath are required;
// everything else has a usable zero-value default.
type Config struct {
	// Tools runs the external rearrange, inventory, and replace steps.
	Tools Tools

	// TemplatePath is the template document whose pages are rearranged.
	TemplatePath string

	// WorkDir is where per-request scratch directories are created.
	// Empty means the system temp directory.
	WorkDir string

	// Classifier labels pages. Nil means the default rule set.
	Classifier *classify.Classifier

	// Selector maps labels to template pages. Nil means the default pools.
	Selector *template.Selector

	Logger *zap.Logger
}

// Pipeline runs beautification requests. Safe for concurrent use: each
// run works in its own scratch directory.
type Pipeline struct {
	tools        Tools
	templatePath string
	workDir      string
	classifier   *classify.Classifier
	selector     *template.Selector
	log          *zap.Logger
}

// New validates cfg and builds a Pipeline. The template file must exist;
// tools exposing a Check method are validated up front as well.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Tools == nil {
		return nil, fmt.Errorf("beautify: no tools configured")
	}
	if cfg.TemplatePath == "" {
		return nil, fmt.Errorf("beautify: no template path configured")
	}
	if _, err := os.Stat(cfg.TemplatePath); err != nil {
		return nil, fmt.Errorf("beautify: template file: %w", err)
	}
	if c, ok := cfg.Tools.(interface{ Check() error }); ok {
		if err := c.Check(); err != nil {
			return nil, fmt.Errorf("beautify: %w", err)
		}
	}

	p := &Pipeline{
		tools:        cfg.Tools,
		templatePath: cfg.TemplatePath,
		workDir:      cfg.WorkDir,
		classifier:   cfg.Classifier,
		selector:     cfg.Selector,
		log:          cfg.Logger,
	}
	if p.classifier == nil {
		p.classifier = classify.New()
	}
	if p.selector == nil {
		p.selector = template.NewSelector(template.DefaultPools())
	}
	if p.log == nil {
		p.log = zap.NewNop()
	}
	return p, nil
}

// Parse reads the document at path and returns the normalized deck with
// every page classified.
func (p *Pipeline) Parse(path string) (*model.Deck, error) {
	r, err := pptx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer r.Close()

	deck := normalize.Deck(r)
	meta := deck.Meta()
	for _, page := range deck.Pages {
		page.SlideType = p.classifier.Classify(page, meta)
	}
	return deck, nil
}

// Run beautifies the document at userPath and returns the path of the
// produced file. The output lives in a per-run scratch directory; the
// caller owns it and should remove it (or its directory) when done.
// Intermediate artifacts are removed before Run returns.
func (p *Pipeline) Run(ctx context.Context, userPath string) (string, error) {
	runID := uuid.NewString()
	log := p.log.With(zap.String("run_id", runID))

	dir := p.workDir
	if dir == "" {
		dir = os.TempDir()
	}
	scratch := filepath.Join(dir, "beautify-"+runID)
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return "", fmt.Errorf("scratch dir: %w", err)
	}

	working := filepath.Join(scratch, "working.pptx")
	inventoryJSON := filepath.Join(scratch, "inventory.json")
	replacementJSON := filepath.Join(scratch, "replacement.json")
	output := filepath.Join(scratch, "output.pptx")

	// On failure the whole scratch dir goes; on success only the
	// intermediates, leaving the output for the caller.
	ok := false
	defer func() {
		if !ok {
			os.RemoveAll(scratch)
			return
		}
		for _, f := range []string{working, inventoryJSON, replacementJSON} {
			os.Remove(f)
		}
	}()

	deck, err := p.Parse(userPath)
	if err != nil {
		return "", err
	}
	log.Info("parsed user document",
		zap.Int("pages", deck.PageCount()),
		zap.String("step", "1/6"))

	seq := p.selector.Sequence(deck.Pages)
	for i, page := range deck.Pages {
		log.Debug("selected template page",
			zap.Int("page", i),
			zap.String("slide_type", string(page.SlideType)),
			zap.Int("template_page", seq[i]))
	}
	log.Info("selected template sequence",
		zap.Ints("sequence", seq),
		zap.String("step", "2/6"))

	if err := p.tools.Rearrange(ctx, p.templatePath, working, seq); err != nil {
		return "", fmt.Errorf("rearrange: %w", err)
	}
	log.Info("rearranged template", zap.String("step", "3/6"))

	if err := p.tools.Inventory(ctx, working, inventoryJSON); err != nil {
		return "", fmt.Errorf("inventory: %w", err)
	}
	inv, err := template.LoadInventory(inventoryJSON)
	if err != nil {
		return "", fmt.Errorf("inventory: %w", err)
	}
	log.Info("extracted template inventory",
		zap.Int("slides", len(inv)),
		zap.String("step", "4/6"))

	repl := replace.Generate(deck.Pages, inv)
	data, err := json.MarshalIndent(repl, "", "  ")
	if err != nil {
		return "", fmt.Errorf("replacement: %w", err)
	}
	if err := os.WriteFile(replacementJSON, data, 0o644); err != nil {
		return "", fmt.Errorf("replacement: %w", err)
	}
	log.Info("generated replacement instructions",
		zap.Int("slides", len(repl)),
		zap.String("step", "5/6"))

	if err := p.tools.Replace(ctx, working, replacementJSON, output); err != nil {
		return "", fmt.Errorf("replace: %w", err)
	}
	log.Info("beautified document ready",
		zap.String("output", output),
		zap.String("step", "6/6"))

	ok = true
	return output, nil
}
