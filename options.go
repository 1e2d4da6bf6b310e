package deckglow

import (
	"time"

	"go.uber.org/zap"

	"deckglow/beautify"
	"deckglow/classify"
	"deckglow/template"
)

// beautifyOptions holds the configuration accumulated by the fluent chain.
type beautifyOptions struct {
	scriptsDir string
	python     string
	timeout    time.Duration
	workDir    string

	keywords classify.Keywords
	pools    template.Pools

	tools  beautify.Tools
	logger *zap.Logger
}

// defaultOptions returns the default beautifier configuration.
func defaultOptions() beautifyOptions {
	return beautifyOptions{
		scriptsDir: "scripts",
		python:     "python",
		timeout:    60 * time.Second,
	}
}

// clone creates a copy of beautifyOptions with the map-typed fields
// deep-copied, so chained configuration never aliases.
func (o beautifyOptions) clone() beautifyOptions {
	newOpts := o
	if o.keywords != nil {
		newOpts.keywords = make(classify.Keywords, len(o.keywords))
		for c, words := range o.keywords {
			newOpts.keywords[c] = append([]string(nil), words...)
		}
	}
	if o.pools != nil {
		newOpts.pools = make(template.Pools, len(o.pools))
		for label, pool := range o.pools {
			newOpts.pools[label] = append([]int(nil), pool...)
		}
	}
	return newOpts
}
