package beautify

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Tools is the capability surface for the three external document tools.
// The pipeline depends on this interface so it can run against fakes.
type Tools interface {
	// Rearrange copies src to dst with its pages reordered and duplicated
	// according to seq, whose entries are 0-based page indices into src.
	Rearrange(ctx context.Context, src, dst string, seq []int) error

	// Inventory writes a JSON description of doc's shapes to outJSON.
	Inventory(ctx context.Context, doc, outJSON string) error

	// Replace applies the replacement instructions in replJSON to doc and
	// writes the result to out.
	Replace(ctx context.Context, doc, replJSON, out string) error
}

// Script filenames looked up under the scripts directory.
const (
	rearrangeScript = "rearrange.py"
	inventoryScript = "inventory.py"
	replaceScript   = "replace.py"
)

// ScriptTools runs the external tools as Python scripts via os/exec.
type ScriptTools struct {
	// Python is the interpreter binary, "python" if empty.
	Python string

	// Dir is the directory holding the three scripts.
	Dir string

	// Timeout bounds each invocation. Zero means no bound beyond the
	// caller's context.
	Timeout time.Duration
}

// Check verifies the scripts directory exists and contains all three
// scripts. Intended for startup validation so misconfiguration surfaces
// before any request work.
func (t *ScriptTools) Check() error {
	info, err := os.Stat(t.Dir)
	if err != nil {
		return fmt.Errorf("scripts directory %s: %w", t.Dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("scripts directory %s: not a directory", t.Dir)
	}
	for _, name := range []string{rearrangeScript, inventoryScript, replaceScript} {
		if _, err := os.Stat(filepath.Join(t.Dir, name)); err != nil {
			return fmt.Errorf("script %s: %w", name, err)
		}
	}
	return nil
}

func (t *ScriptTools) Rearrange(ctx context.Context, src, dst string, seq []int) error {
	parts := make([]string, len(seq))
	for i, n := range seq {
		parts[i] = strconv.Itoa(n)
	}
	return t.run(ctx, rearrangeScript, src, dst, strings.Join(parts, ","))
}

func (t *ScriptTools) Inventory(ctx context.Context, doc, outJSON string) error {
	return t.run(ctx, inventoryScript, doc, outJSON)
}

func (t *ScriptTools) Replace(ctx context.Context, doc, replJSON, out string) error {
	return t.run(ctx, replaceScript, doc, replJSON, out)
}

// run invokes one script and turns a non-zero exit into an error carrying
// the script name and its stderr output.
func (t *ScriptTools) run(ctx context.Context, script string, args ...string) error {
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	python := t.Python
	if python == "" {
		python = "python"
	}

	cmd := exec.CommandContext(ctx, python, append([]string{filepath.Join(t.Dir, script)}, args...)...)
	cmd.WaitDelay = 5 * time.Second

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", script, ctxErr)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", script, err, msg)
		}
		return fmt.Errorf("%s: %w", script, err)
	}
	return nil
}
