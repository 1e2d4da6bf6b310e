package beautify

import (
	"archive/zip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckglow/model"
	"deckglow/replace"
)

// fakeTools records the pipeline's tool invocations and simulates the
// external scripts by copying files and emitting a canned inventory.
type fakeTools struct {
	inventory map[string]map[string]map[string]string

	rearrangeSeq []int
	rearrangeSrc string
	replaceRepl  replace.Replacement

	failStep string
}

func (f *fakeTools) Rearrange(_ context.Context, src, dst string, seq []int) error {
	if f.failStep == "rearrange" {
		return errors.New("rearrange blew up")
	}
	f.rearrangeSrc = src
	f.rearrangeSeq = append([]int(nil), seq...)
	return os.WriteFile(dst, []byte("working"), 0o644)
}

func (f *fakeTools) Inventory(_ context.Context, doc, outJSON string) error {
	if f.failStep == "inventory" {
		return errors.New("inventory blew up")
	}
	if _, err := os.Stat(doc); err != nil {
		return fmt.Errorf("working document missing: %w", err)
	}
	data, err := json.Marshal(f.inventory)
	if err != nil {
		return err
	}
	return os.WriteFile(outJSON, data, 0o644)
}

func (f *fakeTools) Replace(_ context.Context, doc, replJSON, out string) error {
	if f.failStep == "replace" {
		return errors.New("replace blew up")
	}
	if _, err := os.Stat(doc); err != nil {
		return fmt.Errorf("working document missing: %w", err)
	}
	data, err := os.ReadFile(replJSON)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &f.replaceRepl); err != nil {
		return err
	}
	return os.WriteFile(out, []byte("beautified"), 0o644)
}

// writeUserPPTX builds a minimal two-slide document: a short cover page
// and a bulleted content page.
func writeUserPPTX(t *testing.T) string {
	t.Helper()

	name := filepath.Join(t.TempDir(), "user.pptx")
	f, err := os.Create(name)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	add := func(part, content string) {
		w, err := zw.Create(part)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}

	add("[Content_Types].xml", `<?xml version="1.0"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>
</Types>`)
	add("ppt/presentation.xml", `<?xml version="1.0"?>
<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:sldSz cx="9144000" cy="6858000"/>
</p:presentation>`)

	slide := func(shapes string) string {
		return `<?xml version="1.0"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><p:spTree>` + shapes + `</p:spTree></p:cSld>
</p:sld>`
	}
	shape := func(name, text string) string {
		var paras strings.Builder
		for _, line := range strings.Split(text, "\n") {
			paras.WriteString(`<a:p><a:r><a:t>` + line + `</a:t></a:r></a:p>`)
		}
		return `<p:sp>
  <p:nvSpPr><p:cNvPr id="2" name="` + name + `"/><p:nvPr><p:ph type="body"/></p:nvPr></p:nvSpPr>
  <p:spPr><a:xfrm><a:off x="914400" y="914400"/><a:ext cx="6096000" cy="1828800"/></a:xfrm></p:spPr>
  <p:txBody><a:bodyPr/>` + paras.String() + `</p:txBody>
</p:sp>`
	}

	add("ppt/slides/slide1.xml", slide(shape("Title 1", "Launch Plan")))
	add("ppt/slides/slide2.xml", slide(
		shape("Title 2", "Milestones")+
			shape("Body 2", "• Kickoff and team alignment\n• Build the core features\n• Ship the beta to customers")))

	require.NoError(t, zw.Close())
	return name
}

func writeTemplate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.pptx")
	require.NoError(t, os.WriteFile(path, []byte("template"), 0o644))
	return path
}

func defaultInventory() map[string]map[string]map[string]string {
	return map[string]map[string]map[string]string{
		"slide-0": {
			"shape-0": {"name": "Title 1", "shape_type": "PLACEHOLDER", "placeholder_type": "CENTER_TITLE"},
		},
		"slide-1": {
			"shape-0": {"name": "Title 1", "shape_type": "PLACEHOLDER", "placeholder_type": "TITLE"},
			"shape-1": {"name": "Content 2", "shape_type": "PLACEHOLDER", "placeholder_type": "BODY"},
		},
	}
}

func TestNewValidation(t *testing.T) {
	tmpl := writeTemplate(t)

	_, err := New(Config{TemplatePath: tmpl})
	assert.ErrorContains(t, err, "no tools")

	_, err = New(Config{Tools: &fakeTools{}})
	assert.ErrorContains(t, err, "no template path")

	_, err = New(Config{Tools: &fakeTools{}, TemplatePath: filepath.Join(t.TempDir(), "nope.pptx")})
	assert.ErrorContains(t, err, "template file")

	_, err = New(Config{Tools: &fakeTools{}, TemplatePath: tmpl})
	assert.NoError(t, err)
}

func TestNewChecksScriptTools(t *testing.T) {
	tools := &ScriptTools{Dir: filepath.Join(t.TempDir(), "missing")}
	_, err := New(Config{Tools: tools, TemplatePath: writeTemplate(t)})
	assert.ErrorContains(t, err, "scripts directory")
}

func TestParseClassifiesPages(t *testing.T) {
	p, err := New(Config{Tools: &fakeTools{}, TemplatePath: writeTemplate(t)})
	require.NoError(t, err)

	deck, err := p.Parse(writeUserPPTX(t))
	require.NoError(t, err)
	require.Equal(t, 2, deck.PageCount())

	assert.Equal(t, model.SlideTitle, deck.Pages[0].SlideType)
	assert.Equal(t, model.SlideContentBullets, deck.Pages[1].SlideType)
}

func TestRunHappyPath(t *testing.T) {
	tools := &fakeTools{inventory: defaultInventory()}
	tmpl := writeTemplate(t)
	work := t.TempDir()

	p, err := New(Config{Tools: tools, TemplatePath: tmpl, WorkDir: work})
	require.NoError(t, err)

	out, err := p.Run(context.Background(), writeUserPPTX(t))
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "beautified", string(data))

	assert.Equal(t, tmpl, tools.rearrangeSrc)
	assert.Equal(t, []int{0, 19}, tools.rearrangeSeq)

	cover := tools.replaceRepl["slide-0"]["shape-0"].Paragraphs
	require.Len(t, cover, 1)
	assert.True(t, cover[0].Bold)
	assert.Equal(t, "CENTER", cover[0].Alignment)

	body := tools.replaceRepl["slide-1"]["shape-1"].Paragraphs
	require.Len(t, body, 3)
	assert.Equal(t, "Kickoff and team alignment", body[0].Text)
	assert.True(t, body[0].Bullet)
}

func TestRunCleansIntermediates(t *testing.T) {
	tools := &fakeTools{inventory: defaultInventory()}
	work := t.TempDir()

	p, err := New(Config{Tools: tools, TemplatePath: writeTemplate(t), WorkDir: work})
	require.NoError(t, err)

	out, err := p.Run(context.Background(), writeUserPPTX(t))
	require.NoError(t, err)

	scratch := filepath.Dir(out)
	entries, err := os.ReadDir(scratch)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "output.pptx", entries[0].Name())
}

func TestRunToolFailureRemovesScratch(t *testing.T) {
	for _, step := range []string{"rearrange", "inventory", "replace"} {
		t.Run(step, func(t *testing.T) {
			tools := &fakeTools{inventory: defaultInventory(), failStep: step}
			work := t.TempDir()

			p, err := New(Config{Tools: tools, TemplatePath: writeTemplate(t), WorkDir: work})
			require.NoError(t, err)

			_, err = p.Run(context.Background(), writeUserPPTX(t))
			require.ErrorContains(t, err, step)

			entries, err := os.ReadDir(work)
			require.NoError(t, err)
			assert.Empty(t, entries, "scratch dir should be removed on failure")
		})
	}
}

func TestRunUnreadableInput(t *testing.T) {
	p, err := New(Config{Tools: &fakeTools{}, TemplatePath: writeTemplate(t), WorkDir: t.TempDir()})
	require.NoError(t, err)

	bad := filepath.Join(t.TempDir(), "not-a-deck.pptx")
	require.NoError(t, os.WriteFile(bad, []byte("plain text"), 0o644))

	_, err = p.Run(context.Background(), bad)
	assert.Error(t, err)
}
