package pptx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"deckglow/format"
)

// Reader provides access to PPTX document content.
type Reader struct {
	files        map[string]*zip.File
	closer       io.Closer
	presentation *presentationXML
	presRels     *relationshipsXML
	slides       []*Slide
	layoutNames  map[string]string // layout part path -> layout name
}

// Open opens a PPTX file for reading. The returned Reader must be closed
// when done. A file of some other recognizable format is rejected with
// that format named in the error.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	r, err := readerFrom(f, info.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewReader reads a PPTX document from an in-memory or already-open source.
func NewReader(ra io.ReaderAt, size int64) (*Reader, error) {
	return readerFrom(ra, size)
}

func readerFrom(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errNotPPTX(ra, size), err)
	}

	r, err := newReader(zr)
	if err != nil {
		var vErr *validationError
		if errors.As(err, &vErr) {
			return nil, fmt.Errorf("%w: %v", errNotPPTX(ra, size), err)
		}
		return nil, err
	}
	return r, nil
}

// errNotPPTX names what the content actually looks like.
func errNotPPTX(ra io.ReaderAt, size int64) error {
	detected, err := format.DetectFromReader(ra, size)
	if err != nil || detected == format.Unknown || detected == format.PPTX {
		return fmt.Errorf("not a PPTX document")
	}
	return fmt.Errorf("not a PPTX document (detected %s)", detected)
}

func newReader(zr *zip.Reader) (*Reader, error) {
	r := &Reader{
		files:       make(map[string]*zip.File, len(zr.File)),
		layoutNames: make(map[string]string),
	}
	for _, f := range zr.File {
		r.files[f.Name] = f
	}

	if err := r.validate(); err != nil {
		return nil, err
	}
	if err := r.parsePresentation(); err != nil {
		return nil, fmt.Errorf("parsing presentation: %w", err)
	}
	r.parsePresentationRels()
	if err := r.parseSlides(); err != nil {
		return nil, fmt.Errorf("parsing slides: %w", err)
	}
	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// validationError marks structural problems meaning the archive is not a
// usable presentation at all, as opposed to a parse error within one.
type validationError struct{ msg string }

func (e *validationError) Error() string { return e.msg }

// validate checks that required PPTX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"ppt/presentation.xml",
	}
	for _, name := range required {
		if _, ok := r.files[name]; !ok {
			return &validationError{msg: "missing required file: " + name}
		}
	}

	for name := range r.files {
		if isSlidePart(name) {
			return nil
		}
	}
	return &validationError{msg: "no slides found in presentation"}
}

func isSlidePart(name string) bool {
	return strings.HasPrefix(name, "ppt/slides/slide") &&
		strings.HasSuffix(name, ".xml") &&
		!strings.Contains(name, "_rels")
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	f, ok := r.files[name]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parsePresentation parses the main presentation file.
func (r *Reader) parsePresentation() error {
	data, err := r.getFileContent("ppt/presentation.xml")
	if err != nil {
		return err
	}
	r.presentation = &presentationXML{}
	return xml.Unmarshal(data, r.presentation)
}

// parsePresentationRels parses the presentation relationships file, which
// maps slide relationship IDs to slide part paths. Optional.
func (r *Reader) parsePresentationRels() {
	data, err := r.getFileContent("ppt/_rels/presentation.xml.rels")
	if err != nil {
		return
	}
	rels := &relationshipsXML{}
	if xml.Unmarshal(data, rels) == nil {
		r.presRels = rels
	}
}

// slidePaths returns the slide part paths in presentation order. The order
// comes from sldIdLst resolved through the relationships; when either is
// missing the paths fall back to numeric filename order.
func (r *Reader) slidePaths() []string {
	if paths := r.slidePathsFromRels(); len(paths) > 0 {
		return paths
	}

	var paths []string
	for name := range r.files {
		if isSlidePart(name) {
			paths = append(paths, name)
		}
	}
	sort.Slice(paths, func(i, j int) bool {
		return slidePartNumber(paths[i]) < slidePartNumber(paths[j])
	})
	return paths
}

func (r *Reader) slidePathsFromRels() []string {
	if r.presentation.SlideIdList == nil || r.presRels == nil {
		return nil
	}

	targets := make(map[string]string, len(r.presRels.Relationship))
	for _, rel := range r.presRels.Relationship {
		targets[rel.ID] = rel.Target
	}

	var paths []string
	for _, sid := range r.presentation.SlideIdList.SlideId {
		target, ok := targets[sid.RID]
		if !ok {
			continue
		}
		name := resolvePartPath("ppt", target)
		if _, ok := r.files[name]; ok {
			paths = append(paths, name)
		}
	}
	return paths
}

// slidePartNumber extracts the slide number from a path like
// "ppt/slides/slide12.xml".
func slidePartNumber(p string) int {
	name := strings.TrimPrefix(p, "ppt/slides/slide")
	name = strings.TrimSuffix(name, ".xml")
	n, _ := strconv.Atoi(name)
	return n
}

// resolvePartPath resolves a relationship target relative to a base part
// directory, normalizing "../" prefixes.
func resolvePartPath(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}

// parseSlides parses all slide files in presentation order.
func (r *Reader) parseSlides() error {
	paths := r.slidePaths()

	r.slides = make([]*Slide, 0, len(paths))
	for _, slidePath := range paths {
		slide, err := r.parseSlide(slidePath, len(r.slides))
		if err != nil {
			continue // Skip slides that fail to parse
		}
		slide.LayoutName = r.layoutName(slidePath)
		r.slides = append(r.slides, slide)
	}

	if len(r.slides) == 0 {
		return fmt.Errorf("no slides could be parsed")
	}
	return nil
}

// parseSlide parses a single slide file.
func (r *Reader) parseSlide(slidePath string, index int) (*Slide, error) {
	data, err := r.getFileContent(slidePath)
	if err != nil {
		return nil, err
	}

	var sld slideXML
	if err := xml.Unmarshal(data, &sld); err != nil {
		return nil, err
	}

	slide := &Slide{
		Index:  index,
		Shapes: make([]Shape, 0, len(sld.CSld.SpTree.Children)),
	}
	for _, node := range sld.CSld.SpTree.Children {
		slide.Shapes = append(slide.Shapes, buildShape(node))
	}
	return slide, nil
}

// layoutName resolves the layout name for a slide through its
// relationships. Returns "" when the layout cannot be resolved; a missing
// layout never fails the parse.
func (r *Reader) layoutName(slidePath string) string {
	relsPath := path.Join(path.Dir(slidePath), "_rels", path.Base(slidePath)+".rels")
	data, err := r.getFileContent(relsPath)
	if err != nil {
		return ""
	}

	rels := &relationshipsXML{}
	if err := xml.Unmarshal(data, rels); err != nil {
		return ""
	}

	for _, rel := range rels.Relationship {
		if !strings.Contains(rel.Type, "slideLayout") {
			continue
		}
		layoutPath := resolvePartPath(path.Dir(slidePath), rel.Target)
		return r.layoutNameFromPart(layoutPath)
	}
	return ""
}

func (r *Reader) layoutNameFromPart(layoutPath string) string {
	if name, ok := r.layoutNames[layoutPath]; ok {
		return name
	}

	name := ""
	if data, err := r.getFileContent(layoutPath); err == nil {
		var layout slideLayoutXML
		if xml.Unmarshal(data, &layout) == nil {
			name = layout.CSld.Name
		}
	}
	r.layoutNames[layoutPath] = name
	return name
}

// buildShape converts a shape-tree node into the public Shape form.
func buildShape(node shapeNodeXML) Shape {
	switch {
	case node.Sp != nil:
		sp := node.Sp
		shape := Shape{
			Name: sp.NvSpPr.CNvPr.Name,
			Kind: spKind(sp),
		}
		applyXfrm(&shape, sp.SpPr.Xfrm)
		if sp.TxBody != nil {
			shape.HasText = true
			shape.Text = bodyText(sp.TxBody)
		}
		if sp.NvSpPr.NvPr.Ph != nil {
			shape.Placeholder = placeholderType(sp.NvSpPr.NvPr.Ph)
		}
		return shape

	case node.Pic != nil:
		pic := node.Pic
		shape := Shape{
			Name: pic.NvPicPr.CNvPr.Name,
			Kind: picKind(pic),
		}
		applyXfrm(&shape, pic.SpPr.Xfrm)
		return shape

	case node.Frame != nil:
		shape := Shape{
			Name: node.Frame.NvGraphicFramePr.CNvPr.Name,
			Kind: KindGraphicFrame,
		}
		applyXfrm(&shape, node.Frame.Xfrm)
		return shape

	case node.Grp != nil:
		shape := Shape{
			Name: node.Grp.NvGrpSpPr.CNvPr.Name,
			Kind: KindGroup,
		}
		applyXfrm(&shape, node.Grp.GrpSpPr.Xfrm)
		return shape

	case node.Cxn != nil:
		shape := Shape{
			Name: node.Cxn.NvCxnSpPr.CNvPr.Name,
			Kind: KindConnector,
		}
		applyXfrm(&shape, node.Cxn.SpPr.Xfrm)
		return shape
	}
	return Shape{Kind: KindAutoShape}
}

// spKind classifies a regular shape element.
func spKind(sp *spXML) string {
	if sp.NvSpPr.NvPr.Ph != nil {
		return KindPlaceholder
	}
	if sp.NvSpPr.CNvSpPr.TxBox == "1" {
		return KindTextBox
	}
	return KindAutoShape
}

// picKind distinguishes embedded media from plain pictures.
func picKind(pic *picXML) string {
	if pic.NvPicPr.NvPr.VideoFile != nil || pic.NvPicPr.NvPr.AudioFile != nil {
		return KindMedia
	}
	return KindPicture
}

// placeholderType returns the placeholder type token, defaulting to "body"
// when the type attribute is absent (the OOXML default).
func placeholderType(ph *phXML) string {
	if ph.Type == "" {
		return "body"
	}
	return ph.Type
}

// applyXfrm copies geometry onto the shape. Absent or malformed values
// degrade to 0; they never fail the parse.
func applyXfrm(shape *Shape, xfrm *xfrmXML) {
	if xfrm == nil {
		return
	}
	if xfrm.Off != nil {
		shape.Left = safeInt(xfrm.Off.X)
		shape.Top = safeInt(xfrm.Off.Y)
	}
	if xfrm.Ext != nil {
		shape.Width = safeInt(xfrm.Ext.Cx)
		shape.Height = safeInt(xfrm.Ext.Cy)
	}
}

// bodyText joins the text body's paragraph texts with newlines. Runs and
// field values contribute in order within each paragraph.
func bodyText(body *txBodyXML) string {
	var b strings.Builder
	for i, p := range body.P {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, run := range p.R {
			b.WriteString(run.T)
		}
		for _, fld := range p.Fld {
			b.WriteString(fld.T)
		}
	}
	return b.String()
}

// safeInt coerces a numeric attribute string, defaulting to 0 on any
// malformed value.
func safeInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// SlideCount returns the number of slides.
func (r *Reader) SlideCount() int {
	return len(r.slides)
}

// SlideSize returns the slide width and height in EMUs. Malformed or
// missing dimensions are reported as 0.
func (r *Reader) SlideSize() (width, height int) {
	if r.presentation == nil || r.presentation.SlideSz == nil {
		return 0, 0
	}
	return safeInt(r.presentation.SlideSz.Cx), safeInt(r.presentation.SlideSz.Cy)
}

// Slides returns all slides in presentation order.
func (r *Reader) Slides() []*Slide {
	return r.slides
}

// Slide returns the slide at the given index (0-indexed).
func (r *Reader) Slide(index int) (*Slide, error) {
	if index < 0 || index >= len(r.slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(r.slides)-1)
	}
	return r.slides[index], nil
}
