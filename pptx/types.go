// Package pptx provides read access to PPTX (Office Open XML Presentation)
// documents: slide order, slide dimensions, layout names, and per-shape
// geometry, kind, and text content.
package pptx

import "encoding/xml"

// presentationXML represents the ppt/presentation.xml file structure.
type presentationXML struct {
	XMLName     xml.Name        `xml:"presentation"`
	SlideIdList *slideIdListXML `xml:"sldIdLst"`
	SlideSz     *slideSzXML     `xml:"sldSz"`
}

type slideIdListXML struct {
	SlideId []slideIdXML `xml:"sldId"`
}

type slideIdXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"` // r:id attribute for relationship
}

// Slide dimensions carry EMU values. They are parsed as strings and coerced
// defensively so a malformed attribute degrades to 0 instead of failing the
// whole document.
type slideSzXML struct {
	Cx string `xml:"cx,attr"` // Width in EMUs
	Cy string `xml:"cy,attr"` // Height in EMUs
}

// slideXML represents a ppt/slides/slide*.xml file structure.
type slideXML struct {
	XMLName xml.Name `xml:"sld"`
	CSld    cSldXML  `xml:"cSld"`
}

// slideLayoutXML represents a ppt/slideLayouts/slideLayout*.xml file. Only
// the layout name is of interest.
type slideLayoutXML struct {
	XMLName xml.Name `xml:"sldLayout"`
	CSld    cSldXML  `xml:"cSld"`
}

type cSldXML struct {
	Name   string    `xml:"name,attr"`
	SpTree spTreeXML `xml:"spTree"`
}

// spTreeXML represents the shape tree containing all shapes on a slide.
// It carries a custom unmarshaler (see tree.go) so that the document order
// of mixed shape kinds is preserved.
type spTreeXML struct {
	Children []shapeNodeXML
}

// shapeNodeXML is one child of the shape tree. Exactly one of the pointer
// fields is set, according to the element's tag.
type shapeNodeXML struct {
	Sp    *spXML
	Pic   *picXML
	Frame *graphicFrameXML
	Grp   *grpSpXML
	Cxn   *cxnSpXML
}

type cNvPrXML struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// spXML represents a regular shape element.
type spXML struct {
	NvSpPr nvSpPrXML  `xml:"nvSpPr"`
	SpPr   spPrXML    `xml:"spPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type nvSpPrXML struct {
	CNvPr   cNvPrXML   `xml:"cNvPr"`
	CNvSpPr cNvSpPrXML `xml:"cNvSpPr"`
	NvPr    nvPrXML    `xml:"nvPr"`
}

type cNvSpPrXML struct {
	TxBox string `xml:"txBox,attr"` // "1" for plain text boxes
}

type nvPrXML struct {
	Ph        *phXML    `xml:"ph"` // Placeholder info
	VideoFile *struct{} `xml:"videoFile"`
	AudioFile *struct{} `xml:"audioFile"`
}

type phXML struct {
	Type string `xml:"type,attr"` // title, body, subTitle, ctrTitle, etc.
	Idx  string `xml:"idx,attr"`
}

type spPrXML struct {
	Xfrm *xfrmXML `xml:"xfrm"`
}

// xfrmXML holds shape position and extent. All values are EMU strings,
// coerced defensively.
type xfrmXML struct {
	Off *offXML `xml:"off"`
	Ext *extXML `xml:"ext"`
}

type offXML struct {
	X string `xml:"x,attr"`
	Y string `xml:"y,attr"`
}

type extXML struct {
	Cx string `xml:"cx,attr"`
	Cy string `xml:"cy,attr"`
}

// txBodyXML represents text body content.
type txBodyXML struct {
	P []pXML `xml:"p"` // Paragraphs
}

// pXML represents a paragraph.
type pXML struct {
	R   []rXML   `xml:"r"`   // Text runs
	Fld []fldXML `xml:"fld"` // Fields (like slide number)
}

// rXML represents a text run.
type rXML struct {
	T string `xml:"t"` // Text content
}

type fldXML struct {
	Type string `xml:"type,attr"` // slidenum, datetime, etc.
	T    string `xml:"t"`         // Field value
}

// picXML represents a picture or media element.
type picXML struct {
	NvPicPr nvPicPrXML `xml:"nvPicPr"`
	SpPr    spPrXML    `xml:"spPr"`
}

type nvPicPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
	NvPr  nvPrXML  `xml:"nvPr"`
}

// graphicFrameXML represents a graphic frame (tables, charts).
type graphicFrameXML struct {
	NvGraphicFramePr nvGraphicFramePrXML `xml:"nvGraphicFramePr"`
	Xfrm             *xfrmXML            `xml:"xfrm"`
}

type nvGraphicFramePrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
}

// grpSpXML represents a group of shapes. Groups are surfaced as a single
// GROUP shape; their children are not flattened.
type grpSpXML struct {
	NvGrpSpPr nvGrpSpPrXML `xml:"nvGrpSpPr"`
	GrpSpPr   grpSpPrXML   `xml:"grpSpPr"`
}

type nvGrpSpPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
}

type grpSpPrXML struct {
	Xfrm *xfrmXML `xml:"xfrm"`
}

// cxnSpXML represents a connector shape.
type cxnSpXML struct {
	NvCxnSpPr nvCxnSpPrXML `xml:"nvCxnSpPr"`
	SpPr      spPrXML      `xml:"spPr"`
}

type nvCxnSpPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
}

// relationshipsXML represents .rels files.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}
