package pptx

import (
	"encoding/xml"
	"io"
)

// UnmarshalXML decodes the shape tree while preserving the document order
// of its children. encoding/xml's struct decoding groups repeated elements
// by field, which would lose the interleaving of shapes, pictures, and
// frames that downstream consumers rely on.
func (t *spTreeXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			var node shapeNodeXML
			switch el.Name.Local {
			case "sp":
				node.Sp = &spXML{}
				err = d.DecodeElement(node.Sp, &el)
			case "pic":
				node.Pic = &picXML{}
				err = d.DecodeElement(node.Pic, &el)
			case "graphicFrame":
				node.Frame = &graphicFrameXML{}
				err = d.DecodeElement(node.Frame, &el)
			case "grpSp":
				node.Grp = &grpSpXML{}
				err = d.DecodeElement(node.Grp, &el)
			case "cxnSp":
				node.Cxn = &cxnSpXML{}
				err = d.DecodeElement(node.Cxn, &el)
			default:
				// Non-shape children (nvGrpSpPr, grpSpPr, extensions).
				err = d.Skip()
				if err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			t.Children = append(t.Children, node)

		case xml.EndElement:
			if el.Name == start.Name {
				return nil
			}
		}
	}
}
