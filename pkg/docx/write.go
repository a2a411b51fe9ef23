package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

const (
	pageWidth  = 11906
	pageHeight = 16838

	// bulletNumID references the single bullet list in numbering.xml.
	bulletNumID = 1

	// First relationship id available to images; rId1 and rId2 are styles
	// and numbering.
	firstMediaRel = 3
)

const documentNamespaces = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
	`xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing" ` +
	`xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
	`xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture"`

type mediaPart struct {
	relID  string
	name   string
	format ImageFormat
	data   []byte
}

type bodyWriter struct {
	doc   *Document
	buf   bytes.Buffer
	media []mediaPart
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func renderBody(d *Document) ([]byte, []mediaPart, error) {
	w := &bodyWriter{doc: d}
	w.buf.WriteString(xml.Header)
	w.buf.WriteString(`<w:document ` + documentNamespaces + `><w:body>`)
	for i, b := range d.Body {
		switch v := b.(type) {
		case Paragraph:
			w.paragraph(v)
		case Table:
			w.table(v)
		default:
			return nil, nil, fmt.Errorf("body block %d: unsupported type %T", i, b)
		}
	}
	w.sectionProps()
	w.buf.WriteString(`</w:body></w:document>`)
	return w.buf.Bytes(), w.media, nil
}

func (w *bodyWriter) paragraph(p Paragraph) {
	w.buf.WriteString("<w:p>")
	w.paragraphProps(p)
	if p.Image != nil {
		w.image(*p.Image)
	}
	for _, r := range p.Runs {
		w.run(r)
	}
	w.buf.WriteString("</w:p>")
}

func (w *bodyWriter) paragraphProps(p Paragraph) {
	var props strings.Builder
	if p.Style != "" {
		fmt.Fprintf(&props, `<w:pStyle w:val="%s"/>`, escape(p.Style))
	}
	if p.Bullet {
		fmt.Fprintf(&props, `<w:numPr><w:ilvl w:val="0"/><w:numId w:val="%d"/></w:numPr>`, bulletNumID)
	}
	if p.BottomBorder != nil {
		props.WriteString(`<w:pBdr>`)
		props.WriteString(borderXML("bottom", *p.BottomBorder))
		props.WriteString(`</w:pBdr>`)
	}
	if p.Spacing != nil {
		fmt.Fprintf(&props, `<w:spacing w:before="%d" w:after="%d"/>`, p.Spacing.Before, p.Spacing.After)
	}
	if p.Alignment != "" {
		fmt.Fprintf(&props, `<w:jc w:val="%s"/>`, p.Alignment)
	}
	if props.Len() == 0 {
		return
	}
	w.buf.WriteString("<w:pPr>")
	w.buf.WriteString(props.String())
	w.buf.WriteString("</w:pPr>")
}

func runProps(font string, bold, italic bool, color string, size int) string {
	var b strings.Builder
	if font != "" {
		f := escape(font)
		fmt.Fprintf(&b, `<w:rFonts w:ascii="%s" w:hAnsi="%s" w:eastAsia="%s" w:cs="%s"/>`, f, f, f, f)
	}
	if bold {
		b.WriteString(`<w:b/><w:bCs/>`)
	}
	if italic {
		b.WriteString(`<w:i/><w:iCs/>`)
	}
	if color != "" {
		fmt.Fprintf(&b, `<w:color w:val="%s"/>`, escape(color))
	}
	if size > 0 {
		fmt.Fprintf(&b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, size, size)
	}
	return b.String()
}

func (w *bodyWriter) run(r Run) {
	w.buf.WriteString("<w:r>")
	if props := runProps(r.Font, r.Bold, r.Italic, r.Color, r.Size); props != "" {
		w.buf.WriteString("<w:rPr>" + props + "</w:rPr>")
	}
	w.buf.WriteString(`<w:t xml:space="preserve">`)
	w.buf.WriteString(escape(r.Text))
	w.buf.WriteString(`</w:t>`)
	if r.Break {
		w.buf.WriteString(`<w:br/>`)
	}
	w.buf.WriteString("</w:r>")
}

func (w *bodyWriter) image(img Image) {
	n := len(w.media) + 1
	m := mediaPart{
		relID:  fmt.Sprintf("rId%d", firstMediaRel+len(w.media)),
		name:   fmt.Sprintf("image%d.%s", n, img.Format),
		format: img.Format,
		data:   img.Data,
	}
	w.media = append(w.media, m)

	cx, cy := PixelsToEMU(img.Width), PixelsToEMU(img.Height)
	fmt.Fprintf(&w.buf, `<w:r><w:drawing><wp:inline distT="0" distB="0" distL="0" distR="0">`+
		`<wp:extent cx="%d" cy="%d"/><wp:effectExtent l="0" t="0" r="0" b="0"/>`+
		`<wp:docPr id="%d" name="Picture %d"/>`+
		`<wp:cNvGraphicFramePr><a:graphicFrameLocks noChangeAspect="1"/></wp:cNvGraphicFramePr>`+
		`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">`+
		`<pic:pic><pic:nvPicPr><pic:cNvPr id="%d" name="%s"/><pic:cNvPicPr/></pic:nvPicPr>`+
		`<pic:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`+
		`<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr></pic:pic>`+
		`</a:graphicData></a:graphic></wp:inline></w:drawing></w:r>`,
		cx, cy, n, n, n, m.name, m.relID, cx, cy)
}

func borderXML(edge string, b Border) string {
	style := b.Style
	if style == "" {
		style = BorderNone
	}
	color := b.Color
	if color == "" {
		color = "auto"
	}
	return fmt.Sprintf(`<w:%s w:val="%s" w:sz="%d" w:space="%d" w:color="%s"/>`, edge, style, b.Size, b.Space, escape(color))
}

func (w *bodyWriter) table(t Table) {
	cols := 1
	for _, r := range t.Rows {
		if len(r.Cells) > cols {
			cols = len(r.Cells)
		}
	}
	pct := t.WidthPercent
	if pct <= 0 {
		pct = 100
	}
	textWidth := pageWidth - w.doc.Margins.Left - w.doc.Margins.Right
	colWidth := textWidth * pct / 100 / cols
	cellPct := pct * 50 / cols

	w.buf.WriteString("<w:tbl><w:tblPr>")
	fmt.Fprintf(&w.buf, `<w:tblW w:w="%d" w:type="pct"/>`, pct*50)
	w.buf.WriteString("<w:tblBorders>")
	w.buf.WriteString(borderXML("top", t.Borders.Top))
	w.buf.WriteString(borderXML("left", t.Borders.Left))
	w.buf.WriteString(borderXML("bottom", t.Borders.Bottom))
	w.buf.WriteString(borderXML("right", t.Borders.Right))
	w.buf.WriteString(borderXML("insideH", t.Borders.InsideH))
	w.buf.WriteString(borderXML("insideV", t.Borders.InsideV))
	w.buf.WriteString("</w:tblBorders>")
	if t.CellMargin > 0 {
		m := t.CellMargin
		fmt.Fprintf(&w.buf, `<w:tblCellMar><w:top w:w="%d" w:type="dxa"/><w:left w:w="%d" w:type="dxa"/>`+
			`<w:bottom w:w="%d" w:type="dxa"/><w:right w:w="%d" w:type="dxa"/></w:tblCellMar>`, m, m, m, m)
	}
	w.buf.WriteString("</w:tblPr><w:tblGrid>")
	for i := 0; i < cols; i++ {
		fmt.Fprintf(&w.buf, `<w:gridCol w:w="%d"/>`, colWidth)
	}
	w.buf.WriteString("</w:tblGrid>")

	for _, r := range t.Rows {
		w.buf.WriteString("<w:tr>")
		for _, c := range r.Cells {
			fmt.Fprintf(&w.buf, `<w:tc><w:tcPr><w:tcW w:w="%d" w:type="pct"/></w:tcPr>`, cellPct)
			if len(c.Paragraphs) == 0 {
				// A cell must end with a paragraph.
				w.buf.WriteString("<w:p/>")
			}
			for _, p := range c.Paragraphs {
				w.paragraph(p)
			}
			w.buf.WriteString("</w:tc>")
		}
		w.buf.WriteString("</w:tr>")
	}
	w.buf.WriteString("</w:tbl>")
}

func (w *bodyWriter) sectionProps() {
	m := w.doc.Margins
	fmt.Fprintf(&w.buf, `<w:sectPr><w:pgSz w:w="%d" w:h="%d"/>`+
		`<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="708" w:footer="708" w:gutter="0"/>`+
		`<w:cols w:space="708"/></w:sectPr>`,
		pageWidth, pageHeight, m.Top, m.Right, m.Bottom, m.Left)
}
