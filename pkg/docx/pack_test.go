package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG.
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0b, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x60, 0x00, 0x02, 0x00,
	0x00, 0x05, 0x00, 0x01, 0x7a, 0x5e, 0xab, 0x3f, 0x00, 0x00, 0x00, 0x00,
	0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func unpack(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		parts[f.Name] = string(b)
	}
	return parts
}

func assertWellFormed(t *testing.T, name, content string) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader([]byte(content)))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		require.NoError(t, err, "part %s is not well-formed XML", name)
	}
}

func sampleDocument() *Document {
	doc := New()
	doc.Title = "Jane Doe"
	doc.Margins = UniformMargins(InchesToTwip(0.5))
	doc.Defaults = RunDefaults{Font: "Arial", Size: 20}
	doc.Add(
		Paragraph{
			Alignment: AlignCenter,
			Spacing:   &Spacing{After: 200},
			Runs:      []Run{{Text: "Jane & Doe", Bold: true, Size: 36, Color: "2E74B5", Font: "Calibri"}},
		},
		Table{
			WidthPercent: 100,
			CellMargin:   100,
			Borders:      UniformTableBorders(Border{Style: BorderSingle, Size: 1, Color: "333333"}),
			Rows: []TableRow{{Cells: []TableCell{
				{Paragraphs: []Paragraph{{Runs: []Run{{Text: "jane@example.com", Break: true}, {Text: "555-0100"}}}}},
				{},
			}}},
		},
		Paragraph{Bullet: true, Runs: []Run{{Text: "Go"}}},
		Paragraph{
			Style:        HeadingStyleID,
			BottomBorder: &Border{Style: BorderSingle, Size: 6, Space: 1, Color: "7F7F7F"},
			Runs:         []Run{{Text: "EDUCATION"}},
		},
	)
	return doc
}

func TestPack_ContainsRequiredParts(t *testing.T) {
	data, err := Pack(sampleDocument())
	require.NoError(t, err)

	parts := unpack(t, data)
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"word/document.xml",
		"word/styles.xml",
		"word/numbering.xml",
		"word/_rels/document.xml.rels",
	} {
		content, ok := parts[name]
		require.True(t, ok, "missing part %s", name)
		assertWellFormed(t, name, content)
	}
}

func TestPack_DocumentBody(t *testing.T) {
	data, err := Pack(sampleDocument())
	require.NoError(t, err)
	body := unpack(t, data)["word/document.xml"]

	assert.Contains(t, body, `<w:pgMar w:top="720" w:right="720" w:bottom="720" w:left="720"`)
	assert.Contains(t, body, `<w:jc w:val="center"/>`)
	assert.Contains(t, body, `Jane &amp; Doe`)
	assert.Contains(t, body, `<w:b/><w:bCs/>`)
	assert.Contains(t, body, `<w:color w:val="2E74B5"/><w:sz w:val="36"/>`)
	assert.Contains(t, body, `<w:tblW w:w="5000" w:type="pct"/>`)
	assert.Contains(t, body, `<w:top w:val="single" w:sz="1" w:space="0" w:color="333333"/>`)
	assert.Contains(t, body, `jane@example.com</w:t><w:br/>`)
	assert.Contains(t, body, `<w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr>`)
	assert.Contains(t, body, `<w:pStyle w:val="Heading1"/>`)
	assert.Contains(t, body, `<w:pBdr><w:bottom w:val="single" w:sz="6" w:space="1" w:color="7F7F7F"/></w:pBdr>`)
	// empty cell still carries a paragraph
	assert.Contains(t, body, `<w:tc><w:tcPr><w:tcW w:w="2500" w:type="pct"/></w:tcPr><w:p/></w:tc>`)
}

func TestPack_StylesCarryDefaults(t *testing.T) {
	data, err := Pack(sampleDocument())
	require.NoError(t, err)
	styles := unpack(t, data)["word/styles.xml"]

	assert.Contains(t, styles, `<w:rFonts w:ascii="Arial" w:hAnsi="Arial" w:eastAsia="Arial" w:cs="Arial"/><w:sz w:val="20"/>`)
	assert.Contains(t, styles, `w:styleId="Heading1"`)
}

func TestPack_EmbedsImage(t *testing.T) {
	doc := New()
	doc.Add(Paragraph{Image: &Image{Data: tinyPNG, Format: ImagePNG, Width: 100, Height: 100}})

	data, err := Pack(doc)
	require.NoError(t, err)
	parts := unpack(t, data)

	assert.Equal(t, string(tinyPNG), parts["word/media/image1.png"])
	assert.Contains(t, parts["[Content_Types].xml"], `<Default Extension="png" ContentType="image/png"/>`)
	assert.Contains(t, parts["word/_rels/document.xml.rels"], `Id="rId3"`)
	assert.Contains(t, parts["word/_rels/document.xml.rels"], `Target="media/image1.png"`)
	assert.Contains(t, parts["word/document.xml"], `<wp:extent cx="952500" cy="952500"/>`)
	assert.Contains(t, parts["word/document.xml"], `<a:blip r:embed="rId3"/>`)
	assertWellFormed(t, "word/document.xml", parts["word/document.xml"])
}

func TestPack_RejectsBadImages(t *testing.T) {
	tests := []struct {
		name string
		img  Image
		want error
	}{
		{"unknown format", Image{Data: tinyPNG, Format: "bmp", Width: 1, Height: 1}, ErrUnsupportedImage},
		{"zero width", Image{Data: tinyPNG, Format: ImagePNG, Width: 0, Height: 1}, ErrInvalidImageBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New()
			img := tt.img
			doc.Add(Paragraph{Image: &img})
			_, err := Pack(doc)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPack_NilDocument(t *testing.T) {
	_, err := Pack(nil)
	assert.ErrorIs(t, err, ErrNilDocument)
}

func TestPack_IsDeterministic(t *testing.T) {
	first, err := Pack(sampleDocument())
	require.NoError(t, err)
	second, err := Pack(sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestInchesToTwip(t *testing.T) {
	assert.Equal(t, 720, InchesToTwip(0.5))
	assert.Equal(t, 1440, InchesToTwip(1))
}

func TestParagraphText(t *testing.T) {
	p := Paragraph{Runs: []Run{{Text: "Engineer"}, {Text: " | Acme"}}}
	assert.Equal(t, "Engineer | Acme", p.Text())
}
