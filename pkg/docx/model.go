package docx

import (
	"math"
	"strings"
)

// Alignment is the horizontal justification of a paragraph.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// BorderStyle is the line style of a paragraph or table border.
type BorderStyle string

const (
	BorderNone   BorderStyle = "none"
	BorderSingle BorderStyle = "single"
)

// Border describes one edge. Size is in eighths of a point, Space in points.
type Border struct {
	Style BorderStyle
	Size  int
	Space int
	Color string
}

// NoBorder is an invisible edge.
var NoBorder = Border{Style: BorderNone}

// Spacing is the vertical space around a paragraph, in twips.
type Spacing struct {
	Before int
	After  int
}

// Run is a contiguous span of text sharing one set of character properties.
// Size is in half-points. Color is a six digit hex RGB value without '#'.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Size   int
	Color  string
	Font   string
	// Break appends a line break after the text.
	Break bool
}

// ImageFormat is the encoding of an embedded raster image.
type ImageFormat string

const (
	ImagePNG  ImageFormat = "png"
	ImageJPEG ImageFormat = "jpeg"
	ImageGIF  ImageFormat = "gif"
)

// Image is an inline picture. Width and Height are display pixels at 96 dpi.
type Image struct {
	Data   []byte
	Format ImageFormat
	Width  int
	Height int
}

// Block is a body-level element: a Paragraph or a Table.
type Block interface {
	isBlock()
}

// Paragraph is a single body paragraph.
type Paragraph struct {
	Style        string
	Alignment    Alignment
	Spacing      *Spacing
	Bullet       bool
	BottomBorder *Border
	Image        *Image
	Runs         []Run
}

func (Paragraph) isBlock() {}

// Text returns the concatenated text of all runs.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// TableBorders holds the six table edges.
type TableBorders struct {
	Top     Border
	Left    Border
	Bottom  Border
	Right   Border
	InsideH Border
	InsideV Border
}

// UniformTableBorders applies b to every edge.
func UniformTableBorders(b Border) TableBorders {
	return TableBorders{Top: b, Left: b, Bottom: b, Right: b, InsideH: b, InsideV: b}
}

type TableCell struct {
	Paragraphs []Paragraph
}

type TableRow struct {
	Cells []TableCell
}

// Table is a grid of equally sized columns. WidthPercent is relative to the
// text area, CellMargin is in twips.
type Table struct {
	WidthPercent int
	CellMargin   int
	Borders      TableBorders
	Rows         []TableRow
}

func (Table) isBlock() {}

// PageMargins are in twips.
type PageMargins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformMargins applies the same margin to all four sides.
func UniformMargins(twips int) PageMargins {
	return PageMargins{Top: twips, Right: twips, Bottom: twips, Left: twips}
}

// RunDefaults is the document-wide character style.
type RunDefaults struct {
	Font string
	Size int
}

// HeadingStyle configures the built-in "Heading1" paragraph style.
type HeadingStyle struct {
	Font  string
	Size  int
	Color string
}

// HeadingStyleID is the style id to reference from Paragraph.Style.
const HeadingStyleID = "Heading1"

// Document is an in-memory single-section document.
type Document struct {
	Title    string
	Creator  string
	Defaults RunDefaults
	Heading  HeadingStyle
	Margins  PageMargins
	Body     []Block
}

// New returns an empty A4 document with one inch margins.
func New() *Document {
	return &Document{
		Defaults: RunDefaults{Font: "Calibri", Size: 22},
		Heading:  HeadingStyle{Font: "Calibri", Size: 32, Color: "000000"},
		Margins:  UniformMargins(InchesToTwip(1)),
	}
}

// Add appends blocks to the body in order.
func (d *Document) Add(blocks ...Block) {
	d.Body = append(d.Body, blocks...)
}

// Paragraphs returns every body-level paragraph, skipping tables.
func (d *Document) Paragraphs() []Paragraph {
	var out []Paragraph
	for _, b := range d.Body {
		if p, ok := b.(Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// InchesToTwip converts inches to twentieths of a point.
func InchesToTwip(in float64) int {
	return int(math.Round(in * 1440))
}

// PixelsToEMU converts 96 dpi pixels to English Metric Units.
func PixelsToEMU(px int) int64 {
	return int64(px) * 9525
}
