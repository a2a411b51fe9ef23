// Package renderer turns a résumé record into a styled .docx document.
//
// Rendering is a pure single pass: the record is read, a document model is
// assembled from the template's StyleProfile and packed into an archive.
// A Renderer holds no state and is safe for concurrent use.
package renderer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/khoahotran/resume-studio/internal/domain/resume"
	"github.com/khoahotran/resume-studio/pkg/docx"
)

const (
	pageMarginInches = 0.5
	tableCellMargin  = 100
	documentCreator  = "resume-studio"
)

// ContentType is the MIME type of rendered documents.
const ContentType = docx.ContentType

var ErrInvalidImage = errors.New("invalid profile image")

// Output is a packed document ready for transfer.
type Output struct {
	Data        []byte
	FileName    string
	ContentType string
	Template    resume.Template
}

type Renderer struct{}

func New() *Renderer {
	return &Renderer{}
}

// Render assembles and packs rec. at only feeds the file name.
func (r *Renderer) Render(rec resume.Record, at time.Time) (*Output, error) {
	doc, err := r.Assemble(rec)
	if err != nil {
		return nil, err
	}
	data, err := docx.Pack(doc)
	if err != nil {
		return nil, fmt.Errorf("pack document: %w", err)
	}
	return &Output{
		Data:        data,
		FileName:    FileName(rec.FirstName, rec.LastName, at),
		ContentType: ContentType,
		Template:    rec.Template(),
	}, nil
}

// Assemble builds the document model for rec without packing it.
func (r *Renderer) Assemble(rec resume.Record) (*docx.Document, error) {
	tpl := rec.Template()
	b := &builder{
		tpl:   tpl,
		style: ResolveStyle(tpl),
		align: alignmentFor(tpl),
		doc:   docx.New(),
	}
	b.doc.Title = rec.FullName()
	b.doc.Creator = documentCreator
	b.doc.Margins = docx.UniformMargins(docx.InchesToTwip(pageMarginInches))
	b.doc.Defaults = docx.RunDefaults{Font: b.style.Fonts.Body, Size: b.style.Sizes.Body}
	b.doc.Heading = docx.HeadingStyle{Font: b.style.Fonts.Heading, Size: b.style.Sizes.Heading, Color: b.style.Colors.Primary}

	if rec.ProfileImage != "" {
		img, err := decodeProfileImage(rec.ProfileImage)
		if err != nil {
			return nil, err
		}
		b.doc.Add(docx.Paragraph{
			Alignment: b.align,
			Spacing:   &docx.Spacing{After: b.style.Spacing.Section},
			Image:     img,
		})
	}

	b.doc.Add(b.nameBlock(rec))
	b.doc.Add(b.detailsTable(rec))

	if rec.Objective != "" {
		b.doc.Add(b.heading("Professional Summary"))
		b.doc.Add(docx.Paragraph{
			Spacing: &docx.Spacing{After: b.style.Spacing.Section},
			Runs:    []docx.Run{b.style.body(rec.Objective)},
		})
	}

	b.doc.Add(b.heading("Professional Experience"))
	b.doc.Add(b.experienceSection(rec.WorkExperience)...)

	b.doc.Add(b.heading("Education"))
	b.doc.Add(b.educationSection(rec.Education)...)

	if strings.TrimSpace(rec.Skills) != "" {
		b.doc.Add(b.heading("Skills"))
		b.doc.Add(b.skillsSection(rec.Skills)...)
	}

	if rec.Interests != "" {
		b.doc.Add(b.heading("Interests"))
		b.doc.Add(docx.Paragraph{
			Spacing: &docx.Spacing{Before: b.style.Spacing.Section},
			Runs:    []docx.Run{b.style.body(rec.Interests)},
		})
	}

	return b.doc, nil
}

type builder struct {
	tpl   resume.Template
	style StyleProfile
	align docx.Alignment
	doc   *docx.Document
}

func (b *builder) nameBlock(rec resume.Record) docx.Paragraph {
	return docx.Paragraph{
		Alignment: b.align,
		Spacing:   &docx.Spacing{After: b.style.Spacing.Section},
		Runs: []docx.Run{{
			Text:  rec.FullName(),
			Bold:  true,
			Size:  b.style.Sizes.Name,
			Color: b.style.Colors.Primary,
			Font:  b.style.Fonts.Heading,
		}},
	}
}

// heading renders an upper-cased section title with an accent underline.
func (b *builder) heading(title string) docx.Paragraph {
	return docx.Paragraph{
		Style:     docx.HeadingStyleID,
		Alignment: b.align,
		Spacing:   &docx.Spacing{Before: b.style.Spacing.Heading, After: b.style.Spacing.Section},
		BottomBorder: &docx.Border{
			Style: docx.BorderSingle,
			Size:  6,
			Space: 1,
			Color: b.style.Colors.Accent,
		},
		Runs: []docx.Run{{
			Text:  strings.ToUpper(title),
			Bold:  true,
			Size:  b.style.Sizes.Heading,
			Color: b.style.Colors.Primary,
			Font:  b.style.Fonts.Heading,
		}},
	}
}

func (b *builder) detailsTable(rec resume.Record) docx.Table {
	borders := docx.UniformTableBorders(docx.NoBorder)
	if b.tpl != resume.TemplateModern {
		borders = docx.UniformTableBorders(docx.Border{Style: docx.BorderSingle, Size: 1, Color: b.style.Colors.Accent})
	}

	return docx.Table{
		WidthPercent: 100,
		CellMargin:   tableCellMargin,
		Borders:      borders,
		Rows: []docx.TableRow{{
			Cells: []docx.TableCell{
				{Paragraphs: []docx.Paragraph{b.lines(contactLines(rec))}},
				{Paragraphs: []docx.Paragraph{b.lines(personalLines(rec))}},
			},
		}},
	}
}

// lines renders each entry as a body run separated by line breaks.
func (b *builder) lines(lines []string) docx.Paragraph {
	runs := make([]docx.Run, 0, len(lines))
	for i, l := range lines {
		r := b.style.body(l)
		r.Break = i < len(lines)-1
		runs = append(runs, r)
	}
	return docx.Paragraph{Runs: runs}
}

func contactLines(rec resume.Record) []string {
	lines := []string{rec.Email, rec.PhoneNumber}
	if loc := rec.ContactLocation(); loc != "" {
		lines = append(lines, loc)
	}
	if rec.LinkedIn != "" {
		lines = append(lines, rec.LinkedIn)
	}
	if rec.Website != "" {
		lines = append(lines, rec.Website)
	}
	return lines
}

func personalLines(rec resume.Record) []string {
	var lines []string
	if rec.Nationality != "" {
		lines = append(lines, "Nationality: "+rec.Nationality)
	}
	if rec.DateOfBirth != "" {
		lines = append(lines, "Date of Birth: "+formatFullDate(rec.DateOfBirth))
	}
	if rec.Gender != "" {
		lines = append(lines, "Gender: "+rec.Gender)
	}
	if rec.MaritalStatus != "" {
		lines = append(lines, "Marital Status: "+rec.MaritalStatus)
	}
	return lines
}
