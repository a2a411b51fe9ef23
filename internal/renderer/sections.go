package renderer

import (
	"github.com/khoahotran/resume-studio/internal/domain/resume"
	"github.com/khoahotran/resume-studio/pkg/docx"
)

const (
	presentLabel   = "Present"
	skillSeparator = "•"
)

// entryTitle is the "Title | Organisation" line shared by experience and
// education entries.
func (b *builder) entryTitle(title, organisation string) docx.Paragraph {
	return docx.Paragraph{
		Spacing: &docx.Spacing{Before: b.style.Spacing.Section},
		Runs: []docx.Run{
			{
				Text:  title,
				Bold:  true,
				Size:  b.style.Sizes.Subheading,
				Color: b.style.Colors.Primary,
				Font:  b.style.Fonts.Heading,
			},
			{
				Text:   " | " + organisation,
				Italic: true,
				Size:   b.style.Sizes.Subheading,
				Color:  b.style.Colors.Secondary,
				Font:   b.style.Fonts.Body,
			},
		},
	}
}

func (b *builder) detailLine(text string) docx.Paragraph {
	return docx.Paragraph{
		Spacing: &docx.Spacing{Before: b.style.Spacing.Section / 2},
		Runs:    []docx.Run{b.style.body(text)},
	}
}

func (b *builder) bullet(text string) docx.Paragraph {
	p := b.detailLine(text)
	p.Bullet = true
	return p
}

func (b *builder) experienceSection(entries []resume.WorkExperience) []docx.Block {
	var blocks []docx.Block
	for _, e := range entries {
		end := formatShortDate(e.EndDate)
		if end == "" {
			end = presentLabel
		}
		blocks = append(blocks,
			b.entryTitle(e.JobTitle, e.CompanyName),
			b.detailLine(formatShortDate(e.StartDate)+" - "+end),
		)
		for _, line := range descriptionLines(e.Description) {
			blocks = append(blocks, b.bullet(line))
		}
	}
	return blocks
}

func (b *builder) educationSection(entries []resume.Education) []docx.Block {
	var blocks []docx.Block
	for _, e := range entries {
		blocks = append(blocks,
			b.entryTitle(e.Degree, e.SchoolName),
			b.detailLine(formatShortDate(e.StartDate)+" - "+formatShortDate(e.EndDate)),
		)
	}
	return blocks
}

// skillsSection renders one centered line for the creative template, where
// every skill including the last is followed by the separator, and one
// bullet per skill otherwise.
func (b *builder) skillsSection(skills string) []docx.Block {
	tokens := splitSkills(skills)
	if b.tpl == resume.TemplateCreative {
		runs := make([]docx.Run, 0, len(tokens))
		for _, s := range tokens {
			runs = append(runs, b.style.body(s+" "+skillSeparator+" "))
		}
		return []docx.Block{docx.Paragraph{Alignment: docx.AlignCenter, Runs: runs}}
	}

	blocks := make([]docx.Block, 0, len(tokens))
	for _, s := range tokens {
		blocks = append(blocks, b.bullet(s))
	}
	return blocks
}
