package renderer

import (
	"github.com/khoahotran/resume-studio/internal/domain/resume"
	"github.com/khoahotran/resume-studio/pkg/docx"
)

type Colors struct {
	Primary   string
	Secondary string
	Accent    string
}

type Fonts struct {
	Heading string
	Body    string
}

// Sizes are in half-points.
type Sizes struct {
	Name       int
	Heading    int
	Subheading int
	Body       int
}

// Spacing values are in twips.
type Spacing struct {
	Heading int
	Section int
}

// StyleProfile is the fixed look of one template.
type StyleProfile struct {
	Colors  Colors
	Fonts   Fonts
	Sizes   Sizes
	Spacing Spacing
}

var (
	modernStyle = StyleProfile{
		Colors:  Colors{Primary: "2E74B5", Secondary: "404040", Accent: "7F7F7F"},
		Fonts:   Fonts{Heading: "Calibri", Body: "Calibri Light"},
		Sizes:   Sizes{Name: 36, Heading: 24, Subheading: 22, Body: 20},
		Spacing: Spacing{Heading: 300, Section: 200},
	}
	professionalStyle = StyleProfile{
		Colors:  Colors{Primary: "000000", Secondary: "666666", Accent: "333333"},
		Fonts:   Fonts{Heading: "Times New Roman", Body: "Arial"},
		Sizes:   Sizes{Name: 32, Heading: 24, Subheading: 22, Body: 20},
		Spacing: Spacing{Heading: 400, Section: 300},
	}
	creativeStyle = StyleProfile{
		Colors:  Colors{Primary: "2E86C1", Secondary: "17A589", Accent: "8E44AD"},
		Fonts:   Fonts{Heading: "Verdana", Body: "Segoe UI"},
		Sizes:   Sizes{Name: 40, Heading: 28, Subheading: 24, Body: 20},
		Spacing: Spacing{Heading: 280, Section: 180},
	}
	executiveStyle = StyleProfile{
		Colors:  Colors{Primary: "1C2833", Secondary: "566573", Accent: "273746"},
		Fonts:   Fonts{Heading: "Georgia", Body: "Palatino"},
		Sizes:   Sizes{Name: 34, Heading: 26, Subheading: 22, Body: 20},
		Spacing: Spacing{Heading: 350, Section: 250},
	}
)

// ResolveStyle returns the profile for t. Values outside the enumeration get
// the default template's profile.
func ResolveStyle(t resume.Template) StyleProfile {
	switch t {
	case resume.TemplateModern:
		return modernStyle
	case resume.TemplateProfessional:
		return professionalStyle
	case resume.TemplateCreative:
		return creativeStyle
	case resume.TemplateExecutive:
		return executiveStyle
	default:
		return ResolveStyle(resume.DefaultTemplate)
	}
}

// alignmentFor centers the image, name, headings and skills of the creative
// template and left-aligns everything else.
func alignmentFor(t resume.Template) docx.Alignment {
	if t == resume.TemplateCreative {
		return docx.AlignCenter
	}
	return docx.AlignLeft
}

// body returns a run in the profile's body font and size.
func (s StyleProfile) body(text string) docx.Run {
	return docx.Run{Text: text, Size: s.Sizes.Body, Font: s.Fonts.Body}
}
