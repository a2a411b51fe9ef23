package resume

import (
	"errors"
	"fmt"
	"strings"
)

// Template selects one of the compiled-in visual styles.
type Template string

const (
	TemplateModern       Template = "modern"
	TemplateProfessional Template = "professional"
	TemplateCreative     Template = "creative"
	TemplateExecutive    Template = "executive"
)

// DefaultTemplate is used when a record names no template or an unknown one.
const DefaultTemplate = TemplateModern

// Templates lists every known template in display order.
var Templates = []Template{TemplateModern, TemplateProfessional, TemplateCreative, TemplateExecutive}

// ParseTemplate resolves an identifier to a known template, falling back to
// DefaultTemplate. The second return reports whether s was recognised.
func ParseTemplate(s string) (Template, bool) {
	switch t := Template(strings.ToLower(strings.TrimSpace(s))); t {
	case TemplateModern, TemplateProfessional, TemplateCreative, TemplateExecutive:
		return t, true
	default:
		return DefaultTemplate, false
	}
}

type WorkExperience struct {
	JobTitle    string `json:"jobTitle" yaml:"jobTitle"`
	CompanyName string `json:"companyName" yaml:"companyName"`
	City        string `json:"city" yaml:"city"`
	StartDate   string `json:"startDate" yaml:"startDate"`
	// EndDate is empty for a current position.
	EndDate     string `json:"endDate,omitempty" yaml:"endDate"`
	Description string `json:"description" yaml:"description"`
}

type Education struct {
	Degree     string `json:"degree" yaml:"degree"`
	SchoolName string `json:"schoolName" yaml:"schoolName"`
	City       string `json:"city" yaml:"city"`
	StartDate  string `json:"startDate" yaml:"startDate"`
	EndDate    string `json:"endDate" yaml:"endDate"`
}

// Record is the complete input to rendering. It is built from one request
// and never mutated or stored.
type Record struct {
	SelectedTemplate string `json:"selectedTemplate" yaml:"selectedTemplate"`
	// ProfileImage is an optional base64 payload, with or without a data URI prefix.
	ProfileImage string `json:"profileImage,omitempty" yaml:"profileImage"`

	FirstName     string `json:"firstName" yaml:"firstName"`
	LastName      string `json:"lastName" yaml:"lastName"`
	Email         string `json:"email" yaml:"email"`
	PhoneNumber   string `json:"phoneNumber" yaml:"phoneNumber"`
	Location      string `json:"location,omitempty" yaml:"location"`
	Address       string `json:"address,omitempty" yaml:"address"`
	Zipcode       string `json:"zipcode,omitempty" yaml:"zipcode"`
	City          string `json:"city,omitempty" yaml:"city"`
	Nationality   string `json:"nationality,omitempty" yaml:"nationality"`
	DateOfBirth   string `json:"dob,omitempty" yaml:"dob"`
	Gender        string `json:"gender,omitempty" yaml:"gender"`
	MaritalStatus string `json:"maritalStatus,omitempty" yaml:"maritalStatus"`
	LinkedIn      string `json:"linkedin,omitempty" yaml:"linkedin"`
	Website       string `json:"website,omitempty" yaml:"website"`
	Objective     string `json:"objective,omitempty" yaml:"objective"`

	WorkExperience []WorkExperience `json:"workExperience" yaml:"workExperience"`
	Education      []Education      `json:"education" yaml:"education"`
	// Skills is a comma separated list, order preserved.
	Skills    string `json:"skills" yaml:"skills"`
	Interests string `json:"interests,omitempty" yaml:"interests"`
}

// Template returns the record's resolved template.
func (r Record) Template() Template {
	t, _ := ParseTemplate(r.SelectedTemplate)
	return t
}

// FullName joins first and last name with a single space.
func (r Record) FullName() string {
	return r.FirstName + " " + r.LastName
}

// ContactLocation is the explicit location, else the non-empty parts of the
// postal address.
func (r Record) ContactLocation() string {
	if loc := strings.TrimSpace(r.Location); loc != "" {
		return loc
	}
	var parts []string
	for _, p := range []string{r.Address, r.City, r.Zipcode} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

var ErrMissingField = errors.New("missing required field")

// Validate checks the fields the name and contact blocks cannot do without.
func (r Record) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"email", r.Email},
		{"phoneNumber", r.PhoneNumber},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}
