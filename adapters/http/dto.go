package http

import (
	"encoding/json"
	"time"

	"github.com/khoahotran/resume-studio/internal/domain/renderlog"
	"github.com/khoahotran/resume-studio/internal/domain/resume"
)

// Resume DTOs
type WorkExperienceRequest struct {
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	City        string `json:"city"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type EducationRequest struct {
	Degree     string `json:"degree"`
	SchoolName string `json:"schoolName"`
	City       string `json:"city"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

type GenerateResumeRequest struct {
	SelectedTemplate string                  `json:"selectedTemplate"`
	ProfileImage     string                  `json:"profileImage"`
	FirstName        string                  `json:"firstName" binding:"required"`
	LastName         string                  `json:"lastName" binding:"required"`
	Email            string                  `json:"email" binding:"required"`
	PhoneNumber      string                  `json:"phoneNumber" binding:"required"`
	Location         string                  `json:"location"`
	Address          string                  `json:"address"`
	Zipcode          string                  `json:"zipcode"`
	City             string                  `json:"city"`
	Nationality      string                  `json:"nationality"`
	DateOfBirth      string                  `json:"dob"`
	Gender           string                  `json:"gender"`
	MaritalStatus    string                  `json:"maritalStatus"`
	LinkedIn         string                  `json:"linkedin"`
	Website          string                  `json:"website"`
	Objective        string                  `json:"objective"`
	WorkExperience   []WorkExperienceRequest `json:"workExperience"`
	Education        []EducationRequest      `json:"education"`
	Skills           string                  `json:"skills"`
	Interests        string                  `json:"interests"`
}

func (r GenerateResumeRequest) ToDomain() resume.Record {
	rec := resume.Record{
		SelectedTemplate: r.SelectedTemplate,
		ProfileImage:     r.ProfileImage,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		PhoneNumber:      r.PhoneNumber,
		Location:         r.Location,
		Address:          r.Address,
		Zipcode:          r.Zipcode,
		City:             r.City,
		Nationality:      r.Nationality,
		DateOfBirth:      r.DateOfBirth,
		Gender:           r.Gender,
		MaritalStatus:    r.MaritalStatus,
		LinkedIn:         r.LinkedIn,
		Website:          r.Website,
		Objective:        r.Objective,
		Skills:           r.Skills,
		Interests:        r.Interests,
	}
	rec.WorkExperience = make([]resume.WorkExperience, len(r.WorkExperience))
	for i, w := range r.WorkExperience {
		rec.WorkExperience[i] = resume.WorkExperience{
			JobTitle:    w.JobTitle,
			CompanyName: w.CompanyName,
			City:        w.City,
			StartDate:   w.StartDate,
			EndDate:     w.EndDate,
			Description: w.Description,
		}
	}
	rec.Education = make([]resume.Education, len(r.Education))
	for i, e := range r.Education {
		rec.Education[i] = resume.Education{
			Degree:     e.Degree,
			SchoolName: e.SchoolName,
			City:       e.City,
			StartDate:  e.StartDate,
			EndDate:    e.EndDate,
		}
	}
	return rec
}

// Render log DTOs
type RenderLogDTO struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"request_id"`
	Template   string    `json:"template"`
	Status     string    `json:"status"`
	SizeBytes  int       `json:"size_bytes"`
	DurationMs int64     `json:"duration_ms"`
	OccurredAt time.Time `json:"occurred_at"`
}

func ToRenderLogDTO(e *renderlog.Entry) RenderLogDTO {
	return RenderLogDTO{
		ID:         e.ID.String(),
		RequestID:  e.RequestID,
		Template:   e.Template,
		Status:     string(e.Status),
		SizeBytes:  e.SizeBytes,
		DurationMs: e.DurationMs,
		OccurredAt: e.OccurredAt,
	}
}

// Text generation DTOs
type GenerateTextRequest struct {
	Params map[string]string `json:"params"`
}

type GenerateTextResponse struct {
	Feature string          `json:"feature"`
	Result  json.RawMessage `json:"result"`
}
