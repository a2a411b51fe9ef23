package service

import (
	"time"

	"github.com/khoahotran/resume-studio/internal/domain/resume"
	"github.com/khoahotran/resume-studio/internal/renderer"
)

type ResumeRenderer interface {
	Render(rec resume.Record, at time.Time) (*renderer.Output, error)
}
