package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resumeUC "github.com/khoahotran/resume-studio/internal/application/usecase/resume"
	"github.com/khoahotran/resume-studio/pkg/apperror"
)

// RenderFailureMessage is the only failure detail a render request exposes.
const RenderFailureMessage = "Failed to generate resume. Please try again."

type ResumeHandler struct {
	generateUseCase *resumeUC.GenerateResumeUseCase
	statsUseCase    *resumeUC.GetRenderStatsUseCase
	listUseCase     *resumeUC.ListRendersUseCase
	feedUseCase     *resumeUC.RenderFeedUseCase
	maxBodyBytes    int64
}

func NewResumeHandler(
	generateUC *resumeUC.GenerateResumeUseCase,
	statsUC *resumeUC.GetRenderStatsUseCase,
	listUC *resumeUC.ListRendersUseCase,
	feedUC *resumeUC.RenderFeedUseCase,
	maxBodyBytes int64,
) *ResumeHandler {
	return &ResumeHandler{
		generateUseCase: generateUC,
		statsUseCase:    statsUC,
		listUseCase:     listUC,
		feedUseCase:     feedUC,
		maxBodyBytes:    maxBodyBytes,
	}
}

func (h *ResumeHandler) GenerateResume(c *gin.Context) {
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	var req GenerateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}

	record := req.ToDomain()
	if err := record.Validate(); err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}

	out, err := h.generateUseCase.Execute(c.Request.Context(), resumeUC.GenerateResumeInput{
		RequestID: GetRequestIDFromGinContext(c),
		Record:    record,
	})
	if err != nil {
		GetLoggerFromGinContext(c).Error("Resume generation failed", err,
			zap.String("template", string(record.Template())),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": RenderFailureMessage})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, out.FileName))
	c.Header("Content-Length", strconv.Itoa(len(out.Data)))
	c.Data(http.StatusOK, out.ContentType, out.Data)
}

func (h *ResumeHandler) GetStats(c *gin.Context) {
	out, err := h.statsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": out.Counts})
}

func (h *ResumeHandler) ListRenders(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(apperror.NewInvalidInput("limit must be an integer", err))
			return
		}
		limit = n
	}

	out, err := h.listUseCase.Execute(c.Request.Context(), resumeUC.ListRendersInput{Limit: limit})
	if err != nil {
		c.Error(err)
		return
	}

	renders := make([]RenderLogDTO, len(out.Entries))
	for i, e := range out.Entries {
		renders[i] = ToRenderLogDTO(e)
	}
	c.JSON(http.StatusOK, gin.H{"renders": renders})
}

func (h *ResumeHandler) RenderFeed(c *gin.Context) {
	feed, err := h.feedUseCase.Execute(c.Request.Context(), resumeUC.RenderFeedInput{BaseURL: requestOrigin(c)})
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Type", "application/atom+xml; charset=utf-8")
	if err := feed.WriteAtom(c.Writer); err != nil {
		GetLoggerFromGinContext(c).Error("Failed to write render feed to response", err)
	}
}

func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}
