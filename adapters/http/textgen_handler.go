package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	textgenUC "github.com/khoahotran/resume-studio/internal/application/usecase/textgen"
	"github.com/khoahotran/resume-studio/pkg/apperror"
)

type TextGenHandler struct {
	useCase *textgenUC.GenerateTextUseCase
}

func NewTextGenHandler(uc *textgenUC.GenerateTextUseCase) *TextGenHandler {
	return &TextGenHandler{useCase: uc}
}

func (h *TextGenHandler) ListFeatures(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"features": textgenUC.Features()})
}

func (h *TextGenHandler) Generate(c *gin.Context) {
	var req GenerateTextRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.NewInvalidInput(err.Error(), err))
			return
		}
	}

	out, err := h.useCase.Execute(c.Request.Context(), textgenUC.GenerateTextInput{
		Feature: c.Param("feature"),
		Params:  req.Params,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, GenerateTextResponse{Feature: out.Feature, Result: out.Result})
}
