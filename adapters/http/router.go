package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-studio/pkg/apperror"
	"github.com/khoahotran/resume-studio/pkg/logger"
)

const resumePath = "/api/resume"

func NewRouter(log logger.Logger, resumeHandler *ResumeHandler, textGenHandler *TextGenHandler) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(log), RequestLogger(), gin.CustomRecovery(recoverPanic), ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.POST("/resume", resumeHandler.GenerateResume)
		resumes := api.Group("/resume")
		{
			resumes.GET("/stats", resumeHandler.GetStats)
			resumes.GET("/renders", resumeHandler.ListRenders)
			resumes.GET("/renders.atom", resumeHandler.RenderFeed)
		}

		generate := api.Group("/generate")
		{
			generate.GET("", textGenHandler.ListFeatures)
			generate.POST("/:feature", textGenHandler.Generate)
		}
	}

	return router
}

// recoverPanic keeps panics behind the same bodies as ordinary failures.
func recoverPanic(c *gin.Context, recovered any) {
	GetLoggerFromGinContext(c).Error("Recovered from panic", nil, zap.Any("panic", recovered))
	if c.FullPath() == resumePath {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": RenderFailureMessage})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, apperror.NewInternal("panic", nil).ToJSON())
}
