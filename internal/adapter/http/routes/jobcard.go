package routes

import (
	"garage_manager/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEngineers = "/engineers"
	PathJobCards  = "/jobcards"
)

func addEngineerRoutes(rg *gin.RouterGroup, h *handlers.EngineerHandler) {
	engineers := rg.Group(PathEngineers)
	{
		engineers.POST("", h.CreateEngineer)
		engineers.GET("/garage/:garage_id", h.ListEngineers)
	}
}

func addJobCardRoutes(rg *gin.RouterGroup, h *handlers.JobCardHandler) {
	jobCards := rg.Group(PathJobCards)
	{
		jobCards.POST("", h.CreateJobCard)
		jobCards.GET("/garage/:garage_id", h.ListJobCards)
		jobCards.GET("/:job_card_id", h.GetJobCard)
		jobCards.PUT("/:job_card_id", h.UpdateJobCard)
		jobCards.DELETE("/:job_card_id", h.DeleteJobCard)
		jobCards.PUT("/:job_card_id/engineers", h.AssignEngineers)
		jobCards.PATCH("/:job_card_id/status", h.UpdateStatus)
		jobCards.PUT("/:job_card_id/work", h.LogWorkProgress)
		jobCards.PUT("/:job_card_id/quality-check", h.QualityCheck)
		jobCards.PUT("/:job_card_id/generate-bill", h.MarkForBilling)
	}
}
