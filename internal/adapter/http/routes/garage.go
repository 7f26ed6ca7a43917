package routes

import (
	"garage_manager/internal/adapter/http/handlers"
	"garage_manager/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathGarages = "/garages"
	PathAdmin   = "/admin"
)

func addPublicGarageRoutes(rg *gin.RouterGroup, h *handlers.GarageHandler) {
	garages := rg.Group(PathGarages)
	{
		garages.POST("", h.Register)
		garages.POST("/login", h.Login)
	}
}

func addGarageRoutes(rg *gin.RouterGroup, h *handlers.GarageHandler) {
	garages := rg.Group(PathGarages)
	{
		garages.GET("/:garage_id", h.GetGarage)
		garages.PATCH("/:garage_id/profile", h.UpdateProfile)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.GarageHandler) {
	admin := rg.Group(PathAdmin, middleware.RequireAdmin())
	{
		admin.GET("/garages/pending", h.ListPending)
		admin.PATCH("/garages/:garage_id/approve", h.Approve)
		admin.DELETE("/garages/:garage_id/reject", h.Reject)
	}
}
