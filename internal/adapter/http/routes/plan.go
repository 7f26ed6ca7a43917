package routes

import (
	"garage_manager/internal/adapter/http/handlers"
	"garage_manager/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPlans         = "/plans"
	PathSubscriptions = "/subscriptions"
	PathUsers         = "/users"
)

// addPublicPlanRoutes exposes the catalogue and renewal without a token:
// an expired garage cannot log in to pay for its renewal.
func addPublicPlanRoutes(rg *gin.RouterGroup, h *handlers.PlanHandler) {
	plans := rg.Group(PathPlans)
	{
		plans.GET("", h.ListPlans)
		plans.GET("/:plan_id", h.GetPlan)
	}
	subs := rg.Group(PathSubscriptions)
	{
		subs.POST("/renew", h.RenewSubscription)
		subs.POST("/complete", h.CompleteRenewal)
	}
}

func addPlanRoutes(rg *gin.RouterGroup, h *handlers.PlanHandler) {
	rg.GET(PathSubscriptions+"/:garage_id", h.SubscriptionStatus)

	admin := rg.Group(PathAdmin, middleware.RequireAdmin())
	{
		admin.POST("/plans", h.CreatePlan)
		admin.PUT("/plans/:plan_id", h.UpdatePlan)
		admin.DELETE("/plans/:plan_id", h.DeletePlan)
	}
}

func addPublicUserRoutes(rg *gin.RouterGroup, h *handlers.UserHandler) {
	rg.POST(PathUsers+"/login", h.Login)
}

func addUserRoutes(rg *gin.RouterGroup, h *handlers.UserHandler) {
	users := rg.Group(PathUsers)
	{
		users.POST("", h.CreateUser)
		users.GET("/garage/:garage_id", h.ListByGarage)
		users.GET("/me/permissions", h.MyPermissions)
		users.PATCH("/:user_id/permissions", h.UpdatePermissions)
		users.DELETE("/:user_id", h.DeleteUser)
	}
}
