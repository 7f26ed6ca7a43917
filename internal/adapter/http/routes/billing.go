package routes

import (
	"garage_manager/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBilling   = "/billing"
	PathInventory = "/inventory"
)

func addBillingRoutes(rg *gin.RouterGroup, h *handlers.BillingHandler) {
	billing := rg.Group(PathBilling)
	{
		billing.POST("/generate/:job_card_id", h.GenerateBill)
		billing.POST("/pay", h.ProcessPayment)
		billing.GET("/invoice", h.GetInvoice)
		billing.GET("/last-invoice/:garage_id", h.LastInvoiceNumber)
		billing.POST("/:bill_id/email", h.SendBillEmail)
		billing.GET("/report/:garage_id", h.FinancialReport)
		billing.GET("/report/:garage_id/export", h.ExportFinancialReport)
	}
}

func addInventoryRoutes(rg *gin.RouterGroup, h *handlers.InventoryHandler) {
	inventory := rg.Group(PathInventory)
	{
		inventory.POST("", h.AddPart)
		inventory.GET("/:garage_id", h.ListParts)
		inventory.PUT("/part/:part_id", h.UpdatePart)
		inventory.DELETE("/part/:part_id", h.DeletePart)
	}
}
