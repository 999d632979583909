package routes

import (
	"expense-api/handlers"
	"expense-api/services"
	"expense-api/store"

	"github.com/gin-gonic/gin"
)

// SetupCategoryRoutes sets up category CRUD routes.
func SetupCategoryRoutes(rg *gin.RouterGroup, s store.Store) {
	h := &handlers.CategoryHandler{Service: services.NewCategoryService(s)}

	rg.GET("/categories", h.List)
	rg.POST("/categories", h.Create)
	rg.GET("/categories/:id", h.Get)
	rg.PUT("/categories/:id", h.Update)
	rg.DELETE("/categories/:id", h.Delete)
}

// SetupTransactionRoutes sets up transaction CRUD routes.
func SetupTransactionRoutes(rg *gin.RouterGroup, s store.Store) {
	h := &handlers.TransactionHandler{Service: services.NewTransactionService(s)}

	rg.GET("/transactions", h.List)
	rg.POST("/transactions", h.Create)
	rg.GET("/transactions/:id", h.Get)
	rg.PUT("/transactions/:id", h.Update)
	rg.DELETE("/transactions/:id", h.Delete)
}

// SetupDashboardRoutes sets up the read-only aggregation routes.
func SetupDashboardRoutes(rg *gin.RouterGroup, s store.Store) {
	h := &handlers.DashboardHandler{Service: services.NewDashboardService(s)}

	rg.GET("/dashboard", h.Summary)
	rg.GET("/dashboard/monthly", h.Monthly)
	rg.GET("/dashboard/categories", h.Categories)
}
