package routes

import (
	"norhamtrans/internal/controllers"
	"norhamtrans/internal/middleware"
	"norhamtrans/internal/rules"
	"norhamtrans/internal/store"

	"github.com/gin-gonic/gin"
)

func InventoryRoutes(r *gin.Engine, s *store.Store, e *rules.Engine) {
	ctrl := controllers.NewInventoryController(s, e)
	inv := r.Group("/inventory")
	inv.Use(middleware.RequireAuth())
	{
		inv.POST("/", ctrl.CreateItem)
		inv.GET("/", ctrl.ListItems)
		inv.PUT("/:id", ctrl.UpdateItem)
		inv.POST("/:id/assign", ctrl.AssignItem)
		inv.POST("/:id/return/:recordId", ctrl.ReturnItem)
		inv.GET("/:id/history", ctrl.ItemHistory)
	}
}
