package routes

import (
	"norhamtrans/internal/controllers"
	"norhamtrans/internal/middleware"
	"norhamtrans/internal/rules"
	"norhamtrans/internal/store"

	"github.com/gin-gonic/gin"
)

func VehicleRoutes(r *gin.Engine, s *store.Store, e *rules.Engine) {
	ctrl := controllers.NewVehicleController(s, e)
	vehicle := r.Group("/vehicles")
	vehicle.Use(middleware.RequireAuth())
	{
		vehicle.POST("/", ctrl.CreateVehicle)
		vehicle.GET("/", ctrl.ListVehicles)
		vehicle.PUT("/:id", ctrl.UpdateVehicle)
		vehicle.PUT("/:id/status", ctrl.SetStatus)
		vehicle.POST("/:id/release", ctrl.Release)
		vehicle.GET("/maintenance", ctrl.MaintenanceAlerts)
	}
}
