package routes

import (
	"norhamtrans/internal/controllers"
	"norhamtrans/internal/middleware"
	"norhamtrans/internal/rules"
	"norhamtrans/internal/store"

	"github.com/gin-gonic/gin"
)

func DriverRoutes(r *gin.Engine, s *store.Store, e *rules.Engine) {
	ctrl := controllers.NewDriverController(s, e)
	driver := r.Group("/drivers")
	driver.Use(middleware.RequireAuth())
	{
		driver.POST("/", ctrl.CreateDriver)
		driver.GET("/", ctrl.ListDrivers)
		driver.GET("/:id", ctrl.GetDriver)
		driver.PUT("/:id", ctrl.UpdateDriver)
		driver.DELETE("/:id", ctrl.DeleteDriver)
		driver.PUT("/:id/status", ctrl.SetStatus)
		driver.POST("/:id/vehicle", ctrl.AssignVehicle)
		driver.DELETE("/:id/vehicle", ctrl.ReleaseVehicle)
	}
}
