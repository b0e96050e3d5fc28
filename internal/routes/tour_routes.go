package routes

import (
	"norhamtrans/internal/controllers"
	"norhamtrans/internal/middleware"
	"norhamtrans/internal/rules"
	"norhamtrans/internal/store"

	"github.com/gin-gonic/gin"
)

func TourRoutes(r *gin.Engine, s *store.Store, e *rules.Engine) {
	tourCtrl := controllers.NewTourController(s, e)
	stopCtrl := controllers.NewStopPlanController(s)

	tour := r.Group("/tours")
	tour.Use(middleware.RequireAuth())
	{
		tour.POST("/", tourCtrl.CreateTour)
		tour.GET("/", tourCtrl.ListTours)
		tour.PUT("/:id", tourCtrl.UpdateTour)
		tour.POST("/copy", tourCtrl.CopyTours)
	}

	stops := r.Group("/stops")
	stops.Use(middleware.RequireAuth())
	{
		stops.POST("/", stopCtrl.CreateEntry)
		stops.GET("/", stopCtrl.ListEntries)
	}
}
