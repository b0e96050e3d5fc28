package routes

import (
	"norhamtrans/internal/controllers"
	"norhamtrans/internal/middleware"
	"norhamtrans/internal/store"

	"github.com/gin-gonic/gin"
)

// ReportRoutes covers the remaining back-office surfaces: complaints, the
// pre-departure control checks and the dashboard counters.
func ReportRoutes(r *gin.Engine, s *store.Store) {
	complaintCtrl := controllers.NewComplaintController(s)
	controlCtrl := controllers.NewControlController(s)
	dashCtrl := controllers.NewDashboardController(s)

	complaints := r.Group("/complaints")
	complaints.Use(middleware.RequireAuth())
	{
		complaints.POST("/", complaintCtrl.CreateComplaint)
		complaints.GET("/", complaintCtrl.ListComplaints)
		complaints.PUT("/:id/resolve", complaintCtrl.ResolveComplaint)
	}

	controls := r.Group("/controls")
	controls.Use(middleware.RequireAuth())
	{
		controls.POST("/", controlCtrl.CreateChecklist)
		controls.GET("/", controlCtrl.ListChecklists)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.RequireAuth())
	{
		dashboard.GET("/metrics", dashCtrl.Metrics)
	}
}
