package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"norhamtrans/internal/models"
	"norhamtrans/internal/store"
)

type DashboardController struct {
	Store *store.Store
}

func NewDashboardController(s *store.Store) *DashboardController {
	return &DashboardController{Store: s}
}

// Metrics aggregates the landing-page counters: today's tours, driver
// headcount, open complaints and vehicles currently in service.
func (dc *DashboardController) Metrics(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	toursToday := 0
	for _, t := range dc.Store.Tours() {
		if t.Date == today {
			toursToday++
		}
	}

	openComplaints := 0
	for _, comp := range dc.Store.Complaints() {
		if !comp.Resolved {
			openComplaints++
		}
	}

	inService := 0
	for _, item := range dc.Store.Inventory() {
		if item.Vehicle != nil && item.Vehicle.Status == models.VehicleInService {
			inService++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"tours_today":         toursToday,
		"drivers":             len(dc.Store.Drivers()),
		"open_complaints":     openComplaints,
		"vehicles_in_service": inService,
	})
}
