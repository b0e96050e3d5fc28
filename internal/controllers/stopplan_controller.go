package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"norhamtrans/internal/models"
	"norhamtrans/internal/rules"
	"norhamtrans/internal/store"
)

type stopPlanInput struct {
	Date     string `json:"date" binding:"required"`
	TourID   string `json:"tour_id" binding:"required"`
	Packages int    `json:"packages"`
	Stops    int    `json:"stops"`
}

type StopPlanController struct {
	Store *store.Store
}

func NewStopPlanController(s *store.Store) *StopPlanController {
	return &StopPlanController{Store: s}
}

// CreateEntry records a day's package/stop counts for a tour. The counts are
// also written back onto the tour itself, in the same update.
func (sc *StopPlanController) CreateEntry(c *gin.Context) {
	var input stopPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry input: " + err.Error()})
		return
	}

	var plan models.StopPlan
	err := sc.Store.Update(func(st *store.State) error {
		tour := st.FindTour(input.TourID)
		if tour == nil {
			return rules.ErrRecordNotFound
		}
		tour.TotalPackages = input.Packages
		tour.TotalStops = input.Stops

		plan = models.StopPlan{
			ID:        uuid.NewString(),
			Date:      input.Date,
			Addresses: tour.TourNumber + " - " + tour.City,
			Packages:  input.Packages,
			Stops:     input.Stops,
		}
		st.Stops = append([]models.StopPlan{plan}, st.Stops...)
		return nil
	})
	if err != nil {
		rulesError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": plan})
}

// ListEntries returns stop-plan entries, optionally for one date.
func (sc *StopPlanController) ListEntries(c *gin.Context) {
	date := c.Query("date")

	out := []models.StopPlan{}
	for _, p := range sc.Store.Stops() {
		if date != "" && p.Date != date {
			continue
		}
		out = append(out, p)
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}
