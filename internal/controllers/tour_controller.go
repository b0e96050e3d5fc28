package controllers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"norhamtrans/internal/models"
	"norhamtrans/internal/rules"
	"norhamtrans/internal/store"
)

// --- Helper Structs for Request Bodies ---

// tourInput covers create and update; the vehicle is referenced by item ID and
// its plate is snapshotted onto the tour at save time.
type tourInput struct {
	TourNumber       string          `json:"tour_number" binding:"required"`
	City             string          `json:"city" binding:"required"`
	DriverID         string          `json:"driver_id" binding:"required"`
	BeginnerDriverID string          `json:"beginner_driver_id"`
	VehicleID        string          `json:"vehicle_id" binding:"required"`
	TourType         models.TourType `json:"tour_type"`
	Date             string          `json:"date" binding:"required"`
}

type copyToursInput struct {
	SourceDate string `json:"source_date" binding:"required"`
	TargetDate string `json:"target_date" binding:"required"`
}

type TourController struct {
	Store *store.Store
	Rules *rules.Engine
}

func NewTourController(s *store.Store, e *rules.Engine) *TourController {
	return &TourController{Store: s, Rules: e}
}

// CreateTour dispatches a new tour; metrics start at zero and status Pending.
func (tc *TourController) CreateTour(c *gin.Context) {
	var input tourInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour input: " + err.Error()})
		return
	}
	if input.TourType == "" {
		input.TourType = models.TourFixed
	}

	var tour models.Tour
	err := tc.Store.Update(func(st *store.State) error {
		if st.FindDriver(input.DriverID) == nil {
			return rules.ErrDriverNotFound
		}
		vehicle := st.FindItem(input.VehicleID)
		if vehicle == nil || vehicle.Vehicle == nil {
			return rules.ErrNotAVehicle
		}
		if vehicle.Vehicle.Status != models.VehicleActive {
			return rules.ErrVehicleNotActive
		}
		tour = models.Tour{
			ID:               uuid.NewString(),
			TourNumber:       input.TourNumber,
			City:             input.City,
			DriverID:         input.DriverID,
			BeginnerDriverID: input.BeginnerDriverID,
			VehiclePlate:     vehicle.Vehicle.Plate,
			Date:             input.Date,
			Status:           models.TourPending,
			TourType:         input.TourType,
		}
		st.Tours = append([]models.Tour{tour}, st.Tours...)
		return nil
	})
	if err != nil {
		rulesError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"tour": tour})
}

// UpdateTour rewrites the static fields of a tour; per-day metrics are fed by
// the stop-plan entry, not here.
func (tc *TourController) UpdateTour(c *gin.Context) {
	id := c.Param("id")

	var input tourInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour input: " + err.Error()})
		return
	}

	var updated models.Tour
	err := tc.Store.Update(func(st *store.State) error {
		tour := st.FindTour(id)
		if tour == nil {
			return rules.ErrRecordNotFound
		}
		vehicle := st.FindItem(input.VehicleID)
		if vehicle == nil || vehicle.Vehicle == nil {
			return rules.ErrNotAVehicle
		}
		// The tour may keep the vehicle it already has even when that one
		// is no longer in the free pool.
		if vehicle.Vehicle.Status != models.VehicleActive && vehicle.Vehicle.Plate != tour.VehiclePlate {
			return rules.ErrVehicleNotActive
		}
		tour.TourNumber = input.TourNumber
		tour.City = input.City
		tour.DriverID = input.DriverID
		tour.BeginnerDriverID = input.BeginnerDriverID
		tour.VehiclePlate = vehicle.Vehicle.Plate
		tour.Date = input.Date
		if input.TourType != "" {
			tour.TourType = input.TourType
		}
		updated = *tour
		return nil
	})
	if err != nil {
		rulesError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tour": updated})
}

// ListTours returns tours filtered by date and free-text search, ordered by
// tour number with numeric awareness (T-2 before T-10).
func (tc *TourController) ListTours(c *gin.Context) {
	date := c.Query("date")
	q := strings.ToLower(c.Query("q"))

	out := []models.Tour{}
	for _, t := range tc.Store.Tours() {
		if date != "" && t.Date != date {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.TourNumber), q) &&
			!strings.Contains(strings.ToLower(t.City), q) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return naturalLess(out[i].TourNumber, out[j].TourNumber)
	})

	c.JSON(http.StatusOK, gin.H{"data": out})
}

// CopyTours replicates a day's schedule onto another date.
func (tc *TourController) CopyTours(c *gin.Context) {
	var input copyToursInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	copied, err := tc.Rules.CopyTours(input.SourceDate, input.TargetDate)
	if err != nil {
		rulesError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tours copied", "copied": copied})
}

// naturalLess compares strings segment-wise so embedded numbers sort by value.
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		aRun, aNum, aRest := nextSegment(a)
		bRun, bNum, bRest := nextSegment(b)
		if aNum >= 0 && bNum >= 0 {
			if aNum != bNum {
				return aNum < bNum
			}
		} else if aRun != bRun {
			return aRun < bRun
		}
		a, b = aRest, bRest
	}
	return a == "" && b != ""
}

// nextSegment splits off the leading run of digits or non-digits; num is -1
// for a non-digit run.
func nextSegment(s string) (run string, num int, rest string) {
	isDigit := s[0] >= '0' && s[0] <= '9'
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9') == isDigit {
		i++
	}
	run, rest = s[:i], s[i:]
	num = -1
	if isDigit {
		if n, err := strconv.Atoi(run); err == nil {
			num = n
		}
	}
	return run, num, rest
}
