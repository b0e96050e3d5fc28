package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"norhamtrans/internal/models"
	"norhamtrans/internal/rules"
	"norhamtrans/internal/store"
)

type controlInput struct {
	DriverID         string `json:"driver_id" binding:"required"`
	SafetyNet        bool   `json:"safety_net"`
	FireExtinguisher bool   `json:"fire_extinguisher"`
	SafeShoes        bool   `json:"safe_shoes"`
	Cleanliness      bool   `json:"cleanliness"`
	Signature        string `json:"signature" binding:"required"`
}

type ControlController struct {
	Store *store.Store
}

func NewControlController(s *store.Store) *ControlController {
	return &ControlController{Store: s}
}

// CreateChecklist records one signed pre-departure safety check.
func (cc *ControlController) CreateChecklist(c *gin.Context) {
	var input controlInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checklist input: " + err.Error()})
		return
	}

	checklist := models.ControlChecklist{
		ID:               "c-" + uuid.NewString(),
		DriverID:         input.DriverID,
		Date:             time.Now(),
		SafetyNet:        input.SafetyNet,
		FireExtinguisher: input.FireExtinguisher,
		SafeShoes:        input.SafeShoes,
		Cleanliness:      input.Cleanliness,
		Signature:        input.Signature,
	}

	err := cc.Store.Update(func(st *store.State) error {
		if st.FindDriver(input.DriverID) == nil {
			return rules.ErrDriverNotFound
		}
		st.Controls = append([]models.ControlChecklist{checklist}, st.Controls...)
		return nil
	})
	if err != nil {
		rulesError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"checklist": checklist})
}

// ListChecklists returns all checks, newest first, with driver names and the
// pass flag resolved for display.
func (cc *ControlController) ListChecklists(c *gin.Context) {
	drivers := cc.Store.Drivers()

	out := []gin.H{}
	for _, check := range cc.Store.Controls() {
		out = append(out, gin.H{
			"checklist":   check,
			"driver_name": driverName(drivers, check.DriverID),
			"passed":      check.Passed(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}
