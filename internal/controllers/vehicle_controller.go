package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"norhamtrans/internal/models"
	"norhamtrans/internal/rules"
	"norhamtrans/internal/store"
)

// --- Helper Structs for Request Bodies ---

type createVehicleInput struct {
	Name         string `json:"name" binding:"required"`
	Brand        string `json:"brand"`
	Plate        string `json:"plate" binding:"required"`
	HUExpiration string `json:"hu_expiration"`
}

type updateVehicleInput struct {
	Name         *string `json:"name"`
	Brand        *string `json:"brand"`
	Plate        *string `json:"plate"`
	HUExpiration *string `json:"hu_expiration"`
}

// vehicleStatusInput moves a van to service (with an optional workshop from
// the known provider set) or back to active.
type vehicleStatusInput struct {
	Status   models.VehicleStatus `json:"status" binding:"required"`
	Location string               `json:"location"`
}

type VehicleController struct {
	Store *store.Store
	Rules *rules.Engine
}

func NewVehicleController(s *store.Store, e *rules.Engine) *VehicleController {
	return &VehicleController{Store: s, Rules: e}
}

// CreateVehicle adds a van; new vehicles always start Active and unassigned.
func (vc *VehicleController) CreateVehicle(c *gin.Context) {
	var input createVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle input: " + err.Error()})
		return
	}

	item := models.InventoryItem{
		ID:    "it-" + uuid.NewString(),
		Kind:  models.KindVehicle,
		Name:  input.Name,
		Brand: input.Brand,
		Vehicle: &models.VehicleDetail{
			Plate:        strings.ToUpper(strings.TrimSpace(input.Plate)),
			Status:       models.VehicleActive,
			HUExpiration: input.HUExpiration,
		},
		CreatedAt: time.Now(),
	}

	if err := vc.Store.Update(func(st *store.State) error {
		st.Inventory = append([]models.InventoryItem{item}, st.Inventory...)
		return nil
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vehicle": item})
}

// ListVehicles returns the fleet, with holder names resolved for display.
func (vc *VehicleController) ListVehicles(c *gin.Context) {
	q := strings.ToLower(c.Query("q"))
	drivers := vc.Store.Drivers()

	out := []gin.H{}
	for _, item := range vc.Store.Inventory() {
		if item.Vehicle == nil {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.Vehicle.Plate), q) {
			continue
		}
		entry := gin.H{"vehicle": item}
		if item.Vehicle.AssignedTo != "" {
			entry["driver_name"] = driverName(drivers, item.Vehicle.AssignedTo)
		}
		out = append(out, entry)
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}

// UpdateVehicle modifies a van's master data. A plate edit is propagated to
// the holding driver's display plate so the link cannot silently break.
func (vc *VehicleController) UpdateVehicle(c *gin.Context) {
	id := c.Param("id")

	var input updateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	var updated models.InventoryItem
	err := vc.Store.Update(func(st *store.State) error {
		item := st.FindItem(id)
		if item == nil {
			return rules.ErrItemNotFound
		}
		if item.Vehicle == nil {
			return rules.ErrNotAVehicle
		}
		if input.Name != nil {
			item.Name = *input.Name
		}
		if input.Brand != nil {
			item.Brand = *input.Brand
		}
		if input.HUExpiration != nil {
			item.Vehicle.HUExpiration = *input.HUExpiration
		}
		if input.Plate != nil {
			item.Vehicle.Plate = strings.ToUpper(strings.TrimSpace(*input.Plate))
			if holder := st.FindDriver(item.Vehicle.AssignedTo); holder != nil {
				holder.Plate = item.Vehicle.Plate
			}
		}
		updated = *item
		return nil
	})
	if err != nil {
		rulesError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle": updated})
}

// SetStatus routes a service transition through the rules engine.
func (vc *VehicleController) SetStatus(c *gin.Context) {
	id := c.Param("id")

	var input vehicleStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := vc.Rules.SetVehicleStatus(id, input.Status, input.Location); err != nil {
		rulesError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle status updated"})
}

// Release puts the van back to base regardless of who holds it.
func (vc *VehicleController) Release(c *gin.Context) {
	if err := vc.Rules.ReleaseVehicle(c.Param("id")); err != nil {
		rulesError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle released"})
}

// MaintenanceAlerts returns vehicles whose HU inspection is expired or due
// within the alert window, most urgent first.
func (vc *VehicleController) MaintenanceAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": vc.Rules.MaintenanceAlerts()})
}
