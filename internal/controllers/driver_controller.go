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

// createDriverInput is the new-driver form; new drivers always start Available
// with no vehicle.
type createDriverInput struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	GLSNumber  string `json:"gls_number" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	IsBeginner bool   `json:"is_beginner"`
}

// updateDriverInput covers master data only. Status moves through the status
// endpoint, the vehicle link through the assignment endpoints.
type updateDriverInput struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	GLSNumber  *string `json:"gls_number"`
	Phone      *string `json:"phone"`
	IsBeginner *bool   `json:"is_beginner"`
}

type statusInput struct {
	Status        models.DriverStatus `json:"status" binding:"required"`
	VacationStart string              `json:"vacation_start"`
	VacationEnd   string              `json:"vacation_end"`
	SickStart     string              `json:"sick_start"`
	SickEnd       string              `json:"sick_end"`
	// "base" or "driver"; required when sending a driver with a vehicle on vacation
	Vehicle string `json:"vehicle"`
}

type assignVehicleInput struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

type DriverController struct {
	Store *store.Store
	Rules *rules.Engine
}

func NewDriverController(s *store.Store, e *rules.Engine) *DriverController {
	return &DriverController{Store: s, Rules: e}
}

// CreateDriver adds a driver from the master-data form.
func (dc *DriverController) CreateDriver(c *gin.Context) {
	var input createDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver input: " + err.Error()})
		return
	}

	driver := models.Driver{
		ID:         "dr-" + uuid.NewString(),
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		GLSNumber:  input.GLSNumber,
		Phone:      input.Phone,
		IsBeginner: input.IsBeginner,
		Status:     models.DriverAvailable,
		CreatedAt:  time.Now(),
	}

	if err := dc.Store.Update(func(st *store.State) error {
		st.Drivers = append([]models.Driver{driver}, st.Drivers...)
		return nil
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create driver: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

// ListDrivers returns drivers filtered by free-text search (name or GLS
// identifier) and status.
func (dc *DriverController) ListDrivers(c *gin.Context) {
	q := strings.ToLower(c.Query("q"))
	status := c.Query("status")

	var out []models.Driver
	for _, d := range dc.Store.Drivers() {
		if status != "" && string(d.Status) != status {
			continue
		}
		if q != "" {
			name := strings.ToLower(d.FirstName + " " + d.LastName)
			if !strings.Contains(name, q) && !strings.Contains(strings.ToLower(d.GLSNumber), q) {
				continue
			}
		}
		out = append(out, d)
	}
	if out == nil {
		out = []models.Driver{}
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}

// GetDriver fetches a single driver by ID.
func (dc *DriverController) GetDriver(c *gin.Context) {
	id := c.Param("id")
	for _, d := range dc.Store.Drivers() {
		if d.ID == id {
			c.JSON(http.StatusOK, gin.H{"driver": d})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
}

// UpdateDriver modifies master data on an existing driver.
func (dc *DriverController) UpdateDriver(c *gin.Context) {
	id := c.Param("id")

	var input updateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	var updated models.Driver
	err := dc.Store.Update(func(st *store.State) error {
		driver := st.FindDriver(id)
		if driver == nil {
			return rules.ErrDriverNotFound
		}
		if input.FirstName != nil {
			driver.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			driver.LastName = *input.LastName
		}
		if input.GLSNumber != nil {
			driver.GLSNumber = *input.GLSNumber
		}
		if input.Phone != nil {
			driver.Phone = *input.Phone
		}
		if input.IsBeginner != nil {
			driver.IsBeginner = *input.IsBeginner
		}
		updated = *driver
		return nil
	})
	if err != nil {
		rulesError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"driver": updated})
}

// SetStatus applies a status transition through the rules engine. Sending a
// driver with a vehicle on vacation needs the base-or-driver answer in the
// payload, otherwise the engine refuses with a conflict.
func (dc *DriverController) SetStatus(c *gin.Context) {
	id := c.Param("id")

	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	switch input.Status {
	case models.DriverAvailable, models.DriverMissing, models.DriverOnVacation, models.DriverSick:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown driver status"})
		return
	}

	err := dc.Rules.SetDriverStatus(id, rules.StatusChange{
		Status:        input.Status,
		VacationStart: input.VacationStart,
		VacationEnd:   input.VacationEnd,
		SickStart:     input.SickStart,
		SickEnd:       input.SickEnd,
		Vehicle:       rules.VacationVehicle(input.Vehicle),
	})
	if err != nil {
		rulesError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// AssignVehicle hands a van to this driver against a signature.
func (dc *DriverController) AssignVehicle(c *gin.Context) {
	id := c.Param("id")

	var input assignVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := dc.Rules.AssignVehicle(id, input.VehicleID, input.Signature); err != nil {
		rulesError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle assigned"})
}

// ReleaseVehicle puts this driver's current van back to base.
func (dc *DriverController) ReleaseVehicle(c *gin.Context) {
	id := c.Param("id")

	var vehicleID string
	for _, d := range dc.Store.Drivers() {
		if d.ID == id {
			vehicleID = d.VehicleID
			break
		}
	}
	if vehicleID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No vehicle assigned to this driver"})
		return
	}

	if err := dc.Rules.ReleaseVehicle(vehicleID); err != nil {
		rulesError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle released"})
}

// DeleteDriver removes a driver and cleans up references via the engine.
func (dc *DriverController) DeleteDriver(c *gin.Context) {
	if err := dc.Rules.DeleteDriver(c.Param("id")); err != nil {
		rulesError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted"})
}
