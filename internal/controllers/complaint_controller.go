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

type complaintInput struct {
	TourNumber    string `json:"tour_number" binding:"required"`
	DriverID      string `json:"driver_id" binding:"required"`
	PackageNumber string `json:"package_number" binding:"required"`
	Address       string `json:"address"`
	PostalCode    string `json:"postal_code"`
}

type ComplaintController struct {
	Store *store.Store
}

func NewComplaintController(s *store.Store) *ComplaintController {
	return &ComplaintController{Store: s}
}

// CreateComplaint files a new customer complaint, unresolved.
func (cc *ComplaintController) CreateComplaint(c *gin.Context) {
	var input complaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint input: " + err.Error()})
		return
	}

	complaint := models.Complaint{
		ID:            uuid.NewString(),
		TourNumber:    input.TourNumber,
		DriverID:      input.DriverID,
		PackageNumber: input.PackageNumber,
		Address:       input.Address,
		PostalCode:    input.PostalCode,
	}

	if err := cc.Store.Update(func(st *store.State) error {
		st.Complaints = append([]models.Complaint{complaint}, st.Complaints...)
		return nil
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create complaint: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"complaint": complaint})
}

// ListComplaints returns all complaints with driver names resolved; dangling
// driver references show as "unknown".
func (cc *ComplaintController) ListComplaints(c *gin.Context) {
	drivers := cc.Store.Drivers()

	out := []gin.H{}
	for _, comp := range cc.Store.Complaints() {
		out = append(out, gin.H{
			"complaint":   comp,
			"driver_name": driverName(drivers, comp.DriverID),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}

// ResolveComplaint marks a complaint handled and stamps the time.
func (cc *ComplaintController) ResolveComplaint(c *gin.Context) {
	id := c.Param("id")

	var resolved models.Complaint
	err := cc.Store.Update(func(st *store.State) error {
		complaint := st.FindComplaint(id)
		if complaint == nil {
			return rules.ErrRecordNotFound
		}
		now := time.Now()
		complaint.Resolved = true
		complaint.ResolvedAt = &now
		resolved = *complaint
		return nil
	})
	if err != nil {
		rulesError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"complaint": resolved})
}
