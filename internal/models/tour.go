// internal/models/tour.go
package models

type TourStatus string

const (
	TourPending   TourStatus = "Pending"
	TourActive    TourStatus = "Active"
	TourCompleted TourStatus = "Completed"
	TourCancelled TourStatus = "Cancelled"
)

type TourType string

const (
	TourFixed    TourType = "Fest Tour"
	TourSpringer TourType = "Springer"
)

// Tour is one day's dispatch of a tour number. VehiclePlate is a snapshot of
// the plate at save time, not a live reference into the inventory.
type Tour struct {
	ID               string     `json:"id"`
	TourNumber       string     `json:"tour_number" binding:"required"`
	City             string     `json:"city"`
	DriverID         string     `json:"driver_id"`
	BeginnerDriverID string     `json:"beginner_driver_id,omitempty"`
	VehiclePlate     string     `json:"vehicle_plate"`
	Date             string     `json:"date"` // yyyy-mm-dd
	Status           TourStatus `json:"status"`
	TourType         TourType   `json:"tour_type"`
	Progress         int        `json:"progress"`
	TotalPackages    int        `json:"total_packages"`
	TotalStops       int        `json:"total_stops"`
}
