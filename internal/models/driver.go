// internal/models/driver.go
package models

import "time"

type DriverStatus string

const (
	DriverAvailable  DriverStatus = "Available"
	DriverMissing    DriverStatus = "Missing"
	DriverOnVacation DriverStatus = "Vacation"
	DriverSick       DriverStatus = "Sick"
)

// Driver is a courier on the payroll. VehicleID links to the inventory item
// of the van currently signed out to them; Plate is a display copy of that
// vehicle's plate and is maintained by the rules engine, never edited directly.
type Driver struct {
	ID         string       `json:"id"`
	FirstName  string       `json:"first_name" binding:"required"`
	LastName   string       `json:"last_name" binding:"required"`
	GLSNumber  string       `json:"gls_number"`
	Phone      string       `json:"phone"`
	VehicleID  string       `json:"vehicle_id"`
	Plate      string       `json:"plate"`
	IsBeginner bool         `json:"is_beginner"`
	Status     DriverStatus `json:"status"`

	// Absence ranges, yyyy-mm-dd. Only meaningful for the matching status.
	VacationStart string `json:"vacation_start,omitempty"`
	VacationEnd   string `json:"vacation_end,omitempty"`
	SickStart     string `json:"sick_start,omitempty"`
	SickEnd       string `json:"sick_end,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// FullName is used for ledger display; callers fall back to "unknown"
// when the driver no longer exists.
func (d Driver) FullName() string {
	return d.FirstName + " " + d.LastName
}
