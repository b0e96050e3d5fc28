// internal/models/complaint.go
package models

import "time"

type Complaint struct {
	ID            string     `json:"id"`
	TourNumber    string     `json:"tour_number" binding:"required"`
	DriverID      string     `json:"driver_id"`
	PackageNumber string     `json:"package_number"`
	Address       string     `json:"address"`
	PostalCode    string     `json:"postal_code"`
	Resolved      bool       `json:"resolved"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}
