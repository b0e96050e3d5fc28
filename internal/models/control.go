// internal/models/control.go
package models

import "time"

// ControlChecklist is one pre-departure safety check, signed by the driver.
type ControlChecklist struct {
	ID               string    `json:"id"`
	DriverID         string    `json:"driver_id" binding:"required"`
	Date             time.Time `json:"date"`
	SafetyNet        bool      `json:"safety_net"`
	FireExtinguisher bool      `json:"fire_extinguisher"`
	SafeShoes        bool      `json:"safe_shoes"`
	Cleanliness      bool      `json:"cleanliness"`
	Signature        string    `json:"signature"`
}

// Passed reports whether every check on the list was ticked.
func (c ControlChecklist) Passed() bool {
	return c.SafetyNet && c.FireExtinguisher && c.SafeShoes && c.Cleanliness
}
