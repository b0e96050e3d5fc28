// internal/models/stopplan.go
package models

// StopPlan is a per-date record of delivered package/stop counts. Addresses is
// a denormalized "tourNumber - city" label, not a foreign key.
type StopPlan struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // yyyy-mm-dd
	Addresses string `json:"addresses"`
	Packages  int    `json:"packages"`
	Stops     int    `json:"stops"`
}
