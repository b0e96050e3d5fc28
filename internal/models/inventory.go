// internal/models/inventory.go
package models

import "time"

type ItemKind string

const (
	KindClothing ItemKind = "Clothing"
	KindVehicle  ItemKind = "Vehicle"
	KindOther    ItemKind = "Other"
)

type VehicleStatus string

const (
	VehicleActive    VehicleStatus = "Active"
	VehicleAllocated VehicleStatus = "Allocated"
	VehicleInService VehicleStatus = "Service"
)

// InventoryItem is a tagged union over Kind: exactly one of Stock or Vehicle
// is set. Clothing and Other items carry Stock (a quantity plus an assignment
// ledger); vehicles carry Vehicle (a single live assignment slot, no ledger).
type InventoryItem struct {
	ID        string         `json:"id"`
	Kind      ItemKind       `json:"kind"`
	Name      string         `json:"name"`
	Brand     string         `json:"brand,omitempty"`
	Stock     *StockDetail   `json:"stock,omitempty"`
	Vehicle   *VehicleDetail `json:"vehicle,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// StockDetail is the countable side of the inventory. Consumable stock has no
// return path: once assigned the quantity stays decremented.
type StockDetail struct {
	Size       string       `json:"size,omitempty"`
	Quantity   int          `json:"quantity"`
	Consumable bool         `json:"consumable"`
	History    []Assignment `json:"history"`
}

// VehicleDetail holds the single-slot assignment state of a van. AssignedTo,
// Signature and AssignmentDate are set and cleared together.
type VehicleDetail struct {
	Plate           string        `json:"plate"`
	Status          VehicleStatus `json:"status"`
	ServiceLocation string        `json:"service_location,omitempty"`
	HUExpiration    string        `json:"hu_expiration,omitempty"` // yyyy-mm-dd
	AssignedTo      string        `json:"assigned_to,omitempty"`
	Signature       string        `json:"signature,omitempty"`
	AssignmentDate  *time.Time    `json:"assignment_date,omitempty"`
}

// Assignment is one ledger entry on a stock item. DriverPlate snapshots the
// plate the driver held at hand-out time.
type Assignment struct {
	ID          string     `json:"id"`
	DriverID    string     `json:"driver_id"`
	ItemID      string     `json:"item_id"`
	Quantity    int        `json:"quantity"`
	Date        time.Time  `json:"date"`
	Signature   string     `json:"signature"`
	DriverPlate string     `json:"driver_plate,omitempty"`
	ReturnedAt  *time.Time `json:"returned_at,omitempty"`
}
