// Package rules is the mutation layer over the store: every operation that
// touches more than one record (driver↔vehicle assignment, the stock ledger,
// status side effects, tour replication) goes through the Engine so that the
// cross-entity invariants hold after every call.
package rules

import (
	"errors"
	"time"

	"norhamtrans/internal/store"
)

var (
	ErrDriverNotFound     = errors.New("driver not found")
	ErrItemNotFound       = errors.New("inventory item not found")
	ErrNotAVehicle        = errors.New("item is not a vehicle")
	ErrNotStock           = errors.New("item carries no stock")
	ErrVehicleInService   = errors.New("vehicle is in service")
	ErrVehicleNotActive   = errors.New("vehicle is not available for tours")
	ErrSignatureRequired  = errors.New("signature required")
	ErrBadQuantity        = errors.New("quantity must be positive and within stock")
	ErrConsumableReturn   = errors.New("consumable assignments cannot be returned")
	ErrRecordNotFound     = errors.New("assignment record not found")
	ErrAlreadyReturned    = errors.New("assignment already returned")
	ErrBadServiceLocation = errors.New("unknown service location")
	ErrStatusViaAssign    = errors.New("allocated status is set by assignment only")
	ErrVacationDecision   = errors.New("vehicle decision required for vacation")
	ErrNoToursFound       = errors.New("no tours found for source date")
)

// ServiceLocations is the fixed set of workshops a vehicle can be sent to.
var ServiceLocations = []string{"Händler", "Orhan", "Ohm"}

type Engine struct {
	store *store.Store
	now   func() time.Time
}

func New(s *store.Store) *Engine {
	return &Engine{store: s, now: time.Now}
}

func validServiceLocation(loc string) bool {
	if loc == "" {
		return true
	}
	for _, known := range ServiceLocations {
		if loc == known {
			return true
		}
	}
	return false
}
