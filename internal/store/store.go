// Package store owns the in-memory fleet state. One Store instance exists per
// process; it is created in main and injected into controllers and the rules
// engine. Every mutation runs under the write lock and is mirrored to the
// snapshots table afterwards, so compound updates (release one vehicle, assign
// another, restamp the driver) are never observable half-done.
package store

import (
	"sync"

	"gorm.io/gorm"

	"norhamtrans/internal/models"
)

// State is the full set of collections. Mutating callbacks passed to
// Store.Update receive it by pointer and may rewrite any collection.
type State struct {
	Drivers    []models.Driver
	Inventory  []models.InventoryItem
	Tours      []models.Tour
	Stops      []models.StopPlan
	Complaints []models.Complaint
	Controls   []models.ControlChecklist
}

type Store struct {
	mu    sync.RWMutex
	db    *gorm.DB
	state State
}

// New creates a Store backed by the given snapshot database. A nil handle is
// allowed (tests run without a database); mirroring is then skipped.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Update runs fn against the live state under the write lock. If fn returns an
// error the state keeps whatever fn did to it; fn must therefore validate
// first and mutate after. On return all collections are mirrored.
func (s *Store) Update(fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.state); err != nil {
		return err
	}
	s.persistAll()
	return nil
}

// View runs fn against the state under the read lock. fn must not retain or
// mutate anything it is handed.
func (s *Store) View(fn func(st *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

// Drivers returns a copy of the driver collection.
func (s *Store) Drivers() []models.Driver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Driver, len(s.state.Drivers))
	copy(out, s.state.Drivers)
	return out
}

// Inventory returns a copy of the inventory collection.
func (s *Store) Inventory() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.InventoryItem, len(s.state.Inventory))
	copy(out, s.state.Inventory)
	return out
}

// Tours returns a copy of the tour collection.
func (s *Store) Tours() []models.Tour {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Tour, len(s.state.Tours))
	copy(out, s.state.Tours)
	return out
}

// Stops returns a copy of the stop-plan collection.
func (s *Store) Stops() []models.StopPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StopPlan, len(s.state.Stops))
	copy(out, s.state.Stops)
	return out
}

// Complaints returns a copy of the complaint collection.
func (s *Store) Complaints() []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Complaint, len(s.state.Complaints))
	copy(out, s.state.Complaints)
	return out
}

// Controls returns a copy of the control-checklist collection.
func (s *Store) Controls() []models.ControlChecklist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ControlChecklist, len(s.state.Controls))
	copy(out, s.state.Controls)
	return out
}

// --- lookup helpers for mutating callbacks ---

// FindDriver returns a pointer into the live driver slice, or nil.
func (st *State) FindDriver(id string) *models.Driver {
	for i := range st.Drivers {
		if st.Drivers[i].ID == id {
			return &st.Drivers[i]
		}
	}
	return nil
}

// FindItem returns a pointer into the live inventory slice, or nil.
func (st *State) FindItem(id string) *models.InventoryItem {
	for i := range st.Inventory {
		if st.Inventory[i].ID == id {
			return &st.Inventory[i]
		}
	}
	return nil
}

// FindTour returns a pointer into the live tour slice, or nil.
func (st *State) FindTour(id string) *models.Tour {
	for i := range st.Tours {
		if st.Tours[i].ID == id {
			return &st.Tours[i]
		}
	}
	return nil
}

// FindComplaint returns a pointer into the live complaint slice, or nil.
func (st *State) FindComplaint(id string) *models.Complaint {
	for i := range st.Complaints {
		if st.Complaints[i].ID == id {
			return &st.Complaints[i]
		}
	}
	return nil
}
