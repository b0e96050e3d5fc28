package store

import (
	"encoding/json"
	"errors"

	"github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"norhamtrans/internal/models"
)

// Stable blob names. The persisted layout is one row per collection; there is
// no schema version and no migration between format revisions.
const (
	snapDrivers    = "drivers"
	snapInventory  = "inventory"
	snapTours      = "tours"
	snapStops      = "stops"
	snapComplaints = "complaints"
	snapControls   = "controls"
)

// Load rehydrates every collection from its snapshot row. Collections without
// a row fall back to the seed set. Call once at startup, before the router
// starts serving.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		s.state = seedState()
		return nil
	}

	seed := seedState()
	if err := s.restore(snapDrivers, &s.state.Drivers, seed.Drivers); err != nil {
		return err
	}
	if err := s.restore(snapInventory, &s.state.Inventory, seed.Inventory); err != nil {
		return err
	}
	if err := s.restore(snapTours, &s.state.Tours, seed.Tours); err != nil {
		return err
	}
	if err := s.restore(snapStops, &s.state.Stops, seed.Stops); err != nil {
		return err
	}
	if err := s.restore(snapComplaints, &s.state.Complaints, seed.Complaints); err != nil {
		return err
	}
	if err := s.restore(snapControls, &s.state.Controls, seed.Controls); err != nil {
		return err
	}
	return nil
}

// restore unmarshals one snapshot row into target, or assigns the fallback
// when no row exists yet.
func (s *Store) restore(name string, target interface{}, fallback interface{}) error {
	var snap models.Snapshot
	if err := s.db.First(&snap, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			assign(target, fallback)
			return nil
		}
		return err
	}
	if err := json.Unmarshal(snap.Data, target); err != nil {
		// A blob we cannot read is treated like a missing one rather than
		// blocking startup; the old row is overwritten on the next mutation.
		logrus.WithError(err).WithField("snapshot", name).Warn("discarding unreadable snapshot")
		assign(target, fallback)
	}
	return nil
}

func assign(target, value interface{}) {
	switch t := target.(type) {
	case *[]models.Driver:
		*t = value.([]models.Driver)
	case *[]models.InventoryItem:
		*t = value.([]models.InventoryItem)
	case *[]models.Tour:
		*t = value.([]models.Tour)
	case *[]models.StopPlan:
		*t = value.([]models.StopPlan)
	case *[]models.Complaint:
		*t = value.([]models.Complaint)
	case *[]models.ControlChecklist:
		*t = value.([]models.ControlChecklist)
	}
}

// persistAll mirrors every collection. Mirroring is best effort: the in-memory
// state is the source of truth for the running process, so a failed write is
// logged and the mutation stands.
func (s *Store) persistAll() {
	if s.db == nil {
		return
	}
	s.persist(snapDrivers, s.state.Drivers)
	s.persist(snapInventory, s.state.Inventory)
	s.persist(snapTours, s.state.Tours)
	s.persist(snapStops, s.state.Stops)
	s.persist(snapComplaints, s.state.Complaints)
	s.persist(snapControls, s.state.Controls)
}

func (s *Store) persist(name string, collection interface{}) {
	data, err := json.Marshal(collection)
	if err != nil {
		logrus.WithError(err).WithField("snapshot", name).Error("could not marshal collection")
		return
	}

	snap := models.Snapshot{Name: name, Data: data}
	if err := s.db.Create(&snap).Error; err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			err = s.db.Model(&models.Snapshot{}).Where("name = ?", name).Update("data", data).Error
		}
		if err != nil {
			logrus.WithError(err).WithField("snapshot", name).Error("could not persist collection")
		}
	}
}
