// internal/rules/assignment.go
package rules

import (
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"

	"norhamtrans/internal/models"
	"norhamtrans/internal/store"
)

// AssignVehicle hands a van to a driver against a signature. Both sides of the
// 1:1 link are rewritten in one store update: a previous holder of the vehicle
// loses it, a previous vehicle of the driver is released, and only then is the
// new slot stamped. No intermediate state is observable.
func (e *Engine) AssignVehicle(driverID, vehicleID, signature string) error {
	return e.store.Update(func(st *store.State) error {
		driver := st.FindDriver(driverID)
		if driver == nil {
			return ErrDriverNotFound
		}
		item := st.FindItem(vehicleID)
		if item == nil {
			return ErrItemNotFound
		}
		if item.Vehicle == nil {
			return ErrNotAVehicle
		}
		if item.Vehicle.Status == models.VehicleInService {
			return ErrVehicleInService
		}
		if signature == "" {
			return ErrSignatureRequired
		}

		// The vehicle is the thing being moved: its current holder, if any,
		// simply loses the reference.
		if prev := item.Vehicle.AssignedTo; prev != "" && prev != driverID {
			if holder := st.FindDriver(prev); holder != nil {
				holder.VehicleID = ""
				holder.Plate = ""
			}
		}

		// A driver keeps at most one vehicle; the old one goes back to base.
		if driver.VehicleID != "" && driver.VehicleID != item.ID {
			if old := st.FindItem(driver.VehicleID); old != nil && old.Vehicle != nil {
				clearVehicleSlot(old.Vehicle)
				old.Vehicle.Status = models.VehicleActive
			}
		}

		stamp := e.now()
		item.Vehicle.AssignedTo = driver.ID
		item.Vehicle.Signature = signature
		item.Vehicle.AssignmentDate = &stamp
		item.Vehicle.Status = models.VehicleAllocated
		driver.VehicleID = item.ID
		driver.Plate = item.Vehicle.Plate

		logrus.WithFields(logrus.Fields{
			"driver": driver.ID, "vehicle": item.ID, "plate": item.Vehicle.Plate,
		}).Info("vehicle assigned")
		return nil
	})
}

// ReleaseVehicle puts a van back to base and detaches whoever holds it.
func (e *Engine) ReleaseVehicle(vehicleID string) error {
	return e.store.Update(func(st *store.State) error {
		item := st.FindItem(vehicleID)
		if item == nil {
			return ErrItemNotFound
		}
		if item.Vehicle == nil {
			return ErrNotAVehicle
		}
		releaseVehicle(st, item)
		return nil
	})
}

// SetVehicleStatus moves a van between Active and Service. Entering service
// always force-releases the current assignment; leaving service never restores
// one. Allocated is not settable here, it only results from AssignVehicle.
func (e *Engine) SetVehicleStatus(vehicleID string, status models.VehicleStatus, location string) error {
	return e.store.Update(func(st *store.State) error {
		item := st.FindItem(vehicleID)
		if item == nil {
			return ErrItemNotFound
		}
		if item.Vehicle == nil {
			return ErrNotAVehicle
		}

		switch status {
		case models.VehicleInService:
			if !validServiceLocation(location) {
				return ErrBadServiceLocation
			}
			releaseVehicle(st, item)
			item.Vehicle.Status = models.VehicleInService
			item.Vehicle.ServiceLocation = location
			logrus.WithFields(logrus.Fields{
				"vehicle": item.ID, "location": location,
			}).Info("vehicle sent to service")
		case models.VehicleActive:
			item.Vehicle.Status = models.VehicleActive
			item.Vehicle.ServiceLocation = ""
		default:
			return ErrStatusViaAssign
		}
		return nil
	})
}

// AssignStock hands out quantity units of a clothing/other item to a driver and
// prepends the ledger record. Stock is decremented, floored at zero.
func (e *Engine) AssignStock(driverID, itemID string, quantity int, signature string) (models.Assignment, error) {
	var record models.Assignment
	err := e.store.Update(func(st *store.State) error {
		driver := st.FindDriver(driverID)
		if driver == nil {
			return ErrDriverNotFound
		}
		item := st.FindItem(itemID)
		if item == nil {
			return ErrItemNotFound
		}
		if item.Stock == nil {
			return ErrNotStock
		}
		if quantity <= 0 || quantity > item.Stock.Quantity {
			return ErrBadQuantity
		}
		if signature == "" {
			return ErrSignatureRequired
		}

		plate := driver.Plate
		if plate == "" {
			plate = "---"
		}
		record = models.Assignment{
			ID:          "rec-" + uuid.NewString(),
			DriverID:    driver.ID,
			ItemID:      item.ID,
			Quantity:    quantity,
			Date:        e.now(),
			Signature:   signature,
			DriverPlate: plate,
		}

		item.Stock.Quantity -= quantity
		if item.Stock.Quantity < 0 {
			item.Stock.Quantity = 0
		}
		item.Stock.History = append([]models.Assignment{record}, item.Stock.History...)
		return nil
	})
	return record, err
}

// ReturnAssignment takes a durable item back: the record's original quantity
// goes back on stock and the record is stamped. Returning twice is rejected so
// stock is never double-credited; consumables have no return path at all.
func (e *Engine) ReturnAssignment(itemID, recordID string) error {
	return e.store.Update(func(st *store.State) error {
		item := st.FindItem(itemID)
		if item == nil {
			return ErrItemNotFound
		}
		if item.Stock == nil {
			return ErrNotStock
		}
		if item.Stock.Consumable {
			return ErrConsumableReturn
		}
		for i := range item.Stock.History {
			rec := &item.Stock.History[i]
			if rec.ID != recordID {
				continue
			}
			if rec.ReturnedAt != nil {
				return ErrAlreadyReturned
			}
			stamp := e.now()
			rec.ReturnedAt = &stamp
			item.Stock.Quantity += rec.Quantity
			return nil
		}
		return ErrRecordNotFound
	})
}

// VacationVehicle is the dispatcher's answer to "where does the van stay"
// when a driver with an assigned vehicle goes on vacation.
type VacationVehicle string

const (
	VehicleStaysAtBase     VacationVehicle = "base"
	VehicleStaysWithDriver VacationVehicle = "driver"
)

// StatusChange carries a driver status transition plus its absence range and,
// when entering vacation with a vehicle, the base-or-driver decision.
type StatusChange struct {
	Status        models.DriverStatus
	VacationStart string
	VacationEnd   string
	SickStart     string
	SickEnd       string
	Vehicle       VacationVehicle
}

// SetDriverStatus applies a status transition. Moving a driver who holds a
// vehicle into vacation requires the caller to have resolved the
// base-or-driver question first; without an answer nothing is committed.
func (e *Engine) SetDriverStatus(driverID string, change StatusChange) error {
	return e.store.Update(func(st *store.State) error {
		driver := st.FindDriver(driverID)
		if driver == nil {
			return ErrDriverNotFound
		}

		if change.Status == models.DriverOnVacation && driver.VehicleID != "" {
			switch change.Vehicle {
			case VehicleStaysAtBase:
				if item := st.FindItem(driver.VehicleID); item != nil && item.Vehicle != nil {
					releaseVehicle(st, item)
				}
			case VehicleStaysWithDriver:
				// assignment untouched
			default:
				return ErrVacationDecision
			}
		}

		driver.Status = change.Status
		driver.VacationStart = change.VacationStart
		driver.VacationEnd = change.VacationEnd
		driver.SickStart = change.SickStart
		driver.SickEnd = change.SickEnd
		return nil
	})
}

// DeleteDriver removes a driver and cleans the references that would
// otherwise dangle: the assigned vehicle is released and pending tours lose
// the driver. Ledger records keep their driver ID; name lookups on them fall
// back to "unknown".
func (e *Engine) DeleteDriver(driverID string) error {
	return e.store.Update(func(st *store.State) error {
		driver := st.FindDriver(driverID)
		if driver == nil {
			return ErrDriverNotFound
		}

		if driver.VehicleID != "" {
			if item := st.FindItem(driver.VehicleID); item != nil && item.Vehicle != nil {
				releaseVehicle(st, item)
			}
		}
		for i := range st.Tours {
			tour := &st.Tours[i]
			if tour.Status != models.TourPending {
				continue
			}
			if tour.DriverID == driverID {
				tour.DriverID = ""
			}
			if tour.BeginnerDriverID == driverID {
				tour.BeginnerDriverID = ""
			}
		}

		kept := st.Drivers[:0]
		for _, d := range st.Drivers {
			if d.ID != driverID {
				kept = append(kept, d)
			}
		}
		st.Drivers = kept
		return nil
	})
}

// releaseVehicle clears the slot, reactivates the van and detaches any driver
// referencing it. Shared by release, service transition, vacation and delete.
func releaseVehicle(st *store.State, item *models.InventoryItem) {
	clearVehicleSlot(item.Vehicle)
	item.Vehicle.Status = models.VehicleActive
	for i := range st.Drivers {
		if st.Drivers[i].VehicleID == item.ID {
			st.Drivers[i].VehicleID = ""
			st.Drivers[i].Plate = ""
		}
	}
}

func clearVehicleSlot(v *models.VehicleDetail) {
	v.AssignedTo = ""
	v.Signature = ""
	v.AssignmentDate = nil
}
