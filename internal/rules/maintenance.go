// internal/rules/maintenance.go
package rules

import (
	"sort"
	"time"

	logrus "github.com/sirupsen/logrus"

	"norhamtrans/internal/store"
)

// A vehicle enters the alert list this many days before its HU inspection
// runs out.
const maintenanceWindowDays = 30

// MaintenanceAlert is one vehicle whose HU inspection is expired or due.
// Expired vehicles carry a negative DaysLeft.
type MaintenanceAlert struct {
	ItemID       string `json:"item_id"`
	Name         string `json:"name"`
	Plate        string `json:"plate"`
	HUExpiration string `json:"hu_expiration"`
	DaysLeft     int    `json:"days_left"`
	Expired      bool   `json:"expired"`
}

// MaintenanceAlerts derives the current alert set from the inventory. It owns
// no state and mutates nothing; the result is recomputed on every call and
// sorted most urgent first.
func (e *Engine) MaintenanceAlerts() []MaintenanceAlert {
	today := dateOnly(e.now())
	alerts := []MaintenanceAlert{}

	e.store.View(func(st *store.State) {
		for _, item := range st.Inventory {
			if item.Vehicle == nil || item.Vehicle.HUExpiration == "" {
				continue
			}
			expiry, err := time.Parse("2006-01-02", item.Vehicle.HUExpiration)
			if err != nil {
				logrus.WithField("item", item.ID).Debug("skipping unparsable HU date")
				continue
			}
			daysLeft := int(expiry.Sub(today).Hours() / 24)
			expired := today.After(expiry)
			if !expired && daysLeft > maintenanceWindowDays {
				continue
			}
			alerts = append(alerts, MaintenanceAlert{
				ItemID:       item.ID,
				Name:         item.Name,
				Plate:        item.Vehicle.Plate,
				HUExpiration: item.Vehicle.HUExpiration,
				DaysLeft:     daysLeft,
				Expired:      expired,
			})
		}
	})

	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].DaysLeft < alerts[j].DaysLeft
	})
	return alerts
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
