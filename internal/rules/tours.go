// internal/rules/tours.go
package rules

import (
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"

	"norhamtrans/internal/models"
	"norhamtrans/internal/store"
)

// CopyTours re-dispatches a day's schedule onto another date. Static fields
// (tour number, city, driver, plate snapshot, type) are copied verbatim;
// the per-day metrics start fresh. A tour number already present on the
// target date is skipped instead of duplicated. Returns how many tours were
// created; a source date without tours is an error and mutates nothing.
func (e *Engine) CopyTours(sourceDate, targetDate string) (int, error) {
	copied := 0
	err := e.store.Update(func(st *store.State) error {
		var sources []models.Tour
		existing := map[string]bool{}
		for _, t := range st.Tours {
			switch t.Date {
			case sourceDate:
				sources = append(sources, t)
			case targetDate:
				existing[t.TourNumber] = true
			}
		}
		if len(sources) == 0 {
			return ErrNoToursFound
		}

		var fresh []models.Tour
		for _, src := range sources {
			if existing[src.TourNumber] {
				continue
			}
			dup := src
			dup.ID = uuid.NewString()
			dup.Date = targetDate
			dup.Status = models.TourPending
			dup.Progress = 0
			dup.TotalPackages = 0
			dup.TotalStops = 0
			fresh = append(fresh, dup)
		}
		st.Tours = append(fresh, st.Tours...)
		copied = len(fresh)
		return nil
	})
	if err == nil {
		logrus.WithFields(logrus.Fields{
			"source": sourceDate, "target": targetDate, "copied": copied,
		}).Info("tours copied")
	}
	return copied, err
}
