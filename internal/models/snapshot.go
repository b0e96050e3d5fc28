// internal/models/snapshot.go
package models

import "time"

// Snapshot is the only table-backed model: one row per collection, holding the
// whole collection as a JSON blob under a stable name. There is no schema
// version field; format changes are not migrated.
type Snapshot struct {
	Name      string    `gorm:"primaryKey" json:"name"`
	Data      []byte    `gorm:"type:jsonb" json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}
