package store

import (
	"time"

	"norhamtrans/internal/models"
)

// seedState is the default data set used when a collection has never been
// snapshotted.
func seedState() State {
	now := time.Now()
	return State{
		Drivers: []models.Driver{
			{
				ID: "dr-seed-1", FirstName: "John", LastName: "Doe",
				GLSNumber: "GLS-001", Phone: "+49 123 456789",
				Status: models.DriverAvailable, CreatedAt: now,
			},
			{
				ID: "dr-seed-2", FirstName: "Jane", LastName: "Smith",
				GLSNumber: "GLS-002", Phone: "+49 987 654321",
				Status: models.DriverAvailable, CreatedAt: now,
			},
		},
		Inventory: []models.InventoryItem{
			{
				ID: "it-seed-1", Kind: models.KindClothing, Name: "Warnschutzjacke",
				Stock:     &models.StockDetail{Size: "L", Quantity: 50, History: []models.Assignment{}},
				CreatedAt: now,
			},
			{
				ID: "it-seed-2", Kind: models.KindClothing, Name: "Sicherheitsschuhe S3",
				Stock:     &models.StockDetail{Size: "42", Quantity: 20, History: []models.Assignment{}},
				CreatedAt: now,
			},
			{
				ID: "it-seed-3", Kind: models.KindVehicle, Name: "Mercedes Sprinter", Brand: "Mercedes",
				Vehicle:   &models.VehicleDetail{Plate: "B-XY 1234", Status: models.VehicleActive},
				CreatedAt: now,
			},
			{
				ID: "it-seed-4", Kind: models.KindOther, Name: "AdBlue 10L",
				Stock:     &models.StockDetail{Quantity: 15, Consumable: true, History: []models.Assignment{}},
				CreatedAt: now,
			},
			{
				ID: "it-seed-5", Kind: models.KindOther, Name: "Transportkarre (Sackkarre)",
				Stock:     &models.StockDetail{Quantity: 8, History: []models.Assignment{}},
				CreatedAt: now,
			},
		},
		Tours:      []models.Tour{},
		Stops:      []models.StopPlan{},
		Complaints: []models.Complaint{},
		Controls:   []models.ControlChecklist{},
	}
}
