package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"norhamtrans/internal/models"
	"norhamtrans/internal/rules"
	"norhamtrans/internal/store"
)

// --- Helper Structs for Request Bodies ---

// createStockInput creates a clothing or other item. Consumable only means
// something for Other; clothing is always returnable.
type createStockInput struct {
	Kind       models.ItemKind `json:"kind" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	Size       string          `json:"size"`
	Brand      string          `json:"brand"`
	Quantity   int             `json:"quantity" binding:"required,min=1"`
	Consumable bool            `json:"consumable"`
}

type updateStockInput struct {
	Name       *string `json:"name"`
	Size       *string `json:"size"`
	Brand      *string `json:"brand"`
	Quantity   *int    `json:"quantity"`
	Consumable *bool   `json:"consumable"`
}

type assignStockInput struct {
	DriverID  string `json:"driver_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Signature string `json:"signature" binding:"required"`
}

type InventoryController struct {
	Store *store.Store
	Rules *rules.Engine
}

func NewInventoryController(s *store.Store, e *rules.Engine) *InventoryController {
	return &InventoryController{Store: s, Rules: e}
}

// CreateItem adds a clothing/other stock item. Vehicles have their own
// controller and creation path.
func (ic *InventoryController) CreateItem(c *gin.Context) {
	var input createStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item input: " + err.Error()})
		return
	}
	if input.Kind != models.KindClothing && input.Kind != models.KindOther {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be Clothing or Other"})
		return
	}

	item := models.InventoryItem{
		ID:    "it-" + uuid.NewString(),
		Kind:  input.Kind,
		Name:  input.Name,
		Brand: input.Brand,
		Stock: &models.StockDetail{
			Size:       input.Size,
			Quantity:   input.Quantity,
			Consumable: input.Kind == models.KindOther && input.Consumable,
			History:    []models.Assignment{},
		},
		CreatedAt: time.Now(),
	}

	if err := ic.Store.Update(func(st *store.State) error {
		st.Inventory = append([]models.InventoryItem{item}, st.Inventory...)
		return nil
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// ListItems returns inventory filtered by kind and free-text search.
func (ic *InventoryController) ListItems(c *gin.Context) {
	kind := c.Query("kind")
	q := strings.ToLower(c.Query("q"))

	out := []models.InventoryItem{}
	for _, item := range ic.Store.Inventory() {
		if kind != "" && string(item.Kind) != kind {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(item.Name), q) {
			continue
		}
		out = append(out, item)
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}

// UpdateItem modifies a stock item's master data.
func (ic *InventoryController) UpdateItem(c *gin.Context) {
	id := c.Param("id")

	var input updateStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	var updated models.InventoryItem
	err := ic.Store.Update(func(st *store.State) error {
		item := st.FindItem(id)
		if item == nil {
			return rules.ErrItemNotFound
		}
		if item.Stock == nil {
			return rules.ErrNotStock
		}
		if input.Name != nil {
			item.Name = *input.Name
		}
		if input.Brand != nil {
			item.Brand = *input.Brand
		}
		if input.Size != nil {
			item.Stock.Size = *input.Size
		}
		if input.Quantity != nil {
			item.Stock.Quantity = *input.Quantity
		}
		if input.Consumable != nil && item.Kind == models.KindOther {
			item.Stock.Consumable = *input.Consumable
		}
		updated = *item
		return nil
	})
	if err != nil {
		rulesError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": updated})
}

// AssignItem hands stock out to a driver; the ledger record comes back in the
// response so the client can show it immediately.
func (ic *InventoryController) AssignItem(c *gin.Context) {
	id := c.Param("id")

	var input assignStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	record, err := ic.Rules.AssignStock(input.DriverID, id, input.Quantity, input.Signature)
	if err != nil {
		rulesError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": record})
}

// ReturnItem takes a durable assignment back and restores the stock count.
func (ic *InventoryController) ReturnItem(c *gin.Context) {
	if err := ic.Rules.ReturnAssignment(c.Param("id"), c.Param("recordId")); err != nil {
		rulesError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assignment returned"})
}

// ItemHistory lists the assignment ledger of an item, newest first, with
// driver names resolved for display.
func (ic *InventoryController) ItemHistory(c *gin.Context) {
	id := c.Param("id")
	drivers := ic.Store.Drivers()

	for _, item := range ic.Store.Inventory() {
		if item.ID != id {
			continue
		}
		if item.Stock == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item carries no ledger"})
			return
		}
		entries := make([]gin.H, 0, len(item.Stock.History))
		for _, rec := range item.Stock.History {
			entries = append(entries, gin.H{
				"record":      rec,
				"driver_name": driverName(drivers, rec.DriverID),
			})
		}
		c.JSON(http.StatusOK, gin.H{"data": entries})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
}
