package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Supplier struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	City      string    `json:"city" db:"city"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	// Inventory is always non-nil so the JSON carries inventory: [] for a
	// supplier with zero items; nested items carry no timestamps.
	Inventory []*InventoryItemSummary `json:"inventory"`
}

// InventoryItemSummary is the trimmed item view nested under a supplier.
type InventoryItemSummary struct {
	ID          int64           `json:"id" db:"id"`
	ProductName string          `json:"product_name" db:"product_name"`
	Quantity    int             `json:"quantity" db:"quantity"`
	Price       decimal.Decimal `json:"price" db:"price"`
}

// SupplierSummary is the trimmed supplier view nested under an inventory item.
type SupplierSummary struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	City string `json:"city" db:"city"`
}
