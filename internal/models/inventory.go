package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InventoryItem struct {
	ID          int64           `json:"id" db:"id"`
	SupplierID  int64           `json:"supplier_id" db:"supplier_id"`
	ProductName string          `json:"product_name" db:"product_name"`
	Quantity    int             `json:"quantity" db:"quantity"`
	Price       decimal.Decimal `json:"price" db:"price"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
	// Supplier is populated only by the inventory listing.
	Supplier *SupplierSummary `json:"supplier,omitempty"`
}
