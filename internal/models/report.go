package models

import "github.com/shopspring/decimal"

// SupplierInventoryGroup is one row of the grouped-by-supplier report. It is
// derived, never persisted. Suppliers without items appear with zero totals
// and an empty item list.
type SupplierInventoryGroup struct {
	SupplierID          int64           `json:"supplier_id"`
	SupplierName        string          `json:"supplier_name"`
	SupplierCity        string          `json:"supplier_city"`
	TotalItems          int             `json:"total_items"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	InventoryItems      []*ReportItem   `json:"inventory_items"`
}

// ReportItem carries an item's computed value (quantity * price).
type ReportItem struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	ItemValue   decimal.Decimal `json:"item_value"`
}
