package handlers

import (
	"net/http"

	"supplytrack/internal/common"
	"supplytrack/internal/services"
	"supplytrack/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// InventoryHandlers handles inventory-related HTTP requests, including the
// grouped-by-supplier report.
type InventoryHandlers struct {
	inventoryService services.InventoryService
	reportService    services.ReportService
}

// NewInventoryHandlers creates a new inventory handlers instance
func NewInventoryHandlers(inventoryService services.InventoryService, reportService services.ReportService) *InventoryHandlers {
	return &InventoryHandlers{
		inventoryService: inventoryService,
		reportService:    reportService,
	}
}

// CreateInventoryRequest represents the inventory creation request payload.
// Price binds through decimal.Decimal, so the exact scale of the JSON number
// survives for validation.
type CreateInventoryRequest struct {
	SupplierID  int64           `json:"supplier_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// CreateInventory handles creating a new inventory item
func (h *InventoryHandlers) CreateInventory(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if msgs := validation.InventoryInput(req.SupplierID, req.ProductName, req.Quantity, req.Price); len(msgs) > 0 {
		return &common.ValidationError{Messages: msgs}
	}

	item, err := h.inventoryService.Create(ctx, req.SupplierID, req.ProductName, req.Quantity, req.Price)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Inventory item created successfully",
		"data":    item,
	})
}

// ListInventory handles getting all inventory items with their supplier
func (h *InventoryHandlers) ListInventory(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.inventoryService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

// GroupedBySupplier handles the inventory report grouped by supplier and
// sorted by total inventory value
func (h *InventoryHandlers) GroupedBySupplier(c echo.Context) error {
	ctx := c.Request().Context()

	groups, err := h.reportService.GroupedBySupplier(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Inventory grouped by supplier, sorted by total value",
		"count":   len(groups),
		"data":    groups,
	})
}
