package handlers

import (
	"net/http"

	"supplytrack/internal/common"
	"supplytrack/internal/services"
	"supplytrack/internal/validation"

	"github.com/labstack/echo/v4"
)

// SupplierHandlers handles supplier-related HTTP requests
type SupplierHandlers struct {
	supplierService services.SupplierService
}

// NewSupplierHandlers creates a new supplier handlers instance
func NewSupplierHandlers(supplierService services.SupplierService) *SupplierHandlers {
	return &SupplierHandlers{supplierService: supplierService}
}

// CreateSupplierRequest represents the supplier creation request payload
type CreateSupplierRequest struct {
	Name string `json:"name"`
	City string `json:"city"`
}

// CreateSupplier handles creating a new supplier
func (h *SupplierHandlers) CreateSupplier(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if msgs := validation.SupplierInput(req.Name, req.City); len(msgs) > 0 {
		return &common.ValidationError{Messages: msgs}
	}

	supplier, err := h.supplierService.Create(ctx, req.Name, req.City)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Supplier created successfully",
		"data":    supplier,
	})
}

// ListSuppliers handles getting all suppliers with their inventory
func (h *SupplierHandlers) ListSuppliers(c echo.Context) error {
	ctx := c.Request().Context()

	suppliers, err := h.supplierService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(suppliers),
		"data":    suppliers,
	})
}
