package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports the service as up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Inventory API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Index lists the available endpoints.
func Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Welcome to Inventory Management API",
		"endpoints": map[string]string{
			"health":           "GET /health",
			"createSupplier":   "POST /api/supplier",
			"getAllSuppliers":  "GET /api/suppliers",
			"createInventory":  "POST /api/inventory",
			"getAllInventory":  "GET /api/inventory",
			"groupedInventory": "GET /api/inventory/grouped-by-supplier",
		},
	})
}
