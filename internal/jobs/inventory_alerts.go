package jobs

import (
	"context"
	"log"

	"supplytrack/internal/repositories"
)

// InventoryAlertService scans for items whose stock is at or below a
// threshold and logs them. Alerts are log-only; there is no notification
// transport.
type InventoryAlertService struct {
	inventoryRepo repositories.InventoryRepository
}

type InventoryAlert struct {
	ItemID       int64
	SupplierID   int64
	ProductName  string
	CurrentStock int
	Threshold    int
}

func NewInventoryAlertService(inventoryRepo repositories.InventoryRepository) *InventoryAlertService {
	return &InventoryAlertService{inventoryRepo: inventoryRepo}
}

func (a *InventoryAlertService) CheckLowStock(ctx context.Context, threshold int) ([]InventoryAlert, error) {
	if threshold <= 0 {
		threshold = 10 // Default threshold
	}

	items, err := a.inventoryRepo.ListLowStock(ctx, threshold)
	if err != nil {
		log.Printf("Failed to list low stock items: %v", err)
		return nil, err
	}

	alerts := make([]InventoryAlert, 0, len(items))
	for _, item := range items {
		alerts = append(alerts, InventoryAlert{
			ItemID:       item.ID,
			SupplierID:   item.SupplierID,
			ProductName:  item.ProductName,
			CurrentStock: item.Quantity,
			Threshold:    threshold,
		})
	}
	return alerts, nil
}

func (a *InventoryAlertService) LogLowStockAlerts(alerts []InventoryAlert) {
	if len(alerts) == 0 {
		log.Println("No low stock alerts to log")
		return
	}

	log.Printf("Low stock alerts (%d items):", len(alerts))
	for _, alert := range alerts {
		log.Printf("- Product '%s' (supplier %d) has %d units (threshold: %d)",
			alert.ProductName,
			alert.SupplierID,
			alert.CurrentStock,
			alert.Threshold)
	}
}

// ScheduledLowStockCheck is the entrypoint the scheduler runs periodically.
func (a *InventoryAlertService) ScheduledLowStockCheck(ctx context.Context, threshold int) error {
	log.Println("Starting scheduled low stock check")

	alerts, err := a.CheckLowStock(ctx, threshold)
	if err != nil {
		log.Printf("Scheduled low stock check failed: %v", err)
		return err
	}
	a.LogLowStockAlerts(alerts)

	log.Println("Scheduled low stock check completed successfully")
	return nil
}
