package services

import (
	"context"
	"errors"

	"supplytrack/internal/common"
	"supplytrack/internal/models"
	"supplytrack/internal/repositories"
)

type SupplierService interface {
	Create(ctx context.Context, name, city string) (*models.Supplier, error)
	List(ctx context.Context) ([]*models.Supplier, error)
}

type supplierService struct {
	supplierRepo repositories.SupplierRepository
}

func NewSupplierService(supplierRepo repositories.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: supplierRepo}
}

// Create inserts a supplier and returns it with the generated id and
// timestamps. Shape validation happens upstream in the handler.
func (s *supplierService) Create(ctx context.Context, name, city string) (*models.Supplier, error) {
	supplier := &models.Supplier{
		Name:      name,
		City:      city,
		Inventory: []*models.InventoryItemSummary{},
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, wrapStoreErr(ctx, err)
	}
	return supplier, nil
}

// List returns all suppliers ordered by id ascending with their nested
// items. An empty store yields an empty slice, never an error.
func (s *supplierService) List(ctx context.Context) ([]*models.Supplier, error) {
	suppliers, err := s.supplierRepo.ListWithInventory(ctx)
	if err != nil {
		return nil, wrapStoreErr(ctx, err)
	}
	return suppliers, nil
}

// wrapStoreErr classifies a repository failure: deadline expiry (typically
// pool-acquire starvation under a bounded pool) becomes a TimeoutError,
// everything else a StoreError.
func wrapStoreErr(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return &common.TimeoutError{Op: "store access"}
	}
	return &common.StoreError{Err: err}
}
