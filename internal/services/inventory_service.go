package services

import (
	"context"
	"errors"
	"strings"

	"supplytrack/internal/common"
	"supplytrack/internal/models"
	"supplytrack/internal/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

type InventoryService interface {
	Create(ctx context.Context, supplierID int64, productName string, quantity int, price decimal.Decimal) (*models.InventoryItem, error)
	List(ctx context.Context) ([]*models.InventoryItem, error)
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
	supplierRepo  repositories.SupplierRepository
}

func NewInventoryService(inventoryRepo repositories.InventoryRepository, supplierRepo repositories.SupplierRepository) InventoryService {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		supplierRepo:  supplierRepo,
	}
}

// Create looks the supplier up first and refuses the insert when it is
// absent. The check and the insert are not one transaction: deletion is out
// of scope and the FK (ON DELETE RESTRICT) backstops the gap.
func (s *inventoryService) Create(ctx context.Context, supplierID int64, productName string, quantity int, price decimal.Decimal) (*models.InventoryItem, error) {
	if _, err := s.supplierRepo.GetByID(ctx, supplierID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &common.NotFoundError{Entity: "Supplier", ID: supplierID}
		}
		return nil, wrapStoreErr(ctx, err)
	}

	item := &models.InventoryItem{
		SupplierID:  supplierID,
		ProductName: productName,
		Quantity:    quantity,
		Price:       price,
	}
	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		// A check or FK violation means input slipped past validation;
		// report it as such rather than as a server fault.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
			return nil, common.NewValidationError(pgErr.Message)
		}
		return nil, wrapStoreErr(ctx, err)
	}
	return item, nil
}

// List returns all items ordered by id ascending, each with its supplier's
// id, name and city attached.
func (s *inventoryService) List(ctx context.Context) ([]*models.InventoryItem, error) {
	items, err := s.inventoryRepo.ListWithSupplier(ctx)
	if err != nil {
		return nil, wrapStoreErr(ctx, err)
	}
	return items, nil
}
