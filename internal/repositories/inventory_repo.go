package repositories

import (
	"context"

	"supplytrack/internal/models"

	"github.com/shopspring/decimal"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	ListWithSupplier(ctx context.Context) ([]*models.InventoryItem, error)
	ListLowStock(ctx context.Context, threshold int) ([]*models.InventoryItem, error)
}

type inventoryRepo struct {
	db Database
}

func NewInventoryRepository(db Database) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory (supplier_id, product_name, quantity, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, item.SupplierID, item.ProductName, item.Quantity, item.Price.StringFixed(2)).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

// ListWithSupplier returns all items ordered by id ascending, each joined
// with its supplier's id, name and city.
func (r *inventoryRepo) ListWithSupplier(ctx context.Context) ([]*models.InventoryItem, error) {
	query := `
		SELECT i.id, i.supplier_id, i.product_name, i.quantity, i.price::text, i.created_at, i.updated_at,
		       s.id, s.name, s.city
		FROM inventory i
		JOIN suppliers s ON s.id = i.supplier_id
		ORDER BY i.id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.InventoryItem{}
	for rows.Next() {
		item := &models.InventoryItem{Supplier: &models.SupplierSummary{}}
		var price string
		if err := rows.Scan(&item.ID, &item.SupplierID, &item.ProductName, &item.Quantity, &price,
			&item.CreatedAt, &item.UpdatedAt,
			&item.Supplier.ID, &item.Supplier.Name, &item.Supplier.City); err != nil {
			return nil, err
		}
		if item.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListLowStock returns items whose quantity is at or below the threshold,
// lowest stock first. Used by the scheduled alerts job.
func (r *inventoryRepo) ListLowStock(ctx context.Context, threshold int) ([]*models.InventoryItem, error) {
	query := `
		SELECT i.id, i.supplier_id, i.product_name, i.quantity, i.price::text
		FROM inventory i
		WHERE i.quantity <= $1
		ORDER BY i.quantity ASC, i.id ASC
	`
	rows, err := r.db.Query(ctx, query, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.InventoryItem{}
	for rows.Next() {
		item := &models.InventoryItem{}
		var price string
		if err := rows.Scan(&item.ID, &item.SupplierID, &item.ProductName, &item.Quantity, &price); err != nil {
			return nil, err
		}
		if item.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
