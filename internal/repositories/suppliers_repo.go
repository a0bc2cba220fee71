package repositories

import (
	"context"

	"supplytrack/internal/models"

	"github.com/shopspring/decimal"
)

type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	GetByID(ctx context.Context, id int64) (*models.Supplier, error)
	ListWithInventory(ctx context.Context) ([]*models.Supplier, error)
}

type supplierRepo struct {
	db Database
}

func NewSupplierRepository(db Database) SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) Create(ctx context.Context, supplier *models.Supplier) error {
	query := `
		INSERT INTO suppliers (name, city, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, supplier.Name, supplier.City).
		Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt)
}

func (r *supplierRepo) GetByID(ctx context.Context, id int64) (*models.Supplier, error) {
	supplier := &models.Supplier{}
	query := `
		SELECT id, name, city, created_at, updated_at
		FROM suppliers
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).
		Scan(&supplier.ID, &supplier.Name, &supplier.City, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

// ListWithInventory returns all suppliers ordered by id ascending, each with
// its items nested. Suppliers without items get an empty list, which is why
// the item columns of the left join are scanned through pointers.
func (r *supplierRepo) ListWithInventory(ctx context.Context) ([]*models.Supplier, error) {
	query := `
		SELECT s.id, s.name, s.city, s.created_at, s.updated_at,
		       i.id, i.product_name, i.quantity, i.price::text
		FROM suppliers s
		LEFT JOIN inventory i ON i.supplier_id = s.id
		ORDER BY s.id ASC, i.id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suppliers := []*models.Supplier{}
	var current *models.Supplier
	for rows.Next() {
		var (
			supplier    models.Supplier
			itemID      *int64
			productName *string
			quantity    *int
			price       *string
		)
		if err := rows.Scan(&supplier.ID, &supplier.Name, &supplier.City, &supplier.CreatedAt, &supplier.UpdatedAt,
			&itemID, &productName, &quantity, &price); err != nil {
			return nil, err
		}

		if current == nil || current.ID != supplier.ID {
			supplier.Inventory = []*models.InventoryItemSummary{}
			suppliers = append(suppliers, &supplier)
			current = suppliers[len(suppliers)-1]
		}

		if itemID != nil {
			itemPrice, err := decimal.NewFromString(*price)
			if err != nil {
				return nil, err
			}
			current.Inventory = append(current.Inventory, &models.InventoryItemSummary{
				ID:          *itemID,
				ProductName: *productName,
				Quantity:    *quantity,
				Price:       itemPrice,
			})
		}
	}
	return suppliers, rows.Err()
}
