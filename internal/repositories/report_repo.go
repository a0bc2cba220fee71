package repositories

import (
	"context"
	"encoding/json"

	"supplytrack/internal/models"

	"github.com/shopspring/decimal"
)

type ReportRepository interface {
	GroupedBySupplier(ctx context.Context) ([]*models.SupplierInventoryGroup, error)
}

type reportRepo struct {
	db Database
}

func NewReportRepository(db Database) ReportRepository {
	return &reportRepo{db: db}
}

// GroupedBySupplier builds the supplier-grouped report in a single query.
// Suppliers without items survive the left join with a zero total and an
// empty item list. Totals stay NUMERIC end to end; they are shipped as text
// and parsed into decimals, never through float64. Equal totals order by
// supplier id ascending so the output is stable across runs.
func (r *reportRepo) GroupedBySupplier(ctx context.Context) ([]*models.SupplierInventoryGroup, error) {
	query := `
		SELECT s.id, s.name, s.city,
		       COUNT(i.id) AS total_items,
		       COALESCE(SUM(i.quantity * i.price), 0)::text AS total_inventory_value,
		       COALESCE(
		           json_agg(
		               json_build_object(
		                   'id', i.id,
		                   'product_name', i.product_name,
		                   'quantity', i.quantity,
		                   'price', i.price::text,
		                   'item_value', (i.quantity * i.price)::text
		               ) ORDER BY i.id
		           ) FILTER (WHERE i.id IS NOT NULL),
		           '[]'
		       ) AS inventory_items
		FROM suppliers s
		LEFT JOIN inventory i ON i.supplier_id = s.id
		GROUP BY s.id, s.name, s.city
		ORDER BY COALESCE(SUM(i.quantity * i.price), 0) DESC, s.id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []*models.SupplierInventoryGroup{}
	for rows.Next() {
		group := &models.SupplierInventoryGroup{}
		var totalValue string
		var itemsJSON []byte
		if err := rows.Scan(&group.SupplierID, &group.SupplierName, &group.SupplierCity,
			&group.TotalItems, &totalValue, &itemsJSON); err != nil {
			return nil, err
		}
		if group.TotalInventoryValue, err = decimal.NewFromString(totalValue); err != nil {
			return nil, err
		}
		group.InventoryItems = []*models.ReportItem{}
		if err := json.Unmarshal(itemsJSON, &group.InventoryItems); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}
