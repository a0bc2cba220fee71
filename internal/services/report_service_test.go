package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"supplytrack/internal/common"
	"supplytrack/internal/models"
)

func TestReportService_GroupedBySupplier(t *testing.T) {
	reportRepo := new(MockReportRepository)
	svc := NewReportService(reportRepo)

	groups := []*models.SupplierInventoryGroup{
		{
			SupplierID:          2,
			SupplierName:        "Globex",
			TotalItems:          2,
			TotalInventoryValue: decimal.RequireFromString("109.95"),
			InventoryItems: []*models.ReportItem{
				{ID: 11, ProductName: "Gadget", Quantity: 3, Price: decimal.RequireFromString("19.99"), ItemValue: decimal.RequireFromString("59.97")},
				{ID: 12, ProductName: "Sprocket", Quantity: 2, Price: decimal.RequireFromString("24.99"), ItemValue: decimal.RequireFromString("49.98")},
			},
		},
		{
			SupplierID:          1,
			SupplierName:        "Acme Corp",
			TotalItems:          0,
			TotalInventoryValue: decimal.Zero,
			InventoryItems:      []*models.ReportItem{},
		},
	}
	reportRepo.On("GroupedBySupplier", mock.Anything).Return(groups, nil)

	got, err := svc.GroupedBySupplier(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	// Adjacent entries never increase in total value.
	for i := 0; i < len(got)-1; i++ {
		assert.True(t, got[i].TotalInventoryValue.GreaterThanOrEqual(got[i+1].TotalInventoryValue))
	}

	// Zero-item supplier carries an empty list and a zero total.
	assert.True(t, got[1].TotalInventoryValue.IsZero())
	assert.Empty(t, got[1].InventoryItems)
}

func TestReportService_StoreFailure(t *testing.T) {
	reportRepo := new(MockReportRepository)
	svc := NewReportService(reportRepo)

	reportRepo.On("GroupedBySupplier", mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := svc.GroupedBySupplier(context.Background())

	var storeErr *common.StoreError
	assert.ErrorAs(t, err, &storeErr)
}
