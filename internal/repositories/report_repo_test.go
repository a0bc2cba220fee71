package repositories

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ReportRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    ReportRepository
	context context.Context
}

func (suite *ReportRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewReportRepository(mock)
	suite.context = context.Background()
}

func (suite *ReportRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestReportRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ReportRepoTestSuite))
}

func reportColumns() []string {
	return []string{"id", "name", "city", "total_items", "total_inventory_value", "inventory_items"}
}

func (suite *ReportRepoTestSuite) TestGroupedBySupplier_ParsesGroups() {
	suite.mock.ExpectQuery(`GROUP BY s\.id, s\.name, s\.city`).
		WillReturnRows(pgxmock.NewRows(reportColumns()).
			AddRow(int64(2), "Globex", "Hamburg", 2, "109.95",
				[]byte(`[{"id":11,"product_name":"Gadget","quantity":3,"price":"19.99","item_value":"59.97"},{"id":12,"product_name":"Sprocket","quantity":2,"price":"24.99","item_value":"49.98"}]`)).
			AddRow(int64(1), "Acme Corp", "Berlin", 1, "49.95",
				[]byte(`[{"id":10,"product_name":"Widget","quantity":5,"price":"9.99","item_value":"49.95"}]`)))

	groups, err := suite.repo.GroupedBySupplier(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), groups, 2)

	// Ordering comes back from the query untouched: total value descending.
	assert.Equal(suite.T(), int64(2), groups[0].SupplierID)
	assert.Equal(suite.T(), "109.95", groups[0].TotalInventoryValue.String())
	assert.Equal(suite.T(), int64(1), groups[1].SupplierID)

	// Each group's total equals the decimal sum of its item values.
	for _, group := range groups {
		sum := decimal.Zero
		for _, item := range group.InventoryItems {
			assert.True(suite.T(), item.ItemValue.Equal(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))))
			sum = sum.Add(item.ItemValue)
		}
		assert.True(suite.T(), group.TotalInventoryValue.Equal(sum),
			"total %s != item sum %s", group.TotalInventoryValue, sum)
	}
}

func (suite *ReportRepoTestSuite) TestGroupedBySupplier_SupplierWithoutItems() {
	suite.mock.ExpectQuery(`GROUP BY s\.id, s\.name, s\.city`).
		WillReturnRows(pgxmock.NewRows(reportColumns()).
			AddRow(int64(1), "Acme Corp", "Berlin", 1, "49.95",
				[]byte(`[{"id":10,"product_name":"Widget","quantity":5,"price":"9.99","item_value":"49.95"}]`)).
			AddRow(int64(3), "Initech", "Munich", 0, "0", []byte(`[]`)))

	groups, err := suite.repo.GroupedBySupplier(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), groups, 2)

	empty := groups[1]
	assert.Equal(suite.T(), 0, empty.TotalItems)
	assert.True(suite.T(), empty.TotalInventoryValue.IsZero())
	assert.NotNil(suite.T(), empty.InventoryItems)
	assert.Len(suite.T(), empty.InventoryItems, 0)
}

func (suite *ReportRepoTestSuite) TestGroupedBySupplier_EmptyStore() {
	suite.mock.ExpectQuery(`GROUP BY s\.id, s\.name, s\.city`).
		WillReturnRows(pgxmock.NewRows(reportColumns()))

	groups, err := suite.repo.GroupedBySupplier(suite.context)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), groups)
	assert.Len(suite.T(), groups, 0)
}
