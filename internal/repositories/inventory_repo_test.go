package repositories

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"supplytrack/internal/models"
)

type InventoryRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    InventoryRepository
	context context.Context
	now     time.Time
}

func (suite *InventoryRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewInventoryRepository(mock)
	suite.context = context.Background()
	suite.now = time.Now()
}

func (suite *InventoryRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestInventoryRepoTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryRepoTestSuite))
}

func (suite *InventoryRepoTestSuite) TestCreate_Success() {
	item := &models.InventoryItem{
		SupplierID:  1,
		ProductName: "Widget",
		Quantity:    5,
		Price:       decimal.RequireFromString("9.99"),
	}

	suite.mock.ExpectQuery(`INSERT INTO inventory \(supplier_id, product_name, quantity, price, created_at, updated_at\)`).
		WithArgs(int64(1), "Widget", 5, "9.99").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(42), suite.now, suite.now))

	err := suite.repo.Create(suite.context, item)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(42), item.ID)
}

func (suite *InventoryRepoTestSuite) TestCreate_SendsFixedScalePrice() {
	item := &models.InventoryItem{
		SupplierID:  1,
		ProductName: "Widget",
		Quantity:    1,
		Price:       decimal.RequireFromString("10.5"),
	}

	// Price always travels with two decimal places.
	suite.mock.ExpectQuery(`INSERT INTO inventory`).
		WithArgs(int64(1), "Widget", 1, "10.50").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(7), suite.now, suite.now))

	err := suite.repo.Create(suite.context, item)
	assert.NoError(suite.T(), err)
}

func (suite *InventoryRepoTestSuite) TestListWithSupplier_JoinsSupplier() {
	columns := []string{"id", "supplier_id", "product_name", "quantity", "price",
		"created_at", "updated_at", "s_id", "s_name", "s_city"}

	suite.mock.ExpectQuery(`JOIN suppliers s ON s\.id = i\.supplier_id`).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(10), int64(1), "Widget", 5, "9.99", suite.now, suite.now, int64(1), "Acme Corp", "Berlin").
			AddRow(int64(11), int64(2), "Gadget", 3, "19.50", suite.now, suite.now, int64(2), "Globex", "Hamburg"))

	items, err := suite.repo.ListWithSupplier(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 2)
	assert.Equal(suite.T(), "Widget", items[0].ProductName)
	assert.Equal(suite.T(), "9.99", items[0].Price.String())
	assert.Equal(suite.T(), "Acme Corp", items[0].Supplier.Name)
	assert.Equal(suite.T(), "Hamburg", items[1].Supplier.City)
}

func (suite *InventoryRepoTestSuite) TestListWithSupplier_EmptyStore() {
	columns := []string{"id", "supplier_id", "product_name", "quantity", "price",
		"created_at", "updated_at", "s_id", "s_name", "s_city"}

	suite.mock.ExpectQuery(`JOIN suppliers s ON s\.id = i\.supplier_id`).
		WillReturnRows(pgxmock.NewRows(columns))

	items, err := suite.repo.ListWithSupplier(suite.context)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), items)
	assert.Len(suite.T(), items, 0)
}

func (suite *InventoryRepoTestSuite) TestListLowStock() {
	columns := []string{"id", "supplier_id", "product_name", "quantity", "price"}

	suite.mock.ExpectQuery(`WHERE i\.quantity <= \$1`).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(10), int64(1), "Widget", 2, "9.99").
			AddRow(int64(12), int64(1), "Sprocket", 7, "4.25"))

	items, err := suite.repo.ListLowStock(suite.context, 10)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 2)
	assert.Equal(suite.T(), 2, items[0].Quantity)
}
