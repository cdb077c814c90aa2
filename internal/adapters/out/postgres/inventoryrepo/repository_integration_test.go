package inventoryrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/inventoryrepo"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type InventoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *inventoryrepo.GormInventoryRepository
	tracker    *MockAggregateTracker
	north      kernel.UUID
	south      kernel.UUID
}

func (suite *InventoryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&inventoryrepo.LineDTO{}))
}

func (suite *InventoryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE inventory").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = inventoryrepo.NewGormInventoryRepository(suite.db, suite.tracker)
	suite.north = kernel.NewUUID()
	suite.south = kernel.NewUUID()
}

func (suite *InventoryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsItem() {
	ctx := context.Background()
	line := suite.add(suite.north, "BOLT", 40, 10)

	stored, err := suite.repository.Get(ctx, line.ID())

	suite.Require().NoError(err)
	suite.Equal("BOLT", stored.SKU())
	suite.Equal("Bolt BOLT", stored.Item().Name())
	suite.True(stored.Item().UnitPrice().Equal(decimal.RequireFromString("1.25")))
	suite.True(stored.Item().UnitLoad().Weight().Equal(decimal.RequireFromString("0.125")))
	suite.Equal(40, stored.Quantity())
	suite.Equal(10, stored.ReorderPoint())
	suite.True(stored.BelongsTo(suite.north))
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestAdd_SameSKUInWarehouse_Fails() {
	suite.add(suite.north, "BOLT", 1, 0)
	suite.add(suite.south, "BOLT", 1, 0)

	err := suite.repository.Add(context.Background(), suite.newLine(suite.north, "BOLT", 5, 0))

	suite.Require().ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestUpdate_PersistsQuantity() {
	ctx := context.Background()
	line := suite.add(suite.north, "BOLT", 40, 10)
	suite.Require().NoError(line.Withdraw(15))

	suite.Require().NoError(suite.repository.Update(ctx, line))

	stored, err := suite.repository.Get(ctx, line.ID())
	suite.Require().NoError(err)
	suite.Equal(25, stored.Quantity())
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestLockMany_ReturnsSortedUniqueLines() {
	a := suite.add(suite.north, "A", 1, 0)
	b := suite.add(suite.north, "B", 1, 0)
	c := suite.add(suite.north, "C", 1, 0)
	expected := kernel.SortedUnique([]kernel.UUID{a.ID(), b.ID(), c.ID()})

	tx := suite.db.Begin()
	defer tx.Rollback()
	lines, err := inventoryrepo.NewGormInventoryRepository(tx, suite.tracker).
		LockMany(context.Background(), []kernel.UUID{c.ID(), a.ID(), b.ID(), a.ID()})

	suite.Require().NoError(err)
	suite.Require().Len(lines, 3)
	for i, id := range expected {
		suite.Equal(id, lines[i].ID())
	}
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestLockMany_MissingLine_ReturnsNotFound() {
	a := suite.add(suite.north, "A", 1, 0)

	tx := suite.db.Begin()
	defer tx.Rollback()
	_, err := inventoryrepo.NewGormInventoryRepository(tx, suite.tracker).
		LockMany(context.Background(), []kernel.UUID{a.ID(), kernel.NewUUID()})

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestFindBySKU() {
	ctx := context.Background()
	line := suite.add(suite.south, "NUT", 3, 0)

	found, err := suite.repository.FindBySKU(ctx, suite.south, "NUT")
	suite.Require().NoError(err)
	suite.Equal(line.ID(), found.ID())

	_, err = suite.repository.FindBySKU(ctx, suite.north, "NUT")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestFindBelowReorderPoint() {
	ctx := context.Background()
	suite.add(suite.north, "B", 2, 5)
	suite.add(suite.north, "A", 1, 5)
	suite.add(suite.north, "C", 5, 5)
	suite.add(suite.south, "D", 0, 1)

	all, err := suite.repository.FindBelowReorderPoint(ctx, nil)
	suite.Require().NoError(err)
	suite.Len(all, 3)

	north, err := suite.repository.FindBelowReorderPoint(ctx, &suite.north)
	suite.Require().NoError(err)
	suite.Require().Len(north, 2)
	suite.Equal("A", north[0].SKU())
	suite.Equal("B", north[1].SKU())
}

func (suite *InventoryRepositoryIntegrationTestSuite) newLine(warehouseID kernel.UUID, sku string, quantity, reorderPoint int) *inventory.Line {
	unitLoad, err := kernel.NewLoad(decimal.RequireFromString("0.125"), decimal.RequireFromString("0.001"))
	suite.Require().NoError(err)
	item, err := inventory.NewItem(sku, "Bolt "+sku, "", decimal.RequireFromString("1.25"), unitLoad)
	suite.Require().NoError(err)
	line, err := inventory.NewLine(kernel.NewUUID(), warehouseID, item, quantity, reorderPoint, 50)
	suite.Require().NoError(err)
	return line
}

func (suite *InventoryRepositoryIntegrationTestSuite) add(warehouseID kernel.UUID, sku string, quantity, reorderPoint int) *inventory.Line {
	line := suite.newLine(warehouseID, sku, quantity, reorderPoint)
	suite.Require().NoError(suite.repository.Add(context.Background(), line))
	return line
}

func TestInventoryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryRepositoryIntegrationTestSuite))
}
