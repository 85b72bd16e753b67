package queries_test

import (
	"context"
	"testing"
	"time"

	"mailroom/internal/adapters/out/postgres/receiverrepo"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/receiver"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetReceiversQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetReceiversQueryHandler
	receiverRepo *receiverrepo.GormReceiverRepository
}

func (suite *GetReceiversQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&receiverrepo.ReceiverDTO{}))

	suite.handler = queries.NewGetReceiversQueryHandler(db)
	suite.receiverRepo = receiverrepo.NewGormReceiverRepository(db, &mockAggregateTracker{})
}

func (suite *GetReceiversQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetReceiversQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE receivers").Error)
}

func (suite *GetReceiversQueryHandlerTestSuite) seedReceiver(name string, timesSeen int) {
	entry, err := receiver.NewReceiver(name, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	for range timesSeen - 1 {
		entry.Seen(time.Now())
	}
	suite.Require().NoError(suite.receiverRepo.Add(context.Background(), entry))
}

func (suite *GetReceiversQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetReceiversQuery(0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetReceiversQueryHandlerTestSuite) TestHandle_MostActiveFirst() {
	suite.seedReceiver("Alice", 2)
	suite.seedReceiver("Bob", 5)
	suite.seedReceiver("Carol", 1)

	query, err := queries.NewGetReceiversQuery(0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal([]string{"Bob", "Alice", "Carol"}, result)
}

func (suite *GetReceiversQueryHandlerTestSuite) TestHandle_TiesBreakAlphabetically() {
	suite.seedReceiver("Bob", 3)
	suite.seedReceiver("Alice", 3)

	query, err := queries.NewGetReceiversQuery(0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal([]string{"Alice", "Bob"}, result)
}

func (suite *GetReceiversQueryHandlerTestSuite) TestHandle_LimitBoundsResult() {
	suite.seedReceiver("Alice", 2)
	suite.seedReceiver("Bob", 5)
	suite.seedReceiver("Carol", 1)

	query, err := queries.NewGetReceiversQuery(2)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal([]string{"Bob", "Alice"}, result)
}

func (suite *GetReceiversQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetReceiversQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetReceiversQuery constructor")
}

// mockAggregateTracker satisfies the repositories' tracker dependency when
// seeding test data outside a unit of work.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ any, _ any) {}

func TestGetReceiversQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetReceiversQueryHandlerTestSuite))
}
