package queries_test

import (
	"context"
	"testing"
	"time"

	"mailroom/internal/adapters/out/postgres/parcelrepo"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetParcelsQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.GetParcelsQueryHandler
	parcelRepo *parcelrepo.GormParcelRepository
}

func (suite *GetParcelsQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}))

	suite.handler = queries.NewGetParcelsQueryHandler(db)
	suite.parcelRepo = parcelrepo.NewGormParcelRepository(db, &mockAggregateTracker{})
}

func (suite *GetParcelsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetParcelsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels RESTART IDENTITY").Error)
}

func (suite *GetParcelsQueryHandlerTestSuite) checkIn(
	trackingNumber, carrier, room string,
	receivedAt time.Time,
) *parcel.Parcel {
	p, err := parcel.NewParcel(trackingNumber, carrier, "张三", room, "Admin", receivedAt, parcel.Details{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcelRepo.Add(context.Background(), p))
	return p
}

func (suite *GetParcelsQueryHandlerTestSuite) pickUp(p *parcel.Parcel) {
	suite.Require().NoError(p.PickUp("张三", time.Now()))
	suite.Require().NoError(suite.parcelRepo.Update(context.Background(), p, parcel.Received))
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetParcelsQuery(queries.GetParcelsFilter{})
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_NoFilters_ReturnsAllNewestFirst() {
	now := time.Now().Truncate(time.Millisecond)
	oldest := suite.checkIn("SF001", "顺丰", "101", now.Add(-2*time.Hour))
	middle := suite.checkIn("SF002", "中通", "102", now.Add(-time.Hour))
	newest := suite.checkIn("SF003", "顺丰", "103", now)

	query, err := queries.NewGetParcelsQuery(queries.GetParcelsFilter{})
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(newest.ID(), result[0].ID)
	suite.Equal(middle.ID(), result[1].ID)
	suite.Equal(oldest.ID(), result[2].ID)
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_SameReceiveTime_NewestIdFirst() {
	at := time.Now().Truncate(time.Second)
	first := suite.checkIn("SF001", "顺丰", "101", at)
	second := suite.checkIn("SF002", "顺丰", "102", at)

	query, err := queries.NewGetParcelsQuery(queries.GetParcelsFilter{})
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(second.ID(), result[0].ID)
	suite.Equal(first.ID(), result[1].ID)
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_StatusFilter() {
	now := time.Now()
	waiting := suite.checkIn("SF001", "顺丰", "101", now.Add(-time.Hour))
	collected := suite.checkIn("SF002", "顺丰", "102", now.Add(-time.Hour))
	suite.pickUp(collected)

	query, err := queries.NewGetParcelsQuery(queries.GetParcelsFilter{Status: "Received"})
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(waiting.ID(), result[0].ID)
	suite.Equal("Received", result[0].Status)

	query, err = queries.NewGetParcelsQuery(queries.GetParcelsFilter{Status: "PickedUp"})
	suite.Require().NoError(err)

	result, err = suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(collected.ID(), result[0].ID)
	suite.Equal("PickedUp", result[0].Status)
	suite.Equal("张三", result[0].PickedUpBy)
	suite.NotNil(result[0].PickedUpAt)
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_FiltersCombineAsConjunction() {
	now := time.Now()
	match := suite.checkIn("SF001", "顺丰", "302", now)
	suite.checkIn("SF002", "顺丰", "101", now) // wrong room
	suite.checkIn("SF003", "中通", "302", now) // wrong carrier

	query, err := queries.NewGetParcelsQuery(queries.GetParcelsFilter{
		RoomNumber: "302",
		Carrier:    "顺丰",
	})
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(match.ID(), result[0].ID)
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_TrackingNumberFilter() {
	now := time.Now()
	suite.checkIn("SF001", "顺丰", "101", now.Add(-time.Hour))
	duplicate1 := suite.checkIn("SF777", "顺丰", "102", now.Add(-time.Minute))
	duplicate2 := suite.checkIn("SF777", "中通", "103", now)

	query, err := queries.NewGetParcelsQuery(queries.GetParcelsFilter{TrackingNumber: "SF777"})
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(duplicate2.ID(), result[0].ID)
	suite.Equal(duplicate1.ID(), result[1].ID)
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetParcelsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetParcelsQuery constructor")
}

func (suite *GetParcelsQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.checkIn("SF001", "顺丰", "101", time.Now())

	query, err := queries.NewGetParcelsQuery(queries.GetParcelsFilter{})
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetParcelsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetParcelsQueryHandlerTestSuite))
}
