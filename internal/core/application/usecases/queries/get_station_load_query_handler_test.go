package queries_test

import (
	"context"
	"testing"
	"time"

	"kitchen/internal/adapters/out/postgres/stationrepo"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/station"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetStationLoadQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetStationLoadQueryHandler
	stationRepo *stationrepo.GormStationRepository
}

func (suite *GetStationLoadQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&stationrepo.StationDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetStationLoadQueryHandler(db)
	suite.stationRepo = stationrepo.NewGormStationRepository(db, &mockAggregateTracker{})
}

func (suite *GetStationLoadQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetStationLoadQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE stations").Error
	suite.Require().NoError(err)
}

func (suite *GetStationLoadQueryHandlerTestSuite) TestHandle_NoStations_ReturnsEmptySlice() {
	ctx := context.Background()

	responses, err := suite.handler.Handle(ctx, queries.NewGetStationLoadQuery())
	suite.Require().NoError(err)
	suite.Empty(responses)
}

func (suite *GetStationLoadQueryHandlerTestSuite) TestHandle_ReturnsAllStationsSortedByName() {
	ctx := context.Background()

	grill := suite.seedStation(ctx, "Grill 1", station.TypeGrill, 5)
	suite.Require().NoError(grill.UpdateWorkload(3))
	grill.SetBusy()
	suite.Require().NoError(suite.stationRepo.Update(ctx, grill))

	fry := suite.seedStation(ctx, "Fry 1", station.TypeFry, 2)
	fry.Deactivate()
	suite.Require().NoError(suite.stationRepo.Update(ctx, fry))

	responses, err := suite.handler.Handle(ctx, queries.NewGetStationLoadQuery())
	suite.Require().NoError(err)

	suite.Require().Len(responses, 2)

	suite.Equal(fry.ID(), responses[0].ID)
	suite.Equal("Fry 1", responses[0].Name)
	suite.Equal(station.TypeFry, responses[0].StationType)
	suite.Equal(station.Offline, responses[0].Status)
	suite.False(responses[0].IsActive)
	suite.Equal(2, responses[0].Capacity)
	suite.Equal(0, responses[0].CurrentWorkload)

	suite.Equal(grill.ID(), responses[1].ID)
	suite.Equal("Grill 1", responses[1].Name)
	suite.Equal(station.Busy, responses[1].Status)
	suite.True(responses[1].IsActive)
	suite.Equal(5, responses[1].Capacity)
	suite.Equal(3, responses[1].CurrentWorkload)
}

// seedStation persists a fresh active station.
func (suite *GetStationLoadQueryHandlerTestSuite) seedStation(
	ctx context.Context, name string, stationType station.Type, capacity int,
) *station.Station {
	seeded, err := station.NewStation(kernel.NewUUID(), name, stationType, capacity)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.stationRepo.Add(ctx, seeded))
	return seeded
}

func TestGetStationLoadQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetStationLoadQueryHandlerTestSuite))
}
