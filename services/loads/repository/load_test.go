package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/loadboard/internal/pkg/database"
	"github.com/piresc/loadboard/internal/pkg/models"
)

var loadColumnNames = []string{
	"id", "owner_id", "driver_id", "origin", "destination",
	"origin_lat", "origin_lng", "dest_lat", "dest_lng", "distance_km", "origin_geohash",
	"weight", "price", "truck_size", "body_type", "type", "package_type", "pickup_date",
	"description", "receiver_name", "receiver_phone", "receiver_address",
	"status", "created_at", "updated_at",
}

func setupLoadRepoTest(t *testing.T) (*LoadRepo, sqlmock.Sqlmock, *miniredis.Miniredis) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	mr := miniredis.RunT(t)
	redisClient := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { redisClient.Close() })

	cfg := &models.Config{Loads: models.LoadsConfig{GeoIndexKey: "loads:available:geo"}}
	return NewLoadRepository(cfg, sqlxDB, redisClient), mock, mr
}

func loadRows(loads ...*models.Load) *sqlmock.Rows {
	rows := sqlmock.NewRows(loadColumnNames)
	for _, l := range loads {
		var driverID interface{}
		if l.DriverID != nil {
			driverID = l.DriverID.String()
		}
		rows.AddRow(
			l.ID.String(), l.OwnerID.String(), driverID, l.Origin, l.Destination,
			nil, nil, nil, nil, nil, l.OriginGeohash,
			l.Weight, l.Price, l.TruckSize, string(l.BodyType), l.Type, l.PackageType, l.PickupDate.Time,
			l.Description, l.ReceiverName, l.ReceiverPhone, nil,
			string(l.Status), l.CreatedAt, l.UpdatedAt,
		)
	}
	return rows
}

func sampleLoad(status models.LoadStatus, driverID *uuid.UUID) *models.Load {
	now := time.Now().UTC()
	return &models.Load{
		ID:            uuid.New(),
		OwnerID:       uuid.New(),
		DriverID:      driverID,
		Origin:        "Riyadh",
		Destination:   "Jeddah",
		OriginGeohash: "th3hw4",
		Weight:        10,
		Price:         1000,
		Type:          models.DefaultLoadType,
		PickupDate:    models.NewDate(now),
		ReceiverName:  "Khalid",
		ReceiverPhone: "0555555555",
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestLoadRepo_CreateLoad(t *testing.T) {
	repo, mock, _ := setupLoadRepoTest(t)
	load := sampleLoad(models.LoadStatusAvailable, nil)
	load.ID = uuid.Nil

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO loads")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateLoad(context.Background(), load)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadRepo_GetLoad(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		driverID := uuid.New()
		load := sampleLoad(models.LoadStatusInProgress, &driverID)

		mock.ExpectQuery(regexp.QuoteMeta("FROM loads WHERE id = $1")).
			WithArgs(load.ID).
			WillReturnRows(loadRows(load))

		got, err := repo.GetLoad(context.Background(), load.ID)

		require.NoError(t, err)
		assert.Equal(t, load.ID, got.ID)
		require.NotNil(t, got.DriverID)
		assert.Equal(t, driverID, *got.DriverID)
		assert.Equal(t, models.LoadStatusInProgress, got.Status)
		assert.Equal(t, load.PickupDate.String(), got.PickupDate.String())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta("FROM loads WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(loadColumnNames))

		_, err := repo.GetLoad(context.Background(), id)

		assert.ErrorIs(t, err, models.ErrLoadNotFound)
	})

	t.Run("database error is wrapped", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		dbErr := errors.New("connection refused")

		mock.ExpectQuery(regexp.QuoteMeta("FROM loads WHERE id = $1")).
			WillReturnError(dbErr)

		_, err := repo.GetLoad(context.Background(), uuid.New())

		assert.ErrorIs(t, err, dbErr)
		assert.ErrorContains(t, err, "failed to get load")
	})
}

func TestLoadRepo_AcceptLoad(t *testing.T) {
	acceptQuery := regexp.QuoteMeta("UPDATE loads SET status = $1, driver_id = $2, updated_at = NOW()")
	getQuery := regexp.QuoteMeta("FROM loads WHERE id = $1")

	t.Run("wins when available", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		driverID := uuid.New()
		accepted := sampleLoad(models.LoadStatusInProgress, &driverID)

		mock.ExpectQuery(acceptQuery).
			WithArgs(models.LoadStatusInProgress, driverID, accepted.ID, models.LoadStatusAvailable).
			WillReturnRows(loadRows(accepted))

		got, err := repo.AcceptLoad(context.Background(), accepted.ID, driverID)

		require.NoError(t, err)
		assert.Equal(t, models.LoadStatusInProgress, got.Status)
		assert.Equal(t, driverID, *got.DriverID)
	})

	t.Run("loser gets already taken", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		winner := uuid.New()
		current := sampleLoad(models.LoadStatusInProgress, &winner)

		mock.ExpectQuery(acceptQuery).WillReturnRows(sqlmock.NewRows(loadColumnNames))
		mock.ExpectQuery(getQuery).WithArgs(current.ID).WillReturnRows(loadRows(current))

		_, err := repo.AcceptLoad(context.Background(), current.ID, uuid.New())

		assert.ErrorIs(t, err, models.ErrLoadAlreadyTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cancelled load is an invalid transition", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		current := sampleLoad(models.LoadStatusCancelled, nil)

		mock.ExpectQuery(acceptQuery).WillReturnRows(sqlmock.NewRows(loadColumnNames))
		mock.ExpectQuery(getQuery).WithArgs(current.ID).WillReturnRows(loadRows(current))

		_, err := repo.AcceptLoad(context.Background(), current.ID, uuid.New())

		assert.ErrorIs(t, err, models.ErrInvalidStateTransition)
	})

	t.Run("missing load", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		id := uuid.New()

		mock.ExpectQuery(acceptQuery).WillReturnRows(sqlmock.NewRows(loadColumnNames))
		mock.ExpectQuery(getQuery).WithArgs(id).WillReturnRows(sqlmock.NewRows(loadColumnNames))

		_, err := repo.AcceptLoad(context.Background(), id, uuid.New())

		assert.ErrorIs(t, err, models.ErrLoadNotFound)
	})
}

func TestLoadRepo_CompleteLoad(t *testing.T) {
	completeQuery := regexp.QuoteMeta("UPDATE loads SET status = $1, updated_at = NOW()")
	getQuery := regexp.QuoteMeta("FROM loads WHERE id = $1")

	t.Run("assigned driver", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		driverID := uuid.New()
		completed := sampleLoad(models.LoadStatusCompleted, &driverID)

		mock.ExpectQuery(completeQuery + ".*" + regexp.QuoteMeta("AND driver_id = $4")).
			WithArgs(models.LoadStatusCompleted, completed.ID, models.LoadStatusInProgress, driverID).
			WillReturnRows(loadRows(completed))

		got, err := repo.CompleteLoad(context.Background(), completed.ID, &driverID)

		require.NoError(t, err)
		assert.Equal(t, models.LoadStatusCompleted, got.Status)
	})

	t.Run("admin without driver filter", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		driverID := uuid.New()
		completed := sampleLoad(models.LoadStatusCompleted, &driverID)

		mock.ExpectQuery(completeQuery).
			WithArgs(models.LoadStatusCompleted, completed.ID, models.LoadStatusInProgress).
			WillReturnRows(loadRows(completed))

		_, err := repo.CompleteLoad(context.Background(), completed.ID, nil)

		assert.NoError(t, err)
	})

	t.Run("available load cannot be completed", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		current := sampleLoad(models.LoadStatusAvailable, nil)

		mock.ExpectQuery(completeQuery).WillReturnRows(sqlmock.NewRows(loadColumnNames))
		mock.ExpectQuery(getQuery).WithArgs(current.ID).WillReturnRows(loadRows(current))

		_, err := repo.CompleteLoad(context.Background(), current.ID, nil)

		assert.ErrorIs(t, err, models.ErrInvalidStateTransition)
	})

	t.Run("other driver is forbidden", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		assigned := uuid.New()
		current := sampleLoad(models.LoadStatusInProgress, &assigned)
		other := uuid.New()

		mock.ExpectQuery(completeQuery).WillReturnRows(sqlmock.NewRows(loadColumnNames))
		mock.ExpectQuery(getQuery).WithArgs(current.ID).WillReturnRows(loadRows(current))

		_, err := repo.CompleteLoad(context.Background(), current.ID, &other)

		assert.ErrorIs(t, err, models.ErrForbidden)
	})
}

func TestLoadRepo_ReleaseLoad(t *testing.T) {
	releaseQuery := regexp.QuoteMeta("UPDATE loads SET status = $1, driver_id = NULL, updated_at = NOW()")

	t.Run("in progress becomes available", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		released := sampleLoad(models.LoadStatusAvailable, nil)

		mock.ExpectQuery(releaseQuery).
			WithArgs(models.LoadStatusAvailable, released.ID, models.LoadStatusInProgress).
			WillReturnRows(loadRows(released))

		got, err := repo.ReleaseLoad(context.Background(), released.ID, nil)

		require.NoError(t, err)
		assert.Equal(t, models.LoadStatusAvailable, got.Status)
		assert.Nil(t, got.DriverID)
	})

	t.Run("completed load cannot be released", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		driverID := uuid.New()
		current := sampleLoad(models.LoadStatusCompleted, &driverID)

		mock.ExpectQuery(releaseQuery).WillReturnRows(sqlmock.NewRows(loadColumnNames))
		mock.ExpectQuery(regexp.QuoteMeta("FROM loads WHERE id = $1")).WillReturnRows(loadRows(current))

		_, err := repo.ReleaseLoad(context.Background(), current.ID, &driverID)

		assert.ErrorIs(t, err, models.ErrInvalidStateTransition)
	})
}

func TestLoadRepo_CancelAndDelete(t *testing.T) {
	t.Run("cancel available", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		cancelled := sampleLoad(models.LoadStatusCancelled, nil)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE loads SET status = $1, updated_at = NOW()")).
			WithArgs(models.LoadStatusCancelled, cancelled.ID, models.LoadStatusAvailable).
			WillReturnRows(loadRows(cancelled))

		got, err := repo.CancelLoad(context.Background(), cancelled.ID)

		require.NoError(t, err)
		assert.Equal(t, models.LoadStatusCancelled, got.Status)
	})

	t.Run("cancel in progress is rejected", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		driverID := uuid.New()
		current := sampleLoad(models.LoadStatusInProgress, &driverID)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE loads SET status = $1")).WillReturnRows(sqlmock.NewRows(loadColumnNames))
		mock.ExpectQuery(regexp.QuoteMeta("FROM loads WHERE id = $1")).WillReturnRows(loadRows(current))

		_, err := repo.CancelLoad(context.Background(), current.ID)

		assert.ErrorIs(t, err, models.ErrInvalidStateTransition)
	})

	t.Run("delete available", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		load := sampleLoad(models.LoadStatusAvailable, nil)

		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM loads WHERE id = $1 AND status = $2")).
			WithArgs(load.ID, models.LoadStatusAvailable).
			WillReturnRows(loadRows(load))

		got, err := repo.DeleteLoad(context.Background(), load.ID)

		require.NoError(t, err)
		assert.Equal(t, load.ID, got.ID)
	})

	t.Run("delete mid-delivery is rejected", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		driverID := uuid.New()
		current := sampleLoad(models.LoadStatusInProgress, &driverID)

		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM loads")).WillReturnRows(sqlmock.NewRows(loadColumnNames))
		mock.ExpectQuery(regexp.QuoteMeta("FROM loads WHERE id = $1")).WillReturnRows(loadRows(current))

		_, err := repo.DeleteLoad(context.Background(), current.ID)

		assert.ErrorIs(t, err, models.ErrInvalidStateTransition)
	})
}

func TestLoadRepo_ListAvailableLoads(t *testing.T) {
	repo, mock, _ := setupLoadRepoTest(t)
	load := sampleLoad(models.LoadStatusAvailable, nil)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1 AND origin_geohash LIKE $2 || '%' AND body_type = $3 ORDER BY created_at DESC")).
		WithArgs(models.LoadStatusAvailable, "th3", models.BodyTypeFlatbed).
		WillReturnRows(loadRows(load))

	list, err := repo.ListAvailableLoads(context.Background(), models.LoadFilter{Region: "TH3", BodyType: models.BodyTypeFlatbed})

	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadRepo_ListLoadsByUser(t *testing.T) {
	repo, mock, _ := setupLoadRepoTest(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE owner_id = $1 OR driver_id = $1")).
		WithArgs(userID).
		WillReturnRows(loadRows(sampleLoad(models.LoadStatusAvailable, nil), sampleLoad(models.LoadStatusCompleted, &userID)))

	list, err := repo.ListLoadsByUser(context.Background(), userID)

	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestLoadRepo_ListLoadsByIDs(t *testing.T) {
	t.Run("empty input skips the query", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)

		list, err := repo.ListLoadsByIDs(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, list)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("expands ids", func(t *testing.T) {
		repo, mock, _ := setupLoadRepoTest(t)
		a := sampleLoad(models.LoadStatusAvailable, nil)
		b := sampleLoad(models.LoadStatusAvailable, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM loads WHERE id IN (?, ?)")).
			WithArgs(a.ID, b.ID).
			WillReturnRows(loadRows(a, b))

		list, err := repo.ListLoadsByIDs(context.Background(), []uuid.UUID{a.ID, b.ID})

		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
}
