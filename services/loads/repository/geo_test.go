package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/loadboard/internal/pkg/models"
)

func float(v float64) *float64 { return &v }

func TestLoadRepo_GeoIndex(t *testing.T) {
	repo, _, _ := setupLoadRepoTest(t)
	ctx := context.Background()

	riyadh := sampleLoad(models.LoadStatusAvailable, nil)
	riyadh.OriginLat, riyadh.OriginLng = float(24.7136), float(46.6753)

	jeddah := sampleLoad(models.LoadStatusAvailable, nil)
	jeddah.OriginLat, jeddah.OriginLng = float(21.4858), float(39.1925)

	require.NoError(t, repo.AddAvailableLoad(ctx, riyadh))
	require.NoError(t, repo.AddAvailableLoad(ctx, jeddah))

	ids, err := repo.FindNearbyLoadIDs(ctx, 24.70, 46.70, 50)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{riyadh.ID}, ids)

	ids, err = repo.FindNearbyLoadIDs(ctx, 24.70, 46.70, 1000)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{riyadh.ID, jeddah.ID}, ids)

	require.NoError(t, repo.RemoveAvailableLoad(ctx, riyadh.ID))

	ids, err = repo.FindNearbyLoadIDs(ctx, 24.70, 46.70, 50)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestLoadRepo_AddAvailableLoadWithoutCoordinates(t *testing.T) {
	repo, _, mr := setupLoadRepoTest(t)
	ctx := context.Background()

	load := sampleLoad(models.LoadStatusAvailable, nil)
	load.OriginLat, load.OriginLng = float(24.7136), float(46.6753)
	require.NoError(t, repo.AddAvailableLoad(ctx, load))

	load.OriginLat, load.OriginLng = nil, nil
	require.NoError(t, repo.AddAvailableLoad(ctx, load))

	assert.False(t, mr.Exists("loads:available:geo"))
}
