package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/loadboard/internal/pkg/database"
	"github.com/piresc/loadboard/internal/pkg/models"
)

// LoadRepo implements the load repository interface
type LoadRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewLoadRepository creates a new load repository
func NewLoadRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *LoadRepo {
	return &LoadRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
