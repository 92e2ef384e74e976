package usecase

import (
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/services/users"
)

// UserUC implements the user use case interface
type UserUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, userRepo users.UserRepo) *UserUC {
	return &UserUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}
