package users

import (
	"context"

	"github.com/azim218/RentMyWaifu/internal/models"
)

type Repository interface {
	Create(ctx context.Context, username string, cred *models.UserCredential) error
	GetByUsername(ctx context.Context, username string) (*models.UserCredential, error)
	UpdateDigest(ctx context.Context, username string, digest string) error
	UpdatePointsStatus(ctx context.Context, username string, points int, status models.Status) error
	All(ctx context.Context) (map[string]models.UserCredential, error)
}
