package accounts

import (
	"context"

	"github.com/azim218/RentMyWaifu/internal/models"
)

type Repository interface {
	All(ctx context.Context) ([]models.Account, error)
	Append(ctx context.Context, acc models.Account) error
	UpdateStatus(ctx context.Context, name string, status models.Status) error
	UpdateAvatar(ctx context.Context, name string, avatar string) error
}
