package support

import (
	"context"

	"github.com/azim218/RentMyWaifu/internal/models"
)

type Repository interface {
	Append(ctx context.Context, req models.SupportRequest) error
	Last(ctx context.Context, n int) ([]models.SupportRequest, error)
	Count(ctx context.Context) (int, error)
}
