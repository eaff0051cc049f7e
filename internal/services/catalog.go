package services

import (
	"context"

	"github.com/azim218/RentMyWaifu/internal/models"
	"github.com/azim218/RentMyWaifu/internal/repositories/accounts"
)

type CatalogService struct {
	accounts accounts.Repository
}

func NewCatalogService(repo accounts.Repository) *CatalogService {
	return &CatalogService{accounts: repo}
}

// List returns all catalog accounts in storage order.
func (s *CatalogService) List(ctx context.Context) ([]models.Account, error) {
	return s.accounts.All(ctx)
}

// Add appends a new account to the catalog. Admin only. Name uniqueness is
// not enforced.
func (s *CatalogService) Add(ctx context.Context, acc models.Account, session *models.Session) error {
	if err := requireAdmin(session); err != nil {
		return err
	}
	if acc.Avatar == "" {
		acc.Avatar = models.DefaultAvatar
	}
	if acc.Status == "" {
		acc.Status = models.StatusBronze
	}
	return s.accounts.Append(ctx, acc)
}

// UpdateStatus changes the status of the first account matching name.
// Admin only.
func (s *CatalogService) UpdateStatus(ctx context.Context, name string, status models.Status, session *models.Session) error {
	if err := requireAdmin(session); err != nil {
		return err
	}
	return s.accounts.UpdateStatus(ctx, name, status)
}

// UpdateAvatar changes the avatar of the first account matching name.
// Admin only.
func (s *CatalogService) UpdateAvatar(ctx context.Context, name, avatar string, session *models.Session) error {
	if err := requireAdmin(session); err != nil {
		return err
	}
	return s.accounts.UpdateAvatar(ctx, name, avatar)
}
