package services

import (
	"context"

	"github.com/azim218/RentMyWaifu/internal/models"
	"github.com/azim218/RentMyWaifu/internal/repositories/accounts"
	"github.com/azim218/RentMyWaifu/internal/repositories/support"
	"github.com/azim218/RentMyWaifu/internal/repositories/users"
)

// Stats is the admin panel's statistics row: collection sizes.
type Stats struct {
	Users    int
	Accounts int
	Requests int
}

type AdminService struct {
	users    users.Repository
	accounts accounts.Repository
	requests support.Repository
}

func NewAdminService(u users.Repository, a accounts.Repository, r support.Repository) *AdminService {
	return &AdminService{users: u, accounts: a, requests: r}
}

// EditUser sets the target user's points and status. Admin only. The
// target's live session, if any, is a snapshot and stays as it was.
func (s *AdminService) EditUser(ctx context.Context, username string, points int, status models.Status, session *models.Session) error {
	if err := requireAdmin(session); err != nil {
		return err
	}
	return s.users.UpdatePointsStatus(ctx, username, points, status)
}

// ListUsers returns all credentials keyed by username. Admin only.
func (s *AdminService) ListUsers(ctx context.Context, session *models.Session) (map[string]models.UserCredential, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}
	return s.users.All(ctx)
}

// Stats returns the collection sizes shown on the admin panel. Admin only.
func (s *AdminService) Stats(ctx context.Context, session *models.Session) (*Stats, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	allUsers, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	allAccounts, err := s.accounts.All(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.requests.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Users:    len(allUsers),
		Accounts: len(allAccounts),
		Requests: requests,
	}, nil
}
