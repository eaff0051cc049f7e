package services

import (
	"context"

	"github.com/azim218/RentMyWaifu/internal/common"
	"github.com/azim218/RentMyWaifu/internal/config"
	"github.com/azim218/RentMyWaifu/internal/cryptox"
	"github.com/azim218/RentMyWaifu/internal/logging"
	"github.com/azim218/RentMyWaifu/internal/models"
	"github.com/azim218/RentMyWaifu/internal/repositories/users"
)

// Registration defaults for new users.
const (
	registrationPoints = 100
	registrationStatus = models.StatusBronze
)

type AuthService struct {
	users  users.Repository
	legacy bool
	log    logging.Logger
}

func NewAuthService(repo users.Repository, cfg *config.Config, log logging.Logger) *AuthService {
	return &AuthService{
		users:  repo,
		legacy: cfg.LegacyDigests,
		log:    log,
	}
}

// Register creates a credential for username. The new user is not logged in.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return common.ErrMissingField
	}

	var digest string
	var err error
	if s.legacy {
		digest = cryptox.LegacyDigest([]byte(password))
	} else {
		digest, err = cryptox.HashPassword([]byte(password))
		if err != nil {
			return err
		}
	}

	cred := &models.UserCredential{
		Password: digest,
		IsAdmin:  false,
		Points:   registrationPoints,
		Status:   registrationStatus,
	}

	return s.users.Create(ctx, username, cred)
}

// Login checks the password against the stored digest and returns a session
// snapshot of the credential. A match against a legacy digest upgrades the
// stored digest to bcrypt unless legacy mode pins the old format; a failed
// upgrade is logged and does not fail the login.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	cred, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	ok, legacyDigest := cryptox.VerifyPassword(cred.Password, []byte(password))
	if !ok {
		return nil, common.ErrWrongPassword
	}

	if legacyDigest && !s.legacy {
		if digest, err := cryptox.HashPassword([]byte(password)); err == nil {
			if err := s.users.UpdateDigest(ctx, username, digest); err != nil {
				s.log.Warn(ctx, "digest upgrade failed", "user", username, "error", err)
			}
		}
	}

	return &models.Session{
		Username: username,
		IsAdmin:  cred.IsAdmin,
		Points:   cred.Points,
		Status:   cred.Status,
	}, nil
}

// Logout returns the anonymous session.
func (s *AuthService) Logout(_ *models.Session) *models.Session {
	return models.Anonymous()
}
