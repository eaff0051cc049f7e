package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/azim218/RentMyWaifu/internal/common"
	"github.com/azim218/RentMyWaifu/internal/models"
	"github.com/azim218/RentMyWaifu/internal/repositories/support"
)

// Test seams for the submission timestamp and id.
var (
	nowFn = time.Now
	newID = uuid.NewString
)

type SupportService struct {
	requests support.Repository
}

func NewSupportService(repo support.Repository) *SupportService {
	return &SupportService{requests: repo}
}

// Submit appends a support request, stamping id, submission time and the
// submitting user (or the guest sentinel). Email is the only required field.
func (s *SupportService) Submit(ctx context.Context, email, subject, message string, session *models.Session) error {
	if email == "" {
		return common.ErrMissingEmail
	}

	user := common.GuestName
	if session.LoggedIn() {
		user = session.Username
	}

	req := models.SupportRequest{
		ID:      newID(),
		Email:   email,
		Subject: subject,
		Message: message,
		Date:    nowFn().Format(time.RFC3339),
		User:    user,
	}

	return s.requests.Append(ctx, req)
}

// ListRecent returns the last n requests in insertion order. Admin only.
func (s *SupportService) ListRecent(ctx context.Context, n int, session *models.Session) ([]models.SupportRequest, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}
	return s.requests.Last(ctx, n)
}
