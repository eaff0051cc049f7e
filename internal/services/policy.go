// Package services implements the application operations: authentication,
// catalog management, support requests and admin edits. Every gated
// operation takes the caller's session explicitly; there is no ambient
// current-user state.
package services

import (
	"github.com/azim218/RentMyWaifu/internal/common"
	"github.com/azim218/RentMyWaifu/internal/models"
)

// requireAdmin gates mutating operations and admin views on the session's
// admin flag.
func requireAdmin(s *models.Session) error {
	if s == nil || !s.IsAdmin {
		return common.ErrPermissionDenied
	}
	return nil
}
