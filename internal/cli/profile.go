package cli

import (
	"context"
	"fmt"
)

// Profile prints the current user's card: username, status and points, as
// snapshotted at login.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}

	fmt.Printf("User:   %s\n", a.session.Username)
	fmt.Printf("Status: %s\n", a.session.Status)
	fmt.Printf("Points: %d\n", a.session.Points)
	if a.session.IsAdmin {
		fmt.Println("Role:   administrator")
	}
	return nil
}
