package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// Users prints all user records for the admin panel.
func (a *App) Users(ctx context.Context) error {
	all, err := a.admin.ListUsers(ctx, a.session)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	for username, cred := range all {
		role := ""
		if cred.IsAdmin {
			role = "  admin"
		}
		fmt.Printf("%-16s [%s] %d pts%s\n", username, cred.Status, cred.Points, role)
	}
	return nil
}

// EditUser prompts for a username and new points/status and applies the
// edit. The target's live session, if any, stays as it was.
func (a *App) EditUser(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	pointsText, err := getSimpleText(a.reader, "Points", os.Stdout)
	if err != nil {
		return err
	}
	points, err := strconv.Atoi(pointsText)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	status, err := a.promptStatus()
	if err != nil {
		return err
	}

	if err := a.admin.EditUser(ctx, username, points, status, a.session); err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("User updated")
	return nil
}

// Stats prints the admin panel's statistics row.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.admin.Stats(ctx, a.session)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Printf("Users: %d  Accounts: %d  Requests: %d\n", stats.Users, stats.Accounts, stats.Requests)
	return nil
}
