package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/azim218/RentMyWaifu/internal/models"
)

// Accounts prints the rental catalog in storage order.
func (a *App) Accounts(ctx context.Context) error {
	all, err := a.catalog.List(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(all) == 0 {
		fmt.Println("No accounts available")
		return nil
	}

	for _, acc := range all {
		fmt.Printf("%s  %-16s [%s] %d pts\n", acc.Avatar, acc.Name, acc.Status, acc.Points)
	}
	return nil
}

// AddAccount prompts for the new account's fields and appends it to the
// catalog. Points that do not parse default to 0, like the original form.
func (a *App) AddAccount(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Account name", os.Stdout)
	if err != nil {
		return err
	}
	status, err := a.promptStatus()
	if err != nil {
		return err
	}
	avatar, err := getSimpleText(a.reader, "Avatar (emoji)", os.Stdout)
	if err != nil {
		return err
	}
	pointsText, err := getSimpleText(a.reader, "Points", os.Stdout)
	if err != nil {
		return err
	}
	points, err := strconv.Atoi(pointsText)
	if err != nil {
		points = 0
	}

	acc := models.Account{Name: name, Status: status, Avatar: avatar, Points: points}
	if err := a.catalog.Add(ctx, acc, a.session); err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("Account added")
	return nil
}

// SetStatus changes the status of the first catalog account matching the
// entered name.
func (a *App) SetStatus(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Account name", os.Stdout)
	if err != nil {
		return err
	}
	status, err := a.promptStatus()
	if err != nil {
		return err
	}

	if err := a.catalog.UpdateStatus(ctx, name, status, a.session); err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("Status updated")
	return nil
}

// SetAvatar changes the avatar of the first catalog account matching the
// entered name.
func (a *App) SetAvatar(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Account name", os.Stdout)
	if err != nil {
		return err
	}
	avatar, err := getSimpleText(a.reader, "Avatar (emoji)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.catalog.UpdateAvatar(ctx, name, avatar, a.session); err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("Avatar updated")
	return nil
}

// promptStatus reads a status value, standing in for the original form's
// dropdown. Empty input falls back to Bronze.
func (a *App) promptStatus() (models.Status, error) {
	text, err := getSimpleText(a.reader, "Status (Bronze/Silver/Gold/Ultimate)", os.Stdout)
	if err != nil {
		return "", err
	}
	if text == "" {
		return models.StatusBronze, nil
	}
	status, err := models.ParseStatus(text)
	if err != nil {
		fmt.Println("Error:", err)
		return "", err
	}
	return status, nil
}
