package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/azim218/RentMyWaifu/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates a new user.
// The new user is not logged in; the original flow asks them to log in next.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, username, string(password)); err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Printf("Account %s created! Now log in.\n", username)
	return nil
}

// Login prompts for credentials and replaces the current session on success.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	a.session = session
	fmt.Printf("Welcome, %s!\n", session.Username)
	return nil
}

// Logout clears the current session.
func (a *App) Logout(ctx context.Context) error {
	a.session = a.auth.Logout(a.session)
	fmt.Println("Goodbye!")
	return nil
}
