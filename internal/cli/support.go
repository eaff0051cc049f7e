package cli

import (
	"context"
	"fmt"
	"os"
)

// Support prompts for the support form fields and submits the request.
// Works for guests too; only the email is required.
func (a *App) Support(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	subject, err := getSimpleText(a.reader, "Subject", os.Stdout)
	if err != nil {
		return err
	}
	message, err := GetMultiline(a.reader, "Message", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.support.Submit(ctx, email, subject, message, a.session); err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("Request sent! We will get back to you shortly.")
	return nil
}

// Requests prints the most recent support requests for the admin panel.
func (a *App) Requests(ctx context.Context) error {
	recent, err := a.support.ListRecent(ctx, a.config.SupportRecent, a.session)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(recent) == 0 {
		fmt.Println("No requests")
		return nil
	}

	for _, req := range recent {
		fmt.Printf("From: %s <%s>  %s\n", req.User, req.Email, req.Date)
		if req.Subject != "" {
			fmt.Printf("  Subject: %s\n", req.Subject)
		}
		if req.Message != "" {
			fmt.Printf("  %s\n", req.Message)
		}
	}
	return nil
}
