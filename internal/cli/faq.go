package cli

import (
	"context"
	"fmt"
)

// faqItems mirrors the original storefront's FAQ page content.
var faqItems = []struct {
	question string
	answer   string
}{
	{
		"How do I start using the service?",
		"Register, pick the account you need and pay for access.",
	},
	{
		"What guarantees do you provide?",
		"All accounts are guaranteed to work and are replaced if anything goes wrong.",
	},
	{
		"How do I contact support?",
		"Use the support form, or message the guarantors directly.",
	},
	{
		"Which payment methods are available?",
		"All popular payment methods are accepted; ask the guarantors for details.",
	},
}

// Faq prints the frequently asked questions. Available to everyone.
func (a *App) Faq(ctx context.Context) error {
	for _, item := range faqItems {
		fmt.Printf("Q: %s\n", item.question)
		fmt.Printf("A: %s\n\n", item.answer)
	}
	return nil
}
