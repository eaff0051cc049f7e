package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "(guest) >"
	}
	s := a.session.Username
	if a.session.IsAdmin {
		s += " admin"
	}
	return fmt.Sprintf("(%s) >", s)
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to RentMyWaifu (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, a.getStatus, scanner)
}
