package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/akorlov/mapmark/internal/client/services"
)

func (a *App) getStatus() string {
	user := a.sessionService.CurrentUser()
	if user == nil {
		return ""
	}
	return fmt.Sprintf("(%s) ", user.Email)
}

// Root restores a previously saved session, starts the background token
// renewal and hands control to the REPL.
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to mapmark CLI (type 'help' for commands)")

	if err := a.sessionService.Restore(ctx); err != nil {
		if !errors.Is(err, services.ErrNoSavedSession) {
			log.Printf("error restoring session: %s", err.Error())
		}
	} else {
		log.Printf("Restored session for %s", a.sessionService.CurrentUser().Email)
		a.startRenewalWatcher(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)

	a.stopRenewalWatcher()
}
