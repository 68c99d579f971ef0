// Package cli implements the interactive mapmark command line client.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/akorlov/mapmark/internal/client/client"
	"github.com/akorlov/mapmark/internal/client/config"
	"github.com/akorlov/mapmark/internal/client/services"

	_ "modernc.org/sqlite"
)

type App struct {
	config         *config.Config
	sessionService services.SessionService
	reader         *bufio.Reader

	watcherCancel context.CancelFunc
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.StatePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerURL)
	ss := services.NewSessionService(apiClient, db)

	return &App{config: c, sessionService: ss, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.sessionService.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sessionService.IsLoggedIn()
}

// startRenewalWatcher keeps the access token fresh in the background. When
// renewal fails twice in a row the session is gone and the user has to log
// in again.
func (a *App) startRenewalWatcher(ctx context.Context) {
	a.stopRenewalWatcher()

	wctx, cancel := context.WithCancel(ctx)
	a.watcherCancel = cancel

	go a.sessionService.StartRenewalWatcher(wctx, a.config.RenewalInterval, func() {
		log.Printf("Session expired, please log in again")
	})
}

func (a *App) stopRenewalWatcher() {
	if a.watcherCancel != nil {
		a.watcherCancel()
		a.watcherCancel = nil
	}
}
