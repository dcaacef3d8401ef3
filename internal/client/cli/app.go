package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/example/covermate/internal/client/api"
	"github.com/example/covermate/internal/client/config"
	"github.com/example/covermate/internal/client/db"
	"github.com/example/covermate/internal/client/repositories/settings"
	"github.com/example/covermate/internal/client/services"
	"github.com/example/covermate/internal/client/session"
	"github.com/example/covermate/internal/client/viewmodels"
	"github.com/example/covermate/internal/logging"

	_ "modernc.org/sqlite"
)

// App ties the CLI together: configuration, the view models, and the
// stdin reader for interactive prompts.
type App struct {
	config *config.Config
	log    logging.Logger

	auth *viewmodels.AuthViewModel
	recs *viewmodels.RecommendationViewModel

	reader *bufio.Reader
}

// NewApp wires the whole client: settings database, session store,
// HTTP transport, domain services and view models.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	sqlDB, err := db.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewStore(settings.NewSQLiteRepository(sqlDB))

	apiClient := api.New(api.Config{
		BaseURL: c.BaseURL,
		Timeout: c.RequestTimeout,
	}, store, log)

	authSvc := services.NewAuthService(apiClient, store, log)
	recSvc := services.NewRecommendationService(apiClient)

	return &App{
		config: c,
		log:    log,
		auth:   viewmodels.NewAuthViewModel(authSvc, store),
		recs:   viewmodels.NewRecommendationViewModel(recSvc),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the persisted session and hands control to the REPL.
// It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.auth.CheckAuthStatus(ctx)
	scanner := bufio.NewScanner(os.Stdin)
	printlnFn("CoverMate CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, scanner)
}

// getStatus renders the prompt suffix: the user's name when a snapshot
// is loaded, or a bare marker for a restored session.
func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	if u := a.auth.User(); u != nil {
		return "(" + u.Name + ")"
	}
	return "(signed in)"
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}
