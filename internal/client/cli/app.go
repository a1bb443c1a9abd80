package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/iisclient/internal/client/client"
	"github.com/dmitrijs2005/iisclient/internal/client/config"
	"github.com/dmitrijs2005/iisclient/internal/client/services"
	"github.com/dmitrijs2005/iisclient/internal/client/transport"
	"github.com/dmitrijs2005/iisclient/internal/filex"
	"github.com/dmitrijs2005/iisclient/internal/logging"
)

type App struct {
	config         *config.Config
	log            logging.Logger
	api            client.Client
	authService    services.AuthService
	sessionService services.SessionService
	db             *sql.DB
	studentNumber  string
	fullName       string
	reader         *bufio.Reader
	out            io.Writer
}

// NewApp builds the HTTP transport, API client and session store described by c.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.New(os.Stderr, c.LogBackend, c.LogLevel, c.LogFormat)

	if _, err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath())
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	tr := transport.NewHTTPTransport(transport.HTTPOptions{
		Timeout:      c.RequestTimeout,
		MaxRetries:   c.MaxRetries,
		RetryBackoff: c.RetryBackoff,
		UserAgent:    c.UserAgent,
		Logger:       log,
	})

	api := client.New(client.Options{
		BaseURL:   c.BaseURL,
		Timeout:   c.RequestTimeout,
		UserAgent: c.UserAgent,
		Transport: tr,
		Logger:    log,
	})

	a := newApp(c, log, api, db, bufio.NewReader(os.Stdin), os.Stdout)
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, api client.Client, db *sql.DB, r *bufio.Reader, w io.Writer) *App {
	return &App{
		config:         c,
		log:            log,
		api:            api,
		authService:    services.NewAuthService(api),
		sessionService: services.NewSessionService(api, db, nil),
		db:             db,
		reader:         r,
		out:            w,
	}
}

// Run announces a remembered session, if any, and blocks in the REPL until
// the user leaves.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)

	fmt.Fprintln(a.out, "IIS client", a.config.UserAgent)
	if saved, ok, err := a.sessionService.Saved(ctx); err == nil && ok {
		fmt.Fprintf(a.out, "Remembered session for %s (until %s). Type 'restore' to resume it.\n",
			saved.StudentNumber, saved.ExpiresAt.Local().Format(timeLayout))
	}

	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the API client and the database.
func (a *App) Close(ctx context.Context) {
	if err := a.authService.Close(ctx); err != nil {
		a.log.Warn(ctx, "error closing client", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "error closing database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.api.IsAuthenticated()
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		a.studentNumber, a.fullName = "", ""
		return "not logged in"
	}
	if a.studentNumber == "" {
		return "logged in"
	}
	return a.studentNumber
}
