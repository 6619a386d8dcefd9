// Package cli implements the interactive account client: the screens, the
// prompt helpers, and the command loop that routes between them.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/accountcli/internal/client/api"
	"github.com/dmitrijs2005/accountcli/internal/client/config"
	"github.com/dmitrijs2005/accountcli/internal/client/form"
	"github.com/dmitrijs2005/accountcli/internal/client/repositories/state"
	"github.com/dmitrijs2005/accountcli/internal/client/session"
	"github.com/dmitrijs2005/accountcli/internal/client/storage"
	"github.com/dmitrijs2005/accountcli/internal/logging"
)

// App wires the screens to their dependencies: the API client, the session
// store, and the terminal.
type App struct {
	config  *config.Config
	api     api.Client
	session *session.Store
	log     logging.Logger
	reader  *bufio.Reader
	styles  Styles

	db *sql.DB
}

// NewApp opens the local state database and builds the client stack.
// Close must be called when the app is done.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabaseFilePath)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	sess := session.NewStore(state.NewSQLiteRepository(db), log)

	return &App{
		config:  cfg,
		api:     api.NewHTTPClient(cfg.ServerEndpointAddr, sess, log),
		session: sess,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		styles:  DefaultStyles(),
		db:      db,
	}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run restores a persisted session (fetching the profile to prove the token
// still works), then hands control to the command loop.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Init(ctx); err != nil {
		return err
	}

	if a.session.Authenticated() {
		if err := a.session.Refresh(ctx, a.api); err != nil {
			// The store has already dropped the session.
			printlnFn(a.styles.Muted.Render("Stored session is no longer valid, please log in."))
		} else if u := a.session.User(); u != nil {
			printlnFn(a.styles.Muted.Render("Welcome back, " + u.FullName()))
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.statusLine, scanner)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

// statusLine decorates the prompt with the signed-in identity.
func (a *App) statusLine() string {
	if u := a.session.User(); u != nil {
		return "(" + u.Email + ")"
	}
	if a.session.Authenticated() {
		return "(authenticated)"
	}
	return ""
}

// showStatus renders a controller's banner, if any.
func (a *App) showStatus(f *form.Controller) {
	if st := f.Status(); st != nil {
		printlnFn(a.styles.RenderStatus(st))
	}
}

// WhoAmI prints the cached identity and token expiry.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("No profile cached.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s>", u.FullName(), u.Email))
	if exp := a.session.ExpiresAt(); !exp.IsZero() {
		printlnFn(a.styles.Muted.Render("session expires " + exp.Local().Format("2006-01-02 15:04")))
	}
	return nil
}

// Ping probes the backend and reports reachability.
func (a *App) Ping(ctx context.Context) error {
	if err := a.api.Ping(ctx); err != nil {
		printlnFn(a.styles.Error.Render("Server unreachable: " + err.Error()))
		return err
	}
	printlnFn(a.styles.Success.Render("Server is up."))
	return nil
}

// Logout drops the session locally. There is no server-side call to make;
// the token simply stops being presented.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}
