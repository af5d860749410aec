package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/stackguard/internal/client/config"
	"github.com/dmitrijs2005/stackguard/internal/client/route"
	"github.com/dmitrijs2005/stackguard/internal/client/services"
	"github.com/dmitrijs2005/stackguard/internal/client/storage"
	"github.com/dmitrijs2005/stackguard/internal/client/validate"
	"github.com/dmitrijs2005/stackguard/internal/filex"
	"github.com/dmitrijs2005/stackguard/internal/i18n"
	"github.com/dmitrijs2005/stackguard/internal/logging"
)

// App is the flow controller: it owns the current screen and turns REPL
// commands into navigation attempts and session calls.
type App struct {
	log         logging.Logger
	db          *sql.DB
	session     services.SessionService
	guard       *route.Guard
	validator   *validate.Validator
	catalog     *i18n.Catalog
	submitDelay time.Duration

	reader  *bufio.Reader
	ttyFd   int
	out     io.Writer
	styles  styles
	current route.Route
}

// NewApp opens the local store named by cfg, restores the previous session
// and prepares the screens. in and out are the terminal streams.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	catalog, err := i18n.New(cfg.Lang)
	if err != nil {
		return nil, err
	}

	if err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	session := services.NewSessionManager(db, log)
	if err := session.Hydrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		log:         log,
		db:          db,
		session:     session,
		guard:       route.NewGuard(session),
		validator:   validate.New(catalog),
		catalog:     catalog,
		submitDelay: cfg.SubmitDelay,
		reader:      bufio.NewReader(in),
		ttyFd:       terminalFd(in),
		out:         out,
		styles:      newStyles(out),
		current:     route.SignUp,
	}, nil
}

// Close releases the local store.
func (a *App) Close() error {
	return a.db.Close()
}

// Run shows the landing screen and blocks in the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	a.navigate(ctx, route.SignUp)
	runREPL(ctx, a, a.status, a.reader, a.out)
}

// Status prints the restored session state without starting the REPL.
func (a *App) Status(ctx context.Context) error {
	slots, err := a.session.StoredSlots(ctx)
	if err != nil {
		return err
	}

	shown, _ := a.guard.Resolve(route.Dashboard)
	if p, ok := a.session.CurrentUser(); ok {
		fmt.Fprintf(a.out, "signed in: %s (%s %s)\n", p.Email, p.FirstName, p.LastName)
	} else {
		fmt.Fprintln(a.out, "signed in: no")
	}
	fmt.Fprintf(a.out, "public key configured: %t\n", a.session.HasConfigKey())
	fmt.Fprintf(a.out, "landing screen: %s\n", shown)
	fmt.Fprintf(a.out, "stored slots: %s\n", strings.Join(slots, ", "))
	fmt.Fprintf(a.out, "language: %s\n", a.catalog.Lang())
	a.log.Debug(ctx, "status printed", "screen", shown.String())
	return nil
}

// Reset removes every account, the session and the key from the store.
func (a *App) Reset(ctx context.Context) error {
	if err := a.session.Wipe(ctx); err != nil {
		return err
	}
	a.current = route.SignUp
	fmt.Fprintln(a.out, a.styles.success.Render("Local store cleared"))
	return nil
}

// status is the REPL prompt label: who is signed in and where they are.
func (a *App) status() string {
	who := "guest"
	if p, ok := a.session.CurrentUser(); ok {
		who = p.Email
	}
	return fmt.Sprintf("(%s) %s", who, a.current)
}
