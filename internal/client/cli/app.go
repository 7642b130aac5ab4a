package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/dmitrijs2005/carstorage/internal/client/client"
	"github.com/dmitrijs2005/carstorage/internal/client/config"
	"github.com/dmitrijs2005/carstorage/internal/client/export"
	"github.com/dmitrijs2005/carstorage/internal/client/policy"
	"github.com/dmitrijs2005/carstorage/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/carstorage/internal/client/session"
	"github.com/dmitrijs2005/carstorage/internal/client/viewmodel"
	"github.com/dmitrijs2005/carstorage/internal/logging"
	"golang.org/x/text/language"
)

// apiClient is what the App needs from the resource layer.
type apiClient interface {
	session.Authenticator
	viewmodel.CarsAPI
	viewmodel.UsersAPI
	viewmodel.TasksAPI
}

type App struct {
	config   *config.Config
	log      logging.Logger
	api      apiClient
	db       *sql.DB
	session  *session.Store
	scope    *policy.Selector
	profile  *policy.ProfileSelector
	cars     *viewmodel.Cars
	users    *viewmodel.Users
	tasks    *viewmodel.Tasks
	exporter export.Exporter
	reader   *bufio.Reader
	out      io.Writer
	now      func() time.Time
}

// NewApp opens the local database and wires the client stack against the
// configured server.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	var store *session.Store
	api := client.NewHTTPClient(c.ServerURL,
		client.TokenFunc(func() string { return store.Token() }),
		client.WithLogger(log),
	)
	slot := session.NewMetadataSlot(metadata.NewSQLiteRepository(db))
	store = session.NewStore(api, slot, log)

	a := newApp(c, api, store, log)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, api apiClient, store *session.Store, log logging.Logger) *App {
	a := &App{
		config:   c,
		log:      log,
		api:      api,
		session:  store,
		scope:    policy.NewSelector(),
		profile:  policy.NewProfileSelector(),
		exporter: newExporter(c),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		now:      time.Now,
	}

	opts := []viewmodel.Option{viewmodel.WithLogger(log)}
	if c.Language != "" {
		opts = append(opts, viewmodel.WithLanguage(language.Make(c.Language)))
	}
	if c.StaleGuard {
		opts = append(opts, viewmodel.WithStaleGuard())
	}
	a.cars = viewmodel.NewCars(api, a.carQuery, opts...)
	a.users = viewmodel.NewUsers(api, opts...)
	a.tasks = viewmodel.NewTasks(api, opts...)

	store.Subscribe(a.sessionChanged)
	return a
}

func newExporter(c *config.Config) export.Exporter {
	switch {
	case c.S3Bucket != "":
		return export.NewS3Exporter(export.S3Config{
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
		})
	case c.ExportDir != "":
		return export.NewFileExporter(c.ExportDir)
	}
	return nil
}

// carQuery is evaluated on every car load so the list always follows the
// current session and scope.
func (a *App) carQuery() url.Values {
	return policy.Evaluate(a.session.Current(), a.scope.Scope()).Query
}

func (a *App) decision() policy.Decision {
	return policy.Evaluate(a.session.Current(), a.scope.Scope())
}

// sessionChanged drops everything derived from the previous session.
func (a *App) sessionChanged(s session.Session) {
	a.scope.Reset(s)
	a.profile.Reset(s)
	a.cars.Edit.Cancel()
	a.cars.Reset()
	a.users.Reset()
	a.tasks.Reset()
}

// Run forces the anonymous start, then serves the REPL until exit.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Init(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Car storage CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().Authenticated()
}

func (a *App) isAdmin() bool {
	return a.session.Current().IsAdmin
}

func (a *App) status() string {
	s := a.session.Current()
	if !s.Authenticated() {
		return "(logged out)"
	}
	if !s.IsAdmin {
		return fmt.Sprintf("(#%d)", s.SubjectID)
	}
	return fmt.Sprintf("(#%d admin, scope %s)", s.SubjectID, a.decision().Scope)
}

// refresh loads the collections a freshly logged-in session starts with.
// Admins get their scope defaulted once the user list is in.
func (a *App) refresh(ctx context.Context) error {
	sess := a.session.Current()
	if err := a.users.Load(ctx); err != nil {
		return err
	}
	a.scope.UsersLoaded(sess)
	a.profile.UsersLoaded(sess, a.users.Items())
	return a.cars.Load(ctx)
}

func (a *App) notify(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}
