package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/shivua6263/policy/internal/client/client"
	"github.com/shivua6263/policy/internal/client/config"
	"github.com/shivua6263/policy/internal/client/controllers"
	"github.com/shivua6263/policy/internal/client/media"
	"github.com/shivua6263/policy/internal/client/models"
	"github.com/shivua6263/policy/internal/client/repositories/kv"
	"github.com/shivua6263/policy/internal/client/services"
	"github.com/shivua6263/policy/internal/client/session"
	"github.com/shivua6263/policy/internal/common"
	"github.com/shivua6263/policy/internal/filex"
	"github.com/shivua6263/policy/internal/logging"
)

// DatabaseFile is the SQLite file kept in the data directory.
const DatabaseFile = "policybridge.db"

// App is the terminal client. It implements the controllers' UI interfaces
// (navigation, confirmation, user slot, image view) on top of a line-based
// terminal.
type App struct {
	cfg    *config.Config
	log    logging.Logger
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
	outMu  sync.Mutex

	store     *session.Store
	gate      *controllers.Gate
	login     *controllers.LoginFlow
	profile   *controllers.ProfileFlow
	resources map[string]*controllers.Resource
	crud      services.ResourceService
	sched     controllers.Scheduler

	mu            sync.Mutex
	page          string
	userLabel     string
	current       *controllers.Resource
	uploadEnabled bool
}

// deps are the collaborators NewApp builds from the config. Tests supply
// their own.
type deps struct {
	store    *session.Store
	client   client.Client
	resolver media.Resolver
	sched    controllers.Scheduler
	in       io.Reader
	out      io.Writer
	db       *sql.DB
}

// NewApp opens the local database, builds the REST client and wires the
// controllers.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, DatabaseFile))
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	resolver, err := newResolver(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewStore(kv.NewMemoryRepository(), kv.NewSQLiteRepository(db), log)

	return newApp(cfg, log, deps{
		store:    store,
		client:   client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, log),
		resolver: resolver,
		sched:    controllers.RealScheduler{},
		in:       os.Stdin,
		out:      os.Stdout,
		db:       db,
	}), nil
}

func newResolver(ctx context.Context, cfg *config.Config) (media.Resolver, error) {
	if !strings.EqualFold(cfg.MediaBackend, config.MediaS3) {
		return media.NewURLResolver(cfg.MediaBaseURL), nil
	}
	r, err := media.NewS3Resolver(ctx, media.S3Options{
		Bucket:       cfg.S3Bucket,
		Region:       cfg.S3Region,
		BaseEndpoint: cfg.S3BaseEndpoint,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
		Prefix:       cfg.S3Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 media: %w", err)
	}
	return r, nil
}

func newApp(cfg *config.Config, log logging.Logger, d deps) *App {
	a := &App{
		cfg:           cfg,
		log:           log,
		db:            d.db,
		reader:        bufio.NewReader(d.in),
		out:           d.out,
		store:         d.store,
		resources:     make(map[string]*controllers.Resource),
		crud:          services.NewResourceService(d.client),
		sched:         d.sched,
		page:          common.PageLogin,
		uploadEnabled: true,
	}

	a.gate = controllers.NewGate(d.store, a, a, a, log)
	a.login = controllers.NewLoginFlow(services.NewAuthService(d.client), d.store, controllers.LoginOptions{
		Navigator:     a,
		Scheduler:     d.sched,
		Logger:        log,
		RedirectDelay: cfg.LoginRedirectDelay,
		ResetDelay:    cfg.SignupResetDelay,
	})
	a.profile = controllers.NewProfileFlow(services.NewProfileService(d.client), d.resolver, a, controllers.ProfileOptions{
		Scheduler:  d.sched,
		Logger:     log,
		MessageTTL: cfg.MessageTTL,
	})
	return a
}

// resource returns the controller for def, creating it on first use.
func (a *App) resource(def models.Definition) *controllers.Resource {
	a.mu.Lock()
	defer a.mu.Unlock()
	if r, ok := a.resources[def.Name]; ok {
		return r
	}
	r := controllers.NewResource(def, a.crud, controllers.ResourceOptions{
		Confirmer:  a,
		Viewport:   a,
		Scheduler:  a.sched,
		Logger:     a.log,
		MessageTTL: a.cfg.MessageTTL,
	})
	a.resources[def.Name] = r
	return r
}

// Run prints the welcome text, skips the login page when a session exists
// and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	a.println("Policy console (type 'help' for commands)")
	a.login.CheckExistingSession(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close cancels pending timers and closes the local database.
func (a *App) Close() error {
	a.login.Close()
	a.profile.Close()
	a.mu.Lock()
	for _, r := range a.resources {
		r.Close()
	}
	a.mu.Unlock()
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.page == common.PageLogin || a.userLabel == "" {
		return fmt.Sprintf("(%s %s)", a.page, a.login.Role())
	}
	return fmt.Sprintf("(%s)", a.userLabel)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok := a.store.Get(ctx)
	return ok
}
