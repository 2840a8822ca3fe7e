// Package server wires the in-memory stores, the router and the HTTP shim
// into a runnable application and handles graceful shutdown.
package server

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/blogadmin/internal/logging"
	"github.com/dmitrijs2005/blogadmin/internal/server/authtoken"
	"github.com/dmitrijs2005/blogadmin/internal/server/config"
	"github.com/dmitrijs2005/blogadmin/internal/server/httpapi"
	"github.com/dmitrijs2005/blogadmin/internal/server/models"
	"github.com/dmitrijs2005/blogadmin/internal/server/router"
	"github.com/dmitrijs2005/blogadmin/internal/server/seed"
	"github.com/dmitrijs2005/blogadmin/internal/server/sideeffect"
	"github.com/dmitrijs2005/blogadmin/internal/server/store"
	"github.com/dmitrijs2005/blogadmin/internal/server/validation"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	users         *store.Store[models.User]
	posts         *store.Store[models.Post]
	notifications *store.Store[models.Notification]
	router        *router.Router
}

// NewApp builds every component once. Nothing is global: the stores live as
// long as the App.
func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewLogger(os.Stdout, c.LogLevel, c.LogFormat)

	userOpts := []store.Option[models.User]{store.WithValidator(validation.For[models.User]())}
	postOpts := []store.Option[models.Post]{store.WithValidator(validation.For[models.Post]())}
	noteOpts := []store.Option[models.Notification]{store.WithValidator(validation.For[models.Notification]())}
	if c.SeedData {
		userOpts = append(userOpts, store.WithSeed(seed.Users()))
		postOpts = append(postOpts, store.WithSeed(seed.Posts()))
		noteOpts = append(noteOpts, store.WithSeed(seed.Notifications()))
	}

	app := &App{
		config:        c,
		logger:        logger,
		users:         store.New("users", userOpts...),
		posts:         store.New("posts", postOpts...),
		notifications: store.New("notifications", noteOpts...),
	}

	bridge := sideeffect.New(app.notifications, sideeffect.WithLogger(logger.With("module", "side_effects")))

	app.router = router.New(router.Deps{
		Users:         app.users,
		Posts:         app.posts,
		Notifications: app.notifications,
		Bridge:        bridge,
		Codec:         authtoken.NewCodec(authtoken.WithTTL(c.TokenTTL)),
		Logger:        logger.With("module", "router"),
	})

	return app, nil
}

// Router exposes the dispatcher for in-process callers.
func (app *App) Router() *router.Router { return app.router }

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.router, app.notifications,
		httpapi.WithLatency(app.config.Latency),
		httpapi.WithAllowedOrigins(app.config.AllowedOrigins),
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...",
		"users", app.users.Len(),
		"posts", app.posts.Len(),
		"notifications", app.notifications.Len(),
	)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
	app.logger.Info(context.Background(), "App stopped")
}
