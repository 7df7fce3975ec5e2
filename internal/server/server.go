// Package server wires storage, services and transports into one process.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "log/slog"

	"github.com/MyelinBots/stillalive-go/config"
	"github.com/MyelinBots/stillalive-go/internal/api"
	"github.com/MyelinBots/stillalive-go/internal/bot"
	"github.com/MyelinBots/stillalive-go/internal/db"
	"github.com/MyelinBots/stillalive-go/internal/db/repositories/checkin"
	"github.com/MyelinBots/stillalive-go/internal/db/repositories/user_profile"
	"github.com/MyelinBots/stillalive-go/internal/services/auth"
	"github.com/MyelinBots/stillalive-go/internal/services/calendar_view"
	"github.com/MyelinBots/stillalive-go/internal/services/checkins"
	"github.com/MyelinBots/stillalive-go/internal/services/commands"
	"github.com/MyelinBots/stillalive-go/internal/services/users"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// App holds the services shared by every transport.
type App struct {
	DB            *db.DB
	Users         users.Service
	Checkins      checkins.Service
	View          *calendar_view.View
	Authenticator auth.Authenticator
	Tokens        *auth.Tokens
}

// NewApp opens the database and builds the services. Tokens is nil when no
// JWT secret is configured.
func NewApp(cfg config.Config) (*App, error) {
	if cfg.DBConfig.AutoMigrate {
		if err := db.MigrateUp(cfg.DBConfig); err != nil {
			return nil, err
		}
	}

	database, err := db.Open(cfg.DBConfig)
	if err != nil {
		return nil, err
	}
	return newAppWithDB(database, cfg.AuthConfig), nil
}

func newAppWithDB(database *db.DB, authCfg config.AuthConfig) *App {
	profiles := user_profile.NewUserProfileRepository(database)
	userService := users.NewService(profiles)
	checkinService := checkins.NewService(checkin.NewCheckinRepository(database), userService)

	app := &App{
		DB:       database,
		Users:    userService,
		Checkins: checkinService,
		View:     calendar_view.NewView(checkinService, userService),
	}

	tokens, err := auth.NewTokens(authCfg.JWTSecret, authCfg.TTL())
	if err != nil {
		log.Warn("authentication disabled", "error", err)
		return app
	}
	app.Tokens = tokens
	app.Authenticator = auth.NewAuthenticator(profiles, tokens)
	return app
}

func (a *App) Close() error {
	return a.DB.Close()
}

// Router builds the HTTP handler. It requires a configured JWT secret.
func (a *App) Router() (*gin.Engine, error) {
	if a.Tokens == nil {
		return nil, errors.New("AuthConfig.JWTSecret must be set to serve the API")
	}
	group := api.NewHandlersGroup(a.Authenticator, a.Users, a.Checkins, a.View)
	return api.SetupRouter(group, a.Tokens, a.DB), nil
}

// Run serves HTTP, and IRC when enabled, until ctx is cancelled or either
// transport fails.
func Run(ctx context.Context, cfg config.Config) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	created, err := app.Users.Seed(ctx, cfg.Users)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	log.Info("roster ready", "created", created, "configured", len(cfg.Users))

	router, err := app.Router()
	if err != nil {
		return err
	}

	var ircBot *bot.Bot
	if cfg.IRCConfig.Enabled {
		ircBot, err = bot.New(cfg.IRCConfig, func(client commands.IRCClient) *commands.CommandControllerImpl {
			return commands.NewCommandController(client, app.Checkins, app.Users, cfg.AppConfig.Location())
		})
		if err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppConfig.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		log.Info("HTTP server starting", "addr", srv.Addr, "version", cfg.AppConfig.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if ircBot != nil {
		g.Go(func() error {
			log.Info("IRC bot starting", "host", cfg.IRCConfig.Host, "channels", cfg.IRCConfig.Channels)
			return ircBot.Run(ctx)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP server shutdown failed", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("exited")
	return nil
}
