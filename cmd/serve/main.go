package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daygrid/scheduler/internal/handler"
	"github.com/daygrid/scheduler/internal/log"
	"github.com/daygrid/scheduler/internal/middleware"
	"github.com/daygrid/scheduler/internal/server"
	"github.com/daygrid/scheduler/pkg/config"
	"github.com/daygrid/scheduler/pkg/event"
	"github.com/daygrid/scheduler/pkg/post"
	"github.com/daygrid/scheduler/pkg/session"
	"github.com/daygrid/scheduler/pkg/storage"
	"github.com/daygrid/scheduler/pkg/user"

	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		stdlog.Fatal(err)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Environment)
	slog.SetDefault(logger)

	if err := handler.RegisterValidation(); err != nil {
		return err
	}

	db, err := storage.NewDatabase(logger, cfg.Postgresql)
	if err != nil {
		return fmt.Errorf("failed to setup database: %v", err)
	}

	redisClient, err := storage.NewRedis(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to setup redis: %v", err)
	}

	sessionTTL := time.Duration(cfg.Session.TTLSeconds) * time.Second
	sessionService := session.NewService(session.NewRepository(redisClient), sessionTTL)

	userService := user.NewService(user.NewRepository(db))
	eventService := event.NewService(event.NewRepository(db))
	postService := post.NewService(post.NewRepository(db))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.AdminUser.Username != "" {
		admin, err := userService.FindOrCreate(ctx, cfg.AdminUser.Username, cfg.AdminUser.Password, cfg.AdminUser.Name, true)
		if err != nil {
			return fmt.Errorf("failed to seed admin user: %v", err)
		}
		logger.InfoContext(ctx, "Admin user ready", "username", admin.Username)
	}

	authentication := middleware.NewAuthentication(sessionService)
	userHandler := user.NewHandler(cfg, userService, sessionService)
	eventHandler := event.NewHandler(eventService)
	postHandler := post.NewHandler(postService)

	engine := server.GetEngine(logger, cfg, authentication, userHandler, eventHandler, postHandler)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine.Handler(),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(ctx, "Listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.InfoContext(ctx, "Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newLogger returns a pretty printing logger outside of production. Both
// variants resolve the correlation ID and user from the context.
func newLogger(environment string) *slog.Logger {
	var h slog.Handler
	if environment == "production" {
		h = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		h = log.NewPrettyJSONHandler(os.Stdout, &log.PrettyJSONHandlerOptions{PrettyPrint: true})
	}
	return slog.New(log.New(h))
}
