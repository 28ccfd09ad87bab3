// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/javajoker/catalog-service/internal/config"
	"github.com/javajoker/catalog-service/internal/database"
	"github.com/javajoker/catalog-service/internal/i18n"
	"github.com/javajoker/catalog-service/internal/router"
	"github.com/javajoker/catalog-service/internal/utils"
)

func main() {
	cmd := &cli.Command{
		Name:  "catalog-service",
		Usage: "Product catalog API",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the HTTP server",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "migrate",
						Usage: "run database migrations before serving",
						Value: true,
					},
				},
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "Run database migrations",
				Action: migrate,
			},
			{
				Name:  "token",
				Usage: "Sign a development access token with the configured JWT secret",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "user-id", Usage: "user id claim (random when empty)"},
					&cli.StringFlag{Name: "role", Value: "user", Usage: "role claim, e.g. user or admin"},
					&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour},
				},
				Action: token,
			},
		},
		DefaultCommand: "serve",
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logrus.WithError(err).Fatal("Command failed")
	}
}

func setup() (*config.Config, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logrus.SetLevel(logrus.DebugLevel)
	}

	return cfg, nil
}

func serve(ctx context.Context, c *cli.Command) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	// Initialize database
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	// Run database migrations
	if c.Bool("migrate") {
		if err := database.RunMigrations(db); err != nil {
			return err
		}
	}

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
		return fmt.Errorf("failed to initialize i18n: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize router
	r, err := router.Initialize(ctx, db, cfg)
	if err != nil {
		return err
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}
	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logrus.Info("Server exited")
	return nil
}

func migrate(ctx context.Context, c *cli.Command) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	return database.RunMigrations(db.WithContext(ctx))
}

func token(ctx context.Context, c *cli.Command) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	if cfg.IsProduction() {
		return errors.New("refusing to sign tokens in production")
	}

	userID := c.String("user-id")
	if userID == "" {
		userID = uuid.NewString()
	} else if _, err := uuid.Parse(userID); err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	utils.SetJWTConfig(cfg.JWT.SecretKey, cfg.JWT.Issuer)
	signed, err := utils.GenerateJWT(userID, c.String("role"), c.Duration("ttl"))
	if err != nil {
		return err
	}

	fmt.Println(signed)
	return nil
}
