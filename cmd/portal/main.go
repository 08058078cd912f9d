package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"interviewpass/config"
	_ "interviewpass/docs"
	"interviewpass/internal/adapters/auth"
	"interviewpass/internal/adapters/calendar"
	"interviewpass/internal/adapters/google"
	delivery "interviewpass/internal/delivery/http"
	"interviewpass/internal/delivery/http/controllers"
	"interviewpass/internal/delivery/http/views"
	"interviewpass/internal/services"
)

// @title InterviewPass Recruiter Portal API
// @version 1.0
// @description Upcoming interviews and calendar events for signed-in recruiters.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := &cli.App{
		Name:  "portal",
		Usage: "Recruiter portal for upcoming interviews backed by Google Calendar.",
		Commands: []*cli.Command{
			serveCommand(),
			configCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application failed", "err", err)
		os.Exit(1)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP server.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Usage: "Listen port (overrides PORT)."},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if p := c.String("port"); p != "" {
				cfg.Port = p
			}
			logger := config.NewLogger(cfg.Environment, cfg.LogLevel)

			handler, err := buildHandler(cfg, logger)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, handler, logger)
		},
	}
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Validate the configuration and print the effective values (secrets masked).",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			for _, kv := range cfg.Redacted() {
				fmt.Fprintf(c.App.Writer, "%s=%s\n", kv[0], kv[1])
			}
			return nil
		},
	}
}

func buildHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	codec, err := auth.NewSessionCodec(cfg.AuthSecret, time.Now)
	if err != nil {
		return nil, fmt.Errorf("failed to create session codec: %w", err)
	}
	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	if !cfg.GoogleSignInEnabled() {
		logger.Warn("GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET not set, Google sign-in will fail")
	}

	oauthConfig := google.NewOAuthConfig(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectURL())
	newCalendar := google.NewCalendarConstructor(google.CalendarOptions{
		CalendarID: cfg.GoogleCalendarID,
		Endpoint:   cfg.GoogleCalendarAPIURL,
		Timeout:    cfg.CalendarTimeout,
		OAuth:      oauthConfig,
	})
	factory := calendar.NewFactory(newCalendar, cfg.DefaultBrand, logger, time.Now)

	signIn := services.NewSignInService(
		oauthConfig,
		google.NewProfileFetcher("", cfg.CalendarTimeout, nil),
		codec,
		cfg.SessionTTL,
		&http.Client{Timeout: cfg.CalendarTimeout},
	)

	return delivery.NewRouter(delivery.Controllers{
		Interviews: controllers.NewInterviewController(logger, factory),
		Users:      controllers.NewUserController(logger, factory),
		Auth:       controllers.NewAuthController(logger, signIn, cfg.SecureCookies()),
		Pages:      controllers.NewPageController(logger, factory, codec, renderer),
	}, delivery.RouterOptions{
		Logger:         logger,
		Verifier:       codec,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}), nil
}

func serve(ctx context.Context, cfg *config.Config, handler http.Handler, logger *slog.Logger) error {
	server := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("portal listening", "addr", server.Addr, "env", cfg.Environment)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
