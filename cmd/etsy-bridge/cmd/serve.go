package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/etsy-bridge/api/openapi"
	"github.com/donaldgifford/etsy-bridge/internal/api/handlers"
	"github.com/donaldgifford/etsy-bridge/internal/api/middleware"
	"github.com/donaldgifford/etsy-bridge/internal/config"
	"github.com/donaldgifford/etsy-bridge/internal/engine"
	"github.com/donaldgifford/etsy-bridge/internal/etsy"
	"github.com/donaldgifford/etsy-bridge/internal/media"
	"github.com/donaldgifford/etsy-bridge/internal/publish"
	"github.com/donaldgifford/etsy-bridge/pkg/logger"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the bridge server and refresh scheduler",
		RunE:  runServe,
	}

	cmd.Flags().Int("port", 0, "listen port (overrides config and PORT)")
	cmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")
	cobra.CheckErr(viper.BindPFlag("port", cmd.Flags().Lookup("port")))
	cobra.CheckErr(viper.BindPFlag("log_level", cmd.Flags().Lookup("log-level")))

	return cmd
}

// server is a fully wired bridge.
type server struct {
	echo      *echo.Echo
	api       huma.API
	scheduler *engine.Scheduler
	sessions  *etsy.SessionStore
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port := viper.GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}
	if level := viper.GetString("log_level"); level != "" {
		cfg.Logging.Level = level
	}

	log, closer := logger.NewWithFile(cfg.Logging.Level, cfg.Logging.Format, logger.FileOptions{
		Path:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})
	defer closer.Close()

	srv, err := newServer(cfg, log)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpSrv := &http.Server{
		Addr:              addr,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	srv.scheduler.Start()

	log.Info("starting server", "addr", addr, "callback_url", cfg.Etsy.CallbackURL)
	log.Info("visit /auth to connect an Etsy account")

	go func() {
		if err := srv.echo.StartServer(httpSrv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	<-srv.scheduler.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newServer builds the session, gateway, pipeline and HTTP surface from cfg.
func newServer(cfg *config.Config, log *slog.Logger) (*server, error) {
	store := etsy.NewSessionStore()

	authOpts := []etsy.AuthOption{
		etsy.WithAuthURL(cfg.Etsy.AuthURL),
		etsy.WithTokenURL(cfg.Etsy.TokenURL),
		etsy.WithScopes(cfg.Etsy.Scopes),
		etsy.WithAuthLogger(log),
	}
	if cfg.Etsy.CodeVerifier != "" {
		authOpts = append(authOpts, etsy.WithFixedVerifier(cfg.Etsy.CodeVerifier))
	}
	flow := etsy.NewAuthFlow(cfg.Etsy.APIKey, cfg.Etsy.CallbackURL, store, authOpts...)

	tokens := etsy.NewSessionTokenProvider(store, etsy.WithRefresher(flow))

	limiter := etsy.NewRateLimiter(
		cfg.Etsy.RateLimit.PerSecond,
		cfg.Etsy.RateLimit.Burst,
		cfg.Etsy.RateLimit.DailyLimit,
	)

	gateway := etsy.NewClient(tokens, cfg.Etsy.APIKey,
		etsy.WithBaseURL(cfg.Etsy.APIBaseURL),
		etsy.WithAPIHTTPClient(&http.Client{Timeout: cfg.Etsy.RequestTimeout}),
		etsy.WithRateLimiter(limiter),
		etsy.WithLogger(log),
	)

	mediaOpts := []media.Option{
		media.WithHTTPClient(&http.Client{Timeout: cfg.Media.Timeout}),
		media.WithMaxBytes(cfg.Media.MaxBytes),
		media.WithMaxRedirects(cfg.Media.MaxRedirects),
		media.WithLogger(log),
	}
	if cfg.Media.UserAgent != "" {
		mediaOpts = append(mediaOpts, media.WithUserAgent(cfg.Media.UserAgent))
	}
	fetcher := media.NewFetcher(mediaOpts...)

	pipeline := publish.NewPipeline(gateway, fetcher,
		publish.WithDefaultRoles(publish.PropertyRoles{
			PriceOnProperty:    cfg.Publish.PriceOnProperty,
			QuantityOnProperty: cfg.Publish.QuantityOnProperty,
			SKUOnProperty:      cfg.Publish.SKUOnProperty,
		}),
		publish.WithLogger(log),
	)

	sched, err := engine.NewScheduler(store, tokens, cfg.Etsy.RefreshInterval, log)
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(
		middleware.RequestLog(log),
		middleware.Metrics(),
		middleware.Recovery(log),
	)

	api := humaecho.New(e, huma.DefaultConfig("Etsy Bridge", Version))

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(store))
	handlers.RegisterAuthRoutes(e, api, handlers.NewAuthHandler(flow, store, log))
	handlers.RegisterListingRoutes(api, handlers.NewListingHandler(pipeline))
	handlers.RegisterEtsyReadRoutes(api, handlers.NewEtsyReadHandler(gateway))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(limiter))
	handlers.RegisterUploadRoutes(e, handlers.NewUploadHandler(
		pipeline, cfg.Etsy.DefaultShopID, cfg.Media.MaxBytes, log,
	))

	openapi.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return &server{echo: e, api: api, scheduler: sched, sessions: store}, nil
}
