package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Madhav-Gupta-28/seafood-backend-go/checkout"
	"github.com/Madhav-Gupta-28/seafood-backend-go/config"
	"github.com/Madhav-Gupta-28/seafood-backend-go/database"
	"github.com/Madhav-Gupta-28/seafood-backend-go/events"
	"github.com/Madhav-Gupta-28/seafood-backend-go/handlers"
	"github.com/Madhav-Gupta-28/seafood-backend-go/metrics"
	"github.com/Madhav-Gupta-28/seafood-backend-go/notify"
	"github.com/Madhav-Gupta-28/seafood-backend-go/routes"
	"github.com/Madhav-Gupta-28/seafood-backend-go/storefront"
	"github.com/Madhav-Gupta-28/seafood-backend-go/tracing"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != "" {
			cfg.Port = servePort
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
}

func serve(ctx context.Context, cfg *config.Config) error {
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("shop time zone: %w", err)
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	if cfg.JWTSecret == "" {
		e.Logger.Warn("JWT_SECRET is not set, admin routes are disabled")
	}

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		ServiceName: "seafood-backend",
		Environment: cfg.AppEnv,
		ExporterURL: cfg.OtelExporterURL,
		SampleRate:  cfg.OtelSampleRate,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdownTracing(context.Background())

	// Connect to MongoDB
	client, db, err := database.ConnectDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer client.Disconnect(context.Background())

	orders := database.NewOrderStore(db)
	book := storefront.NewOrderBook(e.Logger)
	if list, err := orders.List(ctx); err != nil {
		e.Logger.Errorf("Failed to load orders, starting with an empty order book: %v", err)
	} else {
		book.Load(list)
		e.Logger.Infof("loaded %d orders", len(list))
	}

	checkoutMetrics := metrics.NewCheckout()
	telegram := notify.NewTelegramClient(cfg.TelegramAPIURL)

	deps := checkout.FinalizerDeps{
		Store:    orders,
		Notifier: telegram,
		Logger:   e.Logger,
		Metrics:  checkoutMetrics,
		Location: loc,
	}
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			e.Logger.Warnf("order events disabled: %v", err)
		} else {
			defer publisher.Close()
			deps.Publisher = publisher
		}
	}

	sessions := checkout.NewManager(book, deps, checkout.RedirectDelays{
		MapLookup:      cfg.MapLookupDelay,
		PaymentGateway: cfg.PaymentRedirectDelay,
	})
	go sweepSessions(ctx, sessions, cfg.SessionIdleTimeout, e.Logger)

	h := &handlers.Handler{
		Products: database.NewProductStore(db),
		Settings: database.NewSettingsStore(db),
		Orders:   orders,
		Book:     book,
		Sessions: sessions,
		Notifier: telegram,
		Admin: handlers.AdminCredentials{
			Email:        cfg.AdminEmail,
			PasswordHash: cfg.AdminPasswordHash,
			JWTSecret:    cfg.JWTSecret,
			TokenTTL:     cfg.JWTTTL,
		},
		Location: loc,
	}
	routes.SetupRoutes(e, h, checkoutMetrics.Handler())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           tracing.WrapHTTPHandler(e),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		e.Logger.Infof("Server starting on port %s...", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	e.Logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func sweepSessions(ctx context.Context, sessions *checkout.Manager, idle time.Duration, logger echo.Logger) {
	if idle <= 0 {
		return
	}
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Sweep(idle); n > 0 {
				logger.Infof("closed %d idle checkout sessions", n)
			}
		}
	}
}
