// Package main is the entry point for flowboard. It wires the board engine
// using samber/do v2, seeds the demo boards when configured to, and logs
// what the store holds before flushing telemetry.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/flowboard/internal/adapters/memory"
	"github.com/jsamuelsen11/flowboard/internal/app"
	"github.com/jsamuelsen11/flowboard/internal/domain"
	"github.com/jsamuelsen11/flowboard/internal/domain/board"
	"github.com/jsamuelsen11/flowboard/internal/platform/config"
	"github.com/jsamuelsen11/flowboard/internal/platform/logging"
	"github.com/jsamuelsen11/flowboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/flowboard/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := flag.String("profile", os.Getenv("APP_PROFILE"), "configuration profile (local, dev, qa, prod)")
	configDir := flag.String("config-dir", "configs", "directory holding base.yaml and the profile files")
	flag.Parse()

	if *profile == "" {
		return errors.New("a profile is required: pass -profile or set APP_PROFILE (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(*profile, config.WithConfigDir(*configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, logger)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, logger)

	svc, err := do.Invoke[*app.BoardService](injector)
	if err != nil {
		return fmt.Errorf("resolving board service: %w", err)
	}

	if cfg.Seed.Enabled {
		if err := seed(ctx, svc, cfg.Seed.OwnerID, logger); err != nil {
			return err
		}
		if err := logOwnedBoards(ctx, do.MustInvoke[ports.BoardService](injector), cfg.Seed.OwnerID, logger); err != nil {
			return err
		}
	}

	logger.Info("flowboard ready", slog.String("profile", *profile))
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	opts := telemetry.Options{
		ServiceName: cfg.Telemetry.ServiceName,
		Exporter:    cfg.Telemetry.Exporter,
		Endpoint:    cfg.Telemetry.Endpoint,
		Headers:     cfg.Telemetry.Headers,
	}

	tp, err := telemetry.InitTracer(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx, opts)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.BoardRepository, error) {
		return memory.NewBoardRepository(), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.BoardService, error) {
		repo := do.MustInvoke[ports.BoardRepository](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewBoardService(repo, domain.SystemClock{}, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		return do.MustInvoke[*app.BoardService](i), nil
	})
}

// seed stores the demo boards and logs the projection of each.
func seed(ctx context.Context, svc *app.BoardService, rawOwner string, logger *slog.Logger) error {
	owner, err := board.ParseUserID(rawOwner)
	if err != nil {
		return fmt.Errorf("seed owner: %w", err)
	}

	views, err := svc.SeedDemo(ctx, owner)
	if err != nil {
		return fmt.Errorf("seeding demo boards: %w", err)
	}

	for _, v := range views {
		columns := make([]any, 0, len(v.Columns))
		for _, c := range v.Columns {
			columns = append(columns, slog.Group(c.Name,
				slog.Int("order", c.Order),
				slog.Int("cards", len(c.Cards)),
				slog.Any("wip_limit", c.WipLimit),
			))
		}
		logger.Info("seeded board",
			slog.String("board_id", v.ID.String()),
			slog.String("name", v.Name),
			slog.Int("members", len(v.Members)),
			slog.Group("columns", columns...),
		)
	}
	return nil
}

// logOwnedBoards reads the seed owner's boards back through the service port.
func logOwnedBoards(ctx context.Context, svc ports.BoardService, rawOwner string, logger *slog.Logger) error {
	owner, err := board.ParseUserID(rawOwner)
	if err != nil {
		return fmt.Errorf("seed owner: %w", err)
	}

	views, err := svc.ListBoards(ctx, owner)
	if err != nil {
		return fmt.Errorf("listing boards: %w", err)
	}
	names := make([]string, 0, len(views))
	for _, v := range views {
		names = append(names, v.Name)
	}
	logger.Info("boards available", slog.Int("count", len(views)), slog.Any("names", names))
	return nil
}
