package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/trace"

	"github.com/nfrund/wscatalog/internal/codegen"
	"github.com/nfrund/wscatalog/internal/config"
	"github.com/nfrund/wscatalog/internal/logging"
	"github.com/nfrund/wscatalog/internal/pubsub"
	"github.com/nfrund/wscatalog/internal/server"
	"github.com/nfrund/wscatalog/internal/storage"
	"github.com/nfrund/wscatalog/internal/topicmgr"
)

// Bus is the registry-guarded message bus.
type Bus struct {
	Publisher  *pubsub.GuardedPublisher
	Subscriber *pubsub.GuardedSubscriber
	bridge     *pubsub.WatermillBridge
}

// Shutdown closes the underlying bridge.
func (b *Bus) Shutdown() error {
	return b.bridge.Close()
}

// Tracing owns the bus tracer and flushes it on shutdown.
type Tracing struct {
	Tracer   trace.Tracer
	shutdown func(context.Context) error
}

// Shutdown flushes pending spans.
func (t *Tracing) Shutdown(ctx context.Context) error {
	return t.shutdown(ctx)
}

// New builds the injector. Services are created lazily on first use.
// logOut receives application logs.
func New(cfg *config.Config, fs afero.Fs, logOut io.Writer) *do.RootScope {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.ProvideValue(i, fs)

	do.Provide(i, func(i do.Injector) (*slog.Logger, error) {
		return logging.New(logOut, cfg.LogFormat, cfg.LogLevel)
	})
	do.Provide(i, func(i do.Injector) (*storage.CatalogStore, error) {
		return storage.NewCatalogStore(do.MustInvoke[afero.Fs](i)), nil
	})
	do.Provide(i, provideRegistry)
	do.Provide(i, func(i do.Injector) (*prometheus.Registry, error) {
		return prometheus.NewRegistry(), nil
	})
	do.Provide(i, func(i do.Injector) (*pubsub.Metrics, error) {
		return pubsub.NewMetrics(do.MustInvoke[*prometheus.Registry](i))
	})
	do.Provide(i, provideTracing)
	do.Provide(i, provideBus)
	do.Provide(i, func(i do.Injector) (*server.Server, error) {
		reg, err := do.Invoke[*topicmgr.Registry](i)
		if err != nil {
			return nil, err
		}
		metrics, err := do.Invoke[*pubsub.Metrics](i)
		if err != nil {
			return nil, err
		}
		return server.New(reg, do.MustInvoke[*prometheus.Registry](i), metrics), nil
	})
	do.Provide(i, func(i do.Injector) (*codegen.Generator, error) {
		return codegen.New(do.MustInvoke[afero.Fs](i), codegen.DefaultPackage), nil
	})

	return i
}

// provideRegistry builds the registry from CATALOG_PATH when set and from
// the built-in catalog otherwise.
func provideRegistry(i do.Injector) (*topicmgr.Registry, error) {
	logger, err := do.Invoke[*slog.Logger](i)
	if err != nil {
		return nil, err
	}
	cfg := do.MustInvoke[*config.Config](i)

	if cfg.CatalogPath == "" {
		reg, err := topicmgr.Build(topicmgr.DefaultCatalog())
		if err != nil {
			return nil, err
		}
		logger.Debug("built default catalog", "topics", reg.Stats().Topics, "commands", reg.Stats().Commands)
		return reg, nil
	}

	store := do.MustInvoke[*storage.CatalogStore](i)
	reg, err := store.LoadRegistry(context.Background(), cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.CatalogPath, err)
	}
	logger.Info("loaded catalog", "path", cfg.CatalogPath, "topics", reg.Stats().Topics, "commands", reg.Stats().Commands)
	return reg, nil
}

func provideTracing(i do.Injector) (*Tracing, error) {
	cfg := do.MustInvoke[*config.Config](i)
	tracer, shutdown, err := pubsub.SetupTracing(context.Background(), pubsub.TracingConfig{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		ZipkinURL:   cfg.Tracing.ZipkinURL,
	})
	if err != nil {
		return nil, err
	}
	return &Tracing{Tracer: tracer, shutdown: shutdown}, nil
}

func provideBus(i do.Injector) (*Bus, error) {
	reg, err := do.Invoke[*topicmgr.Registry](i)
	if err != nil {
		return nil, err
	}
	metrics, err := do.Invoke[*pubsub.Metrics](i)
	if err != nil {
		return nil, err
	}
	tracing, err := do.Invoke[*Tracing](i)
	if err != nil {
		return nil, err
	}
	cfg := do.MustInvoke[*config.Config](i)

	bridge := pubsub.NewWatermillBridge(pubsub.NewWatermillLogger(cfg.WatermillLogLevel))
	opts := []pubsub.GuardOption{pubsub.WithMetrics(metrics), pubsub.WithTracer(tracing.Tracer)}
	return &Bus{
		Publisher:  pubsub.NewGuardedPublisher(bridge, reg, opts...),
		Subscriber: pubsub.NewGuardedSubscriber(bridge, reg, opts...),
		bridge:     bridge,
	}, nil
}
