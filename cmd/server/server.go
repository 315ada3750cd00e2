package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	reliquaryv1alpha1 "github.com/KirkDiggler/reliquary-api/internal/api/reliquary/v1alpha1"
	"github.com/KirkDiggler/reliquary-api/internal/assets"
	"github.com/KirkDiggler/reliquary-api/internal/config"
	"github.com/KirkDiggler/reliquary-api/internal/errors"
	"github.com/KirkDiggler/reliquary-api/internal/handlers/reliquary/v1alpha1"
	"github.com/KirkDiggler/reliquary-api/internal/observability"
	"github.com/KirkDiggler/reliquary-api/internal/orchestrators/composer"
	"github.com/KirkDiggler/reliquary-api/internal/pkg/clock"
	"github.com/KirkDiggler/reliquary-api/internal/pkg/idgen"
	"github.com/KirkDiggler/reliquary-api/internal/services/loader"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Load the effect catalog once and serve the reliquary gRPC service.
The server refuses to start if the catalog cannot be loaded.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().Int("port", 50051, "gRPC server port")
	serverCmd.Flags().String("catalog", "reliquary.json", "catalog source: path, file://, http(s)://, redis:// or sqlite://")
	serverCmd.Flags().String("asset-dir", "", "directory holding relic images, enables fallback for missing files")
	serverCmd.Flags().String("asset-base-url", "", "URL prefix for relic images and status icons")

	mustBind(config.KeyPort, serverCmd.Flags().Lookup("port"))
	mustBind(config.KeyCatalogSource, serverCmd.Flags().Lookup("catalog"))
	mustBind(config.KeyAssetDir, serverCmd.Flags().Lookup("asset-dir"))
	mustBind(config.KeyAssetBaseURL, serverCmd.Flags().Lookup("asset-base-url"))
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracingCfg, err := observability.LoadTracingConfig()
	if err != nil {
		return err
	}
	shutdownTracing, err := observability.Setup(ctx, tracingCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Warn("failed to flush traces", "error", err)
		}
	}()

	handler, err := buildHandler(ctx, cfg)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to listen").WithMeta("port", cfg.Port)
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	reliquaryv1alpha1.RegisterReliquaryServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(reliquaryv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildHandler loads the catalog and wires the composer behind the gRPC handler
func buildHandler(ctx context.Context, cfg *config.Config) (*v1alpha1.Handler, error) {
	catalogLoader, err := loader.New(&loader.Config{
		Timeout:      cfg.CatalogTimeout,
		RedisOptions: cfg.RedisOptions(),
	})
	if err != nil {
		return nil, err
	}

	loaded, err := catalogLoader.Load(ctx, &loader.LoadInput{Source: cfg.CatalogSource})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load effects catalog")
	}

	assetCfg := &assets.Config{BaseURL: cfg.AssetBaseURL}
	if cfg.AssetDir != "" {
		assetCfg.FS = os.DirFS(cfg.AssetDir)
	}
	resolver, err := assets.NewResolver(assetCfg)
	if err != nil {
		return nil, err
	}

	var hinter composer.TypeHinter
	if hints := cfg.Hints(); len(hints) > 0 {
		hinter = composer.StaticHints(hints)
	}

	composerService, err := composer.NewOrchestrator(&composer.Config{
		Catalog:     loaded.Catalog,
		DiceRoller:  dice.DefaultRoller,
		EventBus:    events.NewBus(),
		IDGenerator: idgen.NewUUID("session"),
		Clock:       clock.New(),
		Assets:      resolver,
		TypeHinter:  hinter,
	})
	if err != nil {
		return nil, err
	}

	return v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ComposerService: composerService,
	})
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

func mustBind(key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}
