package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-catalog-service/config"
	attrH "github.com/fekuna/omnipos-catalog-service/internal/attribute/handler"
	attrRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/attribute/repository"
	attrUCPkg "github.com/fekuna/omnipos-catalog-service/internal/attribute/usecase"
	"github.com/fekuna/omnipos-catalog-service/internal/catalogcache"
	catH "github.com/fekuna/omnipos-catalog-service/internal/category/handler"
	catRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-catalog-service/internal/category/usecase"
	"github.com/fekuna/omnipos-catalog-service/internal/metrics"
	"github.com/fekuna/omnipos-catalog-service/internal/server"
	"github.com/fekuna/omnipos-catalog-service/migrations"
	"github.com/fekuna/omnipos-catalog-service/pkg/cache"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
)

const memoryCacheCapacity = 10_000

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and gRPC servers",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "apply pending migrations before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	// 1. Load Configuration
	cfg := loadConfig()

	// 2. Initialize Logger
	appLogger := newLogger(cfg)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := openDB(cfg, appLogger)
	if err != nil {
		return err
	}
	defer db.Close()

	if serveMigrate {
		migrationDB, err := openDB(cfg, appLogger)
		if err != nil {
			return err
		}
		if err := migrations.RunMigrationsUp(migrationDB.DB); err != nil {
			return err
		}
		appLogger.Info("Migrations applied")
	}

	// 4. Initialize Cache
	store, closeStore, err := newCacheStore(cfg, appLogger)
	if err != nil {
		return err
	}
	defer closeStore()
	resultCache := catalogcache.New(store, cfg.Cache.TTL(), appLogger)

	// 5. Initialize Metrics
	var recorder metrics.Recorder = metrics.NopRecorder{}
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		prom := metrics.NewPrometheusRecorder(cfg.Metrics.Namespace)
		recorder = prom
		metricsHandler = prom.Handler()
	}

	// 6. Initialize Repositories
	attrRepo := attrRepoPkg.NewPGRepository(db)
	catRepo := catRepoPkg.NewPGRepository(db)

	// 7. Initialize UseCases
	attrUC := attrUCPkg.NewAttributeUseCase(attrRepo, catRepo, resultCache, appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, resultCache, appLogger)

	// 8. Initialize Handlers
	router := server.NewRouter(server.HTTPDeps{
		Attributes: attrH.NewHTTPHandler(attrUC, appLogger),
		Categories: catH.NewHTTPHandler(catUC, appLogger),
		Recorder:   recorder,
		Metrics:    metricsHandler,
		Ping:       db.PingContext,
		Logger:     appLogger,
	})
	grpcServer := server.NewGRPCServer(server.GRPCDeps{
		Attributes: attrH.NewGRPCHandler(attrUC, appLogger),
		Categories: catH.NewGRPCHandler(catUC, appLogger),
		Recorder:   recorder,
		Logger:     appLogger,
	})

	// 9. Start Servers
	httpLis, err := net.Listen("tcp", listenAddr(cfg.Server.HTTPPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	grpcLis, err := net.Listen("tcp", listenAddr(cfg.Server.GRPCPort))
	if err != nil {
		httpLis.Close()
		return fmt.Errorf("failed to listen: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, server.Servers{
		HTTP: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		HTTPListener:    httpLis,
		GRPC:            grpcServer,
		GRPCListener:    grpcLis,
		ShutdownTimeout: time.Duration(cfg.Server.ShutdownTimeout) * time.Second,
		Logger:          appLogger,
	})
}

func newCacheStore(cfg *config.Config, log logger.ZapLogger) (catalogcache.Store, func(), error) {
	switch cfg.Cache.Backend {
	case "redis":
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis: %w", err)
		}
		log.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		return catalogcache.NewRedisStore(redisClient.Client, "catalog:"), func() { _ = redisClient.Close() }, nil
	case "memory", "":
		store := catalogcache.NewMemoryStore(memoryCacheCapacity)
		log.Info("Using in-process cache", zap.Int("capacity", memoryCacheCapacity))
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

func listenAddr(port string) string {
	if !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

