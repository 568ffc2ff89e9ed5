package main

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

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/roster-graphql/config"
	"github.com/Dosada05/roster-graphql/db"
	"github.com/Dosada05/roster-graphql/graph"
	"github.com/Dosada05/roster-graphql/handlers"
	"github.com/Dosada05/roster-graphql/lib/logger/sl"
	"github.com/Dosada05/roster-graphql/repositories"
	api "github.com/Dosada05/roster-graphql/routes"
	"github.com/Dosada05/roster-graphql/services"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// bootstrap logger until LOG_LEVEL is known
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", sl.Err(err))
		return err
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		logger.Error("invalid log level", sl.Err(err))
		return err
	}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("db_conn_mode", cfg.DB.ConnMode),
	)

	provider, err := db.NewProvider(cfg.DatabaseURL, db.Options{
		Mode:           cfg.DB.ConnMode,
		ConnectTimeout: cfg.DB.ConnectTimeout,
		Pool: db.PoolOptions{
			MaxOpenConns:    cfg.DB.MaxOpenConns,
			MaxIdleConns:    cfg.DB.MaxIdleConns,
			ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to connect to database", sl.Err(err))
		return err
	}
	defer func() {
		if err := provider.Close(); err != nil {
			logger.Error("failed to close database connection", sl.Err(err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database provider ready")

	memberRepo := repositories.NewPostgresMemberRepository(provider)
	teamRepo := repositories.NewPostgresTeamRepository(provider)

	memberService := services.NewMemberService(logger, memberRepo)
	teamService := services.NewTeamService(teamRepo)

	schema, err := graph.NewSchema(graph.NewResolver(logger, memberService, teamService), logger, cfg.GraphQL.MaxParallelism)
	if err != nil {
		logger.Error("failed to build graphql schema", sl.Err(err))
		return err
	}

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		logger,
		cfg.HTTP.AllowedOrigins,
		handlers.NewGraphQLHandler(schema, logger),
		handlers.NewHealthHandler(provider, logger),
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server",
			slog.String("address", server.Addr),
			slog.String("graphql", api.GraphQLPath),
			slog.String("graphiql", api.GraphiQLPath),
		)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", cfg.Shutdown))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", sl.Err(closeErr))
			}
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server shutdown complete")
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", sl.Err(err))
		return err
	}

	logger.Info("application exited")
	return nil
}
