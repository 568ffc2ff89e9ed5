package routes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"

	"github.com/Dosada05/roster-graphql/handlers"
	"github.com/Dosada05/roster-graphql/middleware"
)

const (
	GraphQLPath  = "/graphql"
	GraphiQLPath = "/graphiql"
	HealthPath   = "/healthz"
)

// SetupRoutes mounts the API on router.
func SetupRoutes(
	router chi.Router,
	log *slog.Logger,
	allowedOrigins []string,
	graphqlHandler *handlers.GraphQLHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(log))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Post(GraphQLPath, graphqlHandler.ServeHTTP)
	router.Get(GraphiQLPath, handlers.NewGraphiQLHandler(GraphQLPath).ServeHTTP)
	router.Get(HealthPath, healthHandler.Health)
}
