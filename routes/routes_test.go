package routes

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/roster-graphql/handlers"
)

type pingResolver struct{}

func (pingResolver) Ping() string { return "pong" }

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func newTestRouter(t *testing.T, pingErr error) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	schema := graphql.MustParseSchema(`type Query { ping: String! }`, &pingResolver{})

	router := chi.NewRouter()
	SetupRoutes(router, log, []string{"https://app.example.com"},
		handlers.NewGraphQLHandler(schema, log),
		handlers.NewHealthHandler(pingerFunc(func(context.Context) error { return pingErr }), log),
	)
	return router
}

func TestSetupRoutes(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "graphql post", method: http.MethodPost, path: GraphQLPath, body: `{"query":"{ ping }"}`, wantStatus: http.StatusOK},
		{name: "graphql get", method: http.MethodGet, path: GraphQLPath, wantStatus: http.StatusMethodNotAllowed},
		{name: "graphiql", method: http.MethodGet, path: GraphiQLPath, wantStatus: http.StatusOK},
		{name: "graphiql post", method: http.MethodPost, path: GraphiQLPath, wantStatus: http.StatusMethodNotAllowed},
		{name: "health", method: http.MethodGet, path: HealthPath, wantStatus: http.StatusOK},
		{name: "unknown", method: http.MethodGet, path: "/members", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSetupRoutes_HealthUnavailable(t *testing.T) {
	router := newTestRouter(t, errors.New("connection refused"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, HealthPath, nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSetupRoutes_CORS(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodOptions, GraphQLPath, nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Less(t, rec.Code, 300)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, GraphQLPath, nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRoutes_RecoversFromPanics(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := chi.NewRouter()
	SetupRoutes(router, log, []string{"*"},
		handlers.NewGraphQLHandler(graphql.MustParseSchema(`type Query { ping: String! }`, &pingResolver{}), log),
		handlers.NewHealthHandler(pingerFunc(func(context.Context) error { panic("ping exploded") }), log),
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, HealthPath, nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, GraphQLPath, strings.NewReader(`{"query":"{ ping }"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
