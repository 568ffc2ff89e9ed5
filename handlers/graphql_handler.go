package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/graph-gophers/graphql-go"
)

var errQueryRequired = errors.New("query must not be empty")

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
	Extensions    map[string]interface{} `json:"extensions"`
}

type GraphQLHandler struct {
	schema *graphql.Schema
	log    *slog.Logger
}

func NewGraphQLHandler(schema *graphql.Schema, log *slog.Logger) *GraphQLHandler {
	return &GraphQLHandler{
		schema: schema,
		log:    log.With(slog.String("component", "handlers.graphql")),
	}
}

// ServeHTTP executes one GraphQL operation. Execution errors are reported
// inside the response body with status 200; only undecodable requests get a
// 4xx status.
func (h *GraphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, h.log, err)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		badRequestResponse(w, r, h.log, errQueryRequired)
		return
	}

	resp := h.schema.Exec(r.Context(), req.Query, req.OperationName, req.Variables)
	if len(resp.Errors) > 0 {
		h.log.DebugContext(r.Context(), "graphql operation returned errors",
			slog.String("operation", req.OperationName),
			slog.Int("errors", len(resp.Errors)),
		)
	}

	if err := writeJSON(w, http.StatusOK, resp, nil); err != nil {
		serverErrorResponse(w, r, h.log, err)
	}
}
