package handlers

import (
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
)

const graphiqlTitle = "Roster GraphiQL"

// NewGraphiQLHandler serves the interactive IDE pointed at endpoint.
func NewGraphiQLHandler(endpoint string) http.Handler {
	return playground.Handler(graphiqlTitle, endpoint)
}
