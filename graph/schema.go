// Package graph maps the roster models onto the GraphQL schema in schema.graphql.
package graph

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var schemaSDL string

// SDL returns the schema document served by the API.
func SDL() string {
	return schemaSDL
}

// NewSchema parses the schema and binds it to resolver. Binding fails if a
// schema field has no matching resolver method.
func NewSchema(resolver *Resolver, log *slog.Logger, maxParallelism int) (*graphql.Schema, error) {
	schema, err := graphql.ParseSchema(schemaSDL, resolver,
		graphql.MaxParallelism(maxParallelism),
		graphql.Logger(newPanicLogger(log)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse graphql schema: %w", err)
	}
	return schema, nil
}
