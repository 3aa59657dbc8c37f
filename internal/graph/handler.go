package graph

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewHandler serves the schema over HTTP. The viewer travels in the request
// context, placed there by the auth middleware, so the handler itself needs no
// per-request wiring.
func NewHandler(schema *graphql.Schema) http.Handler {
	return handler.New(&handler.Config{
		Schema:   schema,
		Pretty:   true,
		GraphiQL: true,
	})
}
