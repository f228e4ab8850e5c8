package api

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/aoc2022/internal/api/middleware"
	"github.com/rs/cors"
)

// NewServer assembles the container with filters, routes, the OpenAPI
// document and CORS.
func NewServer(handler *Handler) http.Handler {
	container := restful.NewContainer()
	container.Filter(middleware.NewLogger(handler.logger))
	container.Filter(middleware.NewRecoverPanic(handler.logger))

	ws := RegisterRoutes(container, handler)
	RegisterOpenAPI(container, ws)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	return corsHandler.Handler(container)
}
