package server

import (
	"log/slog"
	"net/http"

	"github.com/scriptor-ai/scriptor/config"
	"github.com/scriptor-ai/scriptor/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config

	handler http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	h, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	h.Attach(r)

	var handler http.Handler = r
	handler = otelhttp.NewHandler(handler, "server")

	return &Server{
		Config: cfg,

		handler: handler,
	}, nil
}

func (s *Server) ListenAndServe() error {
	slog.Info("starting server", "address", s.Address)

	return http.ListenAndServe(s.Address, s.handler)
}
