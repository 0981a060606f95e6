package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pushstack/template-service-mock/internal/config"
	"github.com/pushstack/template-service-mock/internal/domains/templates"
	"github.com/pushstack/template-service-mock/internal/health"
	"github.com/pushstack/template-service-mock/internal/metrics"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	records := templates.Seed()
	if cfg.TemplatesFile != "" {
		extra, err := templates.LoadFile(cfg.TemplatesFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load templates file")
		}
		records = templates.Merge(records, extra)
		log.Info().Str("file", cfg.TemplatesFile).Int("records", len(extra)).Msg("loaded extra templates")
	}

	store, err := templates.NewStore(records)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build template store")
	}

	m := metrics.New()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	// The mock is called from browsers and test harnesses alike; allow any origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(metrics.Middleware(m))

	templateHandler := templates.NewHandler(store, m)
	r.Route("/api/v1/templates", func(r chi.Router) {
		templateHandler.RegisterTemplateRoutes(r)
	})

	healthHandler := health.NewHandler(store)
	r.Get("/health", healthHandler.Health)

	r.Handle("/metrics", m.Handler())

	log.Info().Strs("codes", store.Codes()).Msg("template store ready")
	log.Info().Msg("server starting on :" + cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
