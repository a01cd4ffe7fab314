package main

import (
	"errors"
	"net/http"
	"os"
	"time"

	"pet-care-info/internal/adapters/datasource"
	"pet-care-info/internal/platform/config"
	"pet-care-info/internal/platform/logger"
	"pet-care-info/internal/router"
)

// @title Pet Care Information API
// @version 1.0
// @description Consulta de rutinas de cuidado y curiosidades por especie.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("config error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(cfg.Log)

	r := router.NewRouter(router.Options{Config: cfg, Logger: log})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		// una página puede cargar dos datasets y dos imágenes
		WriteTimeout: 2*cfg.DatasetTimeout + 2*cfg.ImageTimeout + 5*time.Second,
	}

	log.Info("starting server", map[string]any{
		"addr":       cfg.Addr,
		"care_data":  datasource.Redact(cfg.CareData),
		"facts_data": datasource.Redact(cfg.FactsData),
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
