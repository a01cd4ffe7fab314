package facts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pet-care-info/internal/domain/dataset"
	"pet-care-info/internal/ports/images"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, resolver images.Resolver) {
	r.Route("/api/facts", func(fr chi.Router) {
		fr.Get("/", listSpeciesHandler(svc))
		fr.Get("/{species}", getRecordHandler(svc))
		fr.Get("/{species}/image", getImageHandler(svc, resolver))
	})
}

type speciesResponse struct {
	Species []string `json:"species"`
}

// factsResponse: facts va siempre como array (vacío si la celda estaba vacía).
type factsResponse struct {
	Species  string   `json:"species"`
	ImageRef string   `json:"image_ref"`
	Facts    []string `json:"facts"`
}

// listSpeciesHandler godoc
// @Summary Listar especies del dataset de curiosidades
// @Tags facts
// @Produce json
// @Success 200 {object} speciesResponse
// @Failure 500 {string} string "dataset schema invalid"
// @Failure 503 {string} string "dataset not found"
// @Router /api/facts [get]
func listSpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.Load(r.Context())
		if err != nil {
			writeDatasetError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, speciesResponse{Species: t.Species()})
	}
}

// getRecordHandler godoc
// @Summary Curiosidades de una especie
// @Description La celda "Facts" se separa por "|" al cargar; el orden se conserva.
// @Tags facts
// @Produce json
// @Param species path string true "Especie"
// @Success 200 {object} factsResponse
// @Failure 404 {string} string "species not found"
// @Failure 500 {string} string "dataset schema invalid"
// @Failure 503 {string} string "dataset not found"
// @Router /api/facts/{species} [get]
func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.Load(r.Context())
		if err != nil {
			writeDatasetError(w, err)
			return
		}

		rec, ok := t.Lookup(dataset.Select(chi.URLParam(r, "species")))
		if !ok {
			http.Error(w, "species not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, factsResponse{
			Species:  rec.Species,
			ImageRef: rec.ImageRef,
			Facts:    rec.Facts,
		})
	}
}

// getImageHandler godoc
// @Summary Imagen de curiosidades de una especie
// @Tags facts
// @Produce image/png,image/jpeg,image/gif
// @Param species path string true "Especie"
// @Success 200 {file} binary
// @Failure 404 {string} string "species not found"
// @Failure 502 {string} string "image unavailable"
// @Failure 503 {string} string "dataset not found"
// @Router /api/facts/{species}/image [get]
func getImageHandler(svc *Service, resolver images.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.Load(r.Context())
		if err != nil {
			writeDatasetError(w, err)
			return
		}

		rec, ok := t.Lookup(dataset.Select(chi.URLParam(r, "species")))
		if !ok {
			http.Error(w, "species not found", http.StatusNotFound)
			return
		}

		img, err := resolver.Resolve(r.Context(), rec.ImageRef)
		if err != nil {
			http.Error(w, "image unavailable: "+string(images.CauseOf(err)), http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", img.ContentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(img.Data)
	}
}

func writeDatasetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dataset.ErrNotFound):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	case errors.Is(err, dataset.ErrSchemaInvalid):
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
