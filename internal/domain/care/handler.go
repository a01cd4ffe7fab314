package care

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
	r.Route("/api/care", func(cr chi.Router) {
		cr.Get("/", listSpeciesHandler(svc))
		cr.Get("/{species}", getRecordHandler(svc))
		cr.Get("/{species}/image", getImageHandler(svc, resolver))
	})
}

// speciesResponse lista las especies seleccionables del dataset.
type speciesResponse struct {
	Species []string `json:"species"`
}

// recordResponse es una fila del dataset de cuidados.
type recordResponse struct {
	Species         string `json:"species"`
	FoodName        string `json:"food_name"`
	Quantity        string `json:"quantity"`
	FeedingTime     string `json:"feeding_time"`
	TimesPerDay     int    `json:"times_per_day"`
	TimesPerDayText string `json:"times_per_day_text"`
	FoodTypes       string `json:"food_types"`
	ImageRef        string `json:"image_ref"`
}

// listSpeciesHandler godoc
// @Summary Listar especies del dataset de cuidados
// @Description Devuelve las especies en orden de aparición, sin vacías ni duplicadas.
// @Tags care
// @Produce json
// @Success 200 {object} speciesResponse
// @Failure 500 {string} string "dataset schema invalid"
// @Failure 503 {string} string "dataset not found"
// @Router /api/care [get]
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
// @Summary Rutina de cuidado de una especie
// @Description Devuelve la primera fila cuyo "Pet Type" coincide exactamente (case-sensitive) con species.
// @Tags care
// @Produce json
// @Param species path string true "Especie, tal cual aparece en el dataset"
// @Success 200 {object} recordResponse
// @Failure 404 {string} string "species not found"
// @Failure 500 {string} string "dataset schema invalid"
// @Failure 503 {string} string "dataset not found"
// @Router /api/care/{species} [get]
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

		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// getImageHandler godoc
// @Summary Imagen de una especie
// @Description Abre (path local) o descarga (URL) la imagen de la fila y la devuelve si se pudo decodificar.
// @Tags care
// @Produce image/png,image/jpeg,image/gif
// @Param species path string true "Especie"
// @Success 200 {file} binary
// @Failure 404 {string} string "species not found"
// @Failure 502 {string} string "image unavailable"
// @Failure 503 {string} string "dataset not found"
// @Router /api/care/{species}/image [get]
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

func toRecordResponse(r Record) recordResponse {
	return recordResponse{
		Species:         r.Species,
		FoodName:        r.FoodName,
		Quantity:        r.Quantity,
		FeedingTime:     r.FeedingTime,
		TimesPerDay:     r.TimesPerDay,
		TimesPerDayText: r.TimesPerDayText,
		FoodTypes:       r.FoodTypes,
		ImageRef:        r.ImageRef,
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

// writeJSON responde v como JSON con el status dado.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
