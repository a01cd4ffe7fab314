package care

import (
	"math"
	"strconv"
	"strings"

	"pet-care-info/internal/domain/dataset"
)

// Columnas requeridas del dataset de cuidados (match exacto).
const (
	ColPetType     = "Pet Type"
	ColFoodName    = "Food Name"
	ColQuantity    = "Quantity"
	ColFeedingTime = "Feeding Time"
	ColTimesPerDay = "Times Per Day"
	ColFoodTypes   = "Types of Food"
	ColImagePath   = "Image Path"
)

// RequiredColumns en el orden en que se reportan.
var RequiredColumns = []string{
	ColPetType,
	ColFoodName,
	ColQuantity,
	ColFeedingTime,
	ColTimesPerDay,
	ColFoodTypes,
	ColImagePath,
}

// Record es una fila del dataset de cuidados.
type Record struct {
	Species         string
	FoodName        string
	Quantity        string
	FeedingTime     string
	TimesPerDay     int    // 0 si la celda no es numérica
	TimesPerDayText string // celda tal cual, es lo que se muestra
	FoodTypes       string
	ImageRef        string // path local o URL
}

// Table es el dataset cargado. Inmutable durante un ciclo de render.
type Table struct {
	Ref     string
	Records []Record
}

// FromSheet valida columnas y convierte filas en Records.
// Solo se valida presencia de columnas; los valores se toman tal cual.
func FromSheet(s dataset.Sheet) (Table, error) {
	if err := s.RequireColumns(RequiredColumns...); err != nil {
		return Table{}, err
	}

	out := make([]Record, 0, len(s.Rows))
	for _, row := range s.Rows {
		out = append(out, Record{
			Species:         row.Get(ColPetType),
			FoodName:        row.Get(ColFoodName),
			Quantity:        row.Get(ColQuantity),
			FeedingTime:     row.Get(ColFeedingTime),
			TimesPerDay:     parseCount(row.Get(ColTimesPerDay)),
			TimesPerDayText: row.Get(ColTimesPerDay),
			FoodTypes:       row.Get(ColFoodTypes),
			ImageRef:        row.Get(ColImagePath),
		})
	}
	return Table{Ref: s.Ref, Records: out}, nil
}

// Lookup devuelve la primera fila cuya especie coincide exactamente con la selección.
// Con NoSelection, o sin coincidencias, devuelve false.
func (t Table) Lookup(sel dataset.Selection) (Record, bool) {
	key, ok := sel.Key()
	if !ok {
		return Record{}, false
	}
	for _, r := range t.Records {
		if r.Species == key {
			return r, true
		}
	}
	return Record{}, false
}

// Species lista las claves para el selector, en orden de aparición.
// Se omiten vacías y duplicadas (un duplicado siempre resuelve a la primera fila).
func (t Table) Species() []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(t.Records))
	for _, r := range t.Records {
		if strings.TrimSpace(r.Species) == "" {
			continue
		}
		if _, ok := seen[r.Species]; ok {
			continue
		}
		seen[r.Species] = struct{}{}
		out = append(out, r.Species)
	}
	return out
}

// parseCount acepta "2" o "2.0" (excel a veces formatea enteros como float).
// Un valor no numérico queda en 0; TimesPerDayText conserva el original.
func parseCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}
