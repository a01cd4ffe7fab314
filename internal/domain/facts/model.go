package facts

import (
	"strings"

	"pet-care-info/internal/domain/dataset"
)

const (
	ColPetType  = "Pet Type"
	ColImageURL = "Image URL"
	ColFacts    = "Facts"

	// Separator entre facts dentro de la celda.
	Separator = "|"
)

var RequiredColumns = []string{ColPetType, ColImageURL, ColFacts}

// Record es una fila del dataset de curiosidades.
type Record struct {
	Species  string
	ImageRef string
	Facts    []string // ya separados, en el orden de la celda
}

type Table struct {
	Ref     string
	Records []Record
}

// SplitFacts separa text por "|". Texto vacío devuelve una lista vacía.
// No se recorta ni se deduplica: "A||B" da tres elementos.
func SplitFacts(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(text, Separator)
}

// FromSheet valida columnas y separa los facts de cada fila al cargar.
func FromSheet(s dataset.Sheet) (Table, error) {
	if err := s.RequireColumns(RequiredColumns...); err != nil {
		return Table{}, err
	}

	out := make([]Record, 0, len(s.Rows))
	for _, row := range s.Rows {
		out = append(out, Record{
			Species:  row.Get(ColPetType),
			ImageRef: row.Get(ColImageURL),
			Facts:    SplitFacts(row.Get(ColFacts)),
		})
	}
	return Table{Ref: s.Ref, Records: out}, nil
}

// Lookup: primera fila con especie == clave seleccionada.
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
