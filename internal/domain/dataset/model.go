package dataset

import "context"

// Sheet es una tabla cruda: encabezados en orden y filas como encabezado -> texto de celda.
// Se trata como valor inmutable durante un ciclo de render.
type Sheet struct {
	Ref     string
	Headers []string
	Rows    []Row
}

// Row mapea nombre de columna a valor de celda (ya como texto).
// Una celda ausente se lee como "".
type Row map[string]string

// Get devuelve la celda o "" si la columna no existe en la fila.
func (r Row) Get(column string) string {
	if r == nil {
		return ""
	}
	return r[column]
}

// Loader resuelve una referencia (path local, URL o DSN) a un Sheet.
// Errores esperados: *NotFoundError o *SchemaError.
type Loader interface {
	Load(ctx context.Context, ref string) (Sheet, error)
}

// HasColumn indica si el encabezado existe (match exacto, case-sensitive).
func (s Sheet) HasColumn(name string) bool {
	for _, h := range s.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// RequireColumns valida presencia de columnas. Devuelve *SchemaError con todas las faltantes.
func (s Sheet) RequireColumns(columns ...string) error {
	var missing []string
	for _, c := range columns {
		if !s.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Ref: s.Ref, Missing: missing}
	}
	return nil
}
