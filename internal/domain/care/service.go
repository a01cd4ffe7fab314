package care

import (
	"context"
	"strings"

	"pet-care-info/internal/domain/dataset"
)

type Service struct {
	loader dataset.Loader
	ref    string
}

// NewService recibe el loader y la referencia por defecto del dataset (config CARE_DATA).
func NewService(loader dataset.Loader, ref string) *Service {
	return &Service{
		loader: loader,
		ref:    strings.TrimSpace(ref),
	}
}

// Ref es la referencia configurada.
func (s *Service) Ref() string { return s.ref }

// Load carga la tabla desde la referencia configurada.
func (s *Service) Load(ctx context.Context) (Table, error) {
	return s.LoadFrom(ctx, s.ref)
}

// LoadFrom carga la tabla desde ref (path ingresado por el operador, por ejemplo).
// Errores: dataset.ErrNotFound o dataset.ErrSchemaInvalid (vía errors.Is).
func (s *Service) LoadFrom(ctx context.Context, ref string) (Table, error) {
	sheet, err := s.loader.Load(ctx, ref)
	if err != nil {
		return Table{}, err
	}
	return FromSheet(sheet)
}
