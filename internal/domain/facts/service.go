package facts

import (
	"context"
	"strings"

	"pet-care-info/internal/domain/dataset"
)

type Service struct {
	loader dataset.Loader
	ref    string
}

func NewService(loader dataset.Loader, ref string) *Service {
	return &Service{loader: loader, ref: strings.TrimSpace(ref)}
}

// Ref: FACTS_DATA.
func (s *Service) Ref() string { return s.ref }

func (s *Service) Load(ctx context.Context) (Table, error) {
	return s.LoadFrom(ctx, s.ref)
}

// LoadFrom no cachea: cada ciclo de render vuelve a leer la fuente.
func (s *Service) LoadFrom(ctx context.Context, ref string) (Table, error) {
	sheet, err := s.loader.Load(ctx, ref)
	if err != nil {
		return Table{}, err
	}
	return FromSheet(sheet)
}
