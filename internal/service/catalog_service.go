package service

import (
	"github.com/pfdlens/pfdlens/internal/config"
	appErr "github.com/pfdlens/pfdlens/internal/pkg/errors"
	"github.com/pfdlens/pfdlens/internal/pkg/imageenc"
)

// CatalogService exposes the fixed set of bundled sample diagrams. There is no
// upload path; every analyzable image comes from this list.
type CatalogService struct {
	samples []config.SampleConfig
}

func NewCatalogService(samples []config.SampleConfig) *CatalogService {
	return &CatalogService{samples: samples}
}

func (s *CatalogService) List() []string {
	names := make([]string, 0, len(s.samples))
	for _, sample := range s.samples {
		names = append(names, sample.Name)
	}
	return names
}

func (s *CatalogService) Resolve(name string) (string, error) {
	for _, sample := range s.samples {
		if sample.Name == name {
			return sample.Path, nil
		}
	}
	return "", appErr.ErrNotFound
}

func (s *CatalogService) ReadImage(name string) ([]byte, string, error) {
	path, err := s.Resolve(name)
	if err != nil {
		return nil, "", err
	}
	return imageenc.Load(path)
}
