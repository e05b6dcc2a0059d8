package usecase

import (
	"strings"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/ports"
)

// CatalogFilter narrows a listing. Empty fields are ignored.
type CatalogFilter struct {
	Tags []string
	Name string
}

type BrowseCatalog struct {
	catalog ports.CatalogLoader
}

func NewBrowseCatalog(cl ports.CatalogLoader) *BrowseCatalog {
	return &BrowseCatalog{catalog: cl}
}

// Execute applies the tag filter, then the name filter, and returns the
// remaining services sorted by name.
func (uc *BrowseCatalog) Execute(f CatalogFilter) ([]domain.Service, error) {
	c, err := uc.catalog.LoadCatalog()
	if err != nil {
		return nil, err
	}

	if tags := nonEmpty(f.Tags); len(tags) > 0 {
		if c, err = domain.FilterByTags(c, tags); err != nil {
			return nil, err
		}
	}
	if name := strings.TrimSpace(f.Name); name != "" {
		if c, err = domain.FilterByName(c, name); err != nil {
			return nil, err
		}
	}
	return c.Sorted(), nil
}

// Describe returns a single catalog entry.
func (uc *BrowseCatalog) Describe(name string) (domain.Service, error) {
	c, err := uc.catalog.LoadCatalog()
	if err != nil {
		return domain.Service{}, err
	}
	svc, ok := c[name]
	if !ok {
		return domain.Service{}, &domain.UnknownServiceError{Names: []string{name}}
	}
	return svc, nil
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
