package ports

import "github.com/aalvaropc/ryujin/internal/domain"

// CatalogLoader loads the service catalog from a source (e.g., filesystem).
type CatalogLoader interface {
	LoadCatalog() (domain.Catalog, error)
}
