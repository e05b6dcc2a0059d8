package catalogfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/ports"
	"gopkg.in/yaml.v3"
)

// Loader reads the service catalog from a JSON or YAML file, chosen by extension.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

var _ ports.CatalogLoader = (*Loader)(nil)

func (l *Loader) Path() string { return l.path }

func (l *Loader) LoadCatalog() (domain.Catalog, error) {
	b, err := os.ReadFile(l.path)
	if err != nil {
		kind := domain.KindIO
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "catalogfile.load",
			Kind: kind,
			Path: l.path,
			Err:  err,
		}
	}

	var raw map[string]fileService
	if isYAML(l.path) {
		err = yaml.Unmarshal(b, &raw)
	} else {
		err = json.Unmarshal(b, &raw)
	}
	if err != nil {
		return nil, &domain.OpError{
			Op:   "catalogfile.load",
			Kind: domain.KindInvalidConfig,
			Path: l.path,
			Err:  err,
		}
	}

	return mapCatalog(l.path, raw)
}

func isYAML(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".yaml" || ext == ".yml"
}
