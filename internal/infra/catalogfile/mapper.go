package catalogfile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aalvaropc/ryujin/internal/domain"
)

func mapCatalog(path string, in map[string]fileService) (domain.Catalog, error) {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys) // first error is stable

	out := make(domain.Catalog, len(in))
	for _, key := range keys {
		svc, err := mapService(path, key, in[key])
		if err != nil {
			return nil, err
		}
		out[key] = svc
	}
	return out, nil
}

func mapService(path, key string, fs fileService) (domain.Service, error) {
	if strings.TrimSpace(key) == "" {
		return domain.Service{}, invalidField(path, "<key>", "service key is empty")
	}

	name := fs.Name
	if strings.TrimSpace(name) == "" {
		return domain.Service{}, invalidField(path, key+".name", "name is required")
	}
	if name != key {
		return domain.Service{}, invalidField(path, key+".name",
			fmt.Sprintf("name %q does not match catalog key", fs.Name))
	}

	svc := domain.Service{
		Name:           name,
		Description:    fs.Description,
		CurrentVersion: fs.CurrentVersion,
		IsModified:     fs.IsModified,
		LastUpdate:     fs.LastUpdate,
		Developers:     fs.Developers,
		Links:          fs.Links,
		Tags:           fs.Tags,
		TemplatePath:   fs.TemplatePath,
		Variables:      fs.Variables,
		Questions:      make([]domain.Question, 0, len(fs.Questions)),
	}
	if svc.Links == nil {
		svc.Links = map[string]string{}
	}
	if svc.Tags == nil {
		svc.Tags = []string{}
	}

	for i, q := range fs.Questions {
		if strings.TrimSpace(q.Variable) == "" {
			return domain.Service{}, invalidField(path, fmt.Sprintf("%s.questions[%d].variable", key, i), "variable is required")
		}
		svc.Questions = append(svc.Questions, domain.Question{
			Prompt:   q.Question,
			Variable: q.Variable,
		})
	}
	return svc, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "catalogfile.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
