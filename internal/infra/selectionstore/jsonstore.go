package selectionstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/ports"
)

const selectionKey = "selected_services"

// JSONStore persists the selection under "selected_services" in a JSON
// document. Other top-level fields in the file are preserved on save.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

var _ ports.SelectionStore = (*JSONStore)(nil)

func (s *JSONStore) Path() string { return s.path }

// LoadSelection returns the stored names. A missing file or key is an empty selection.
func (s *JSONStore) LoadSelection() ([]string, error) {
	doc, err := s.readDoc()
	if err != nil {
		return nil, err
	}
	if _, ok := doc[selectionKey]; !ok {
		return []string{}, nil
	}

	v, err := jsonpath.Get("$."+selectionKey, doc)
	if err != nil {
		return nil, s.invalid(err)
	}
	if v == nil {
		return []string{}, nil
	}

	items, ok := v.([]any)
	if !ok {
		return nil, s.invalid(fmt.Errorf("%s must be an array, got %T", selectionKey, v))
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		name, ok := it.(string)
		if !ok {
			return nil, s.invalid(fmt.Errorf("%s[%d] must be a string, got %T", selectionKey, i, it))
		}
		out = append(out, name)
	}
	return out, nil
}

func (s *JSONStore) SaveSelection(names []string) error {
	doc, err := s.readDoc()
	if err != nil {
		return err
	}
	if names == nil {
		names = []string{}
	}
	doc[selectionKey] = names

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &domain.OpError{Op: "selectionstore.marshal", Kind: domain.KindIO, Path: s.path, Err: err}
	}
	b = append(b, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &domain.OpError{Op: "selectionstore.mkdir", Kind: domain.KindIO, Path: filepath.Dir(s.path), Err: err}
	}

	// Atomic-ish write: tmp then rename.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return &domain.OpError{Op: "selectionstore.write", Kind: domain.KindIO, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "selectionstore.rename", Kind: domain.KindIO, Path: s.path, Err: err}
	}
	return nil
}

func (s *JSONStore) readDoc() (map[string]any, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, &domain.OpError{Op: "selectionstore.read", Kind: domain.KindIO, Path: s.path, Err: err}
	}
	if len(b) == 0 {
		return map[string]any{}, nil
	}

	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, s.invalid(err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

func (s *JSONStore) invalid(err error) error {
	return &domain.OpError{
		Op:   "selectionstore.load",
		Kind: domain.KindInvalidConfig,
		Path: s.path,
		Err:  err,
	}
}
