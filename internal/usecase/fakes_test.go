package usecase

import (
	"errors"
	"path/filepath"

	"github.com/aalvaropc/ryujin/internal/domain"
)

// --- fakes shared by the use case tests ---

type fakeCatalog struct {
	cat   domain.Catalog
	err   error
	loads int
}

func (f *fakeCatalog) LoadCatalog() (domain.Catalog, error) {
	f.loads++
	return f.cat, f.err
}

type fakeStore struct {
	names   []string
	loadErr error
	saveErr error
	saved   bool
}

func (s *fakeStore) LoadSelection() ([]string, error) {
	return append([]string(nil), s.names...), s.loadErr
}

func (s *fakeStore) SaveSelection(names []string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = true
	s.names = append([]string(nil), names...)
	return nil
}

type scriptedAnswers struct {
	lines  []string
	failAt int // 1-based call number that fails; 0 never fails
	asked  []string
}

func (a *scriptedAnswers) ReadAnswer(q domain.Question) (string, error) {
	a.asked = append(a.asked, q.Variable)
	if a.failAt > 0 && len(a.asked) == a.failAt {
		return "", errors.New("read failed")
	}
	if len(a.lines) == 0 {
		return "", errors.New("no more input")
	}
	line := a.lines[0]
	a.lines = a.lines[1:]
	return line, nil
}

type memWriter struct {
	files map[string][]byte
}

func (w *memWriter) WriteFile(dir, name string, content []byte) (string, error) {
	if w.files == nil {
		w.files = map[string][]byte{}
	}
	p := filepath.Join(dir, name)
	w.files[p] = content
	return p, nil
}

func q(variable string) domain.Question {
	return domain.Question{Prompt: "Value for " + variable + "?", Variable: variable}
}

func sampleCatalog() domain.Catalog {
	return domain.Catalog{
		"a":     {Name: "a", Tags: []string{"web"}, Questions: []domain.Question{q("X")}},
		"b":     {Name: "b", Tags: []string{"db"}, Questions: []domain.Question{q("Y")}},
		"c":     {Name: "c", Tags: []string{"web", "db"}},
		"redis": {Name: "redis", Tags: []string{"cache"}},
	}
}
