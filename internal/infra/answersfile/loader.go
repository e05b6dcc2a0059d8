package answersfile

import (
	"fmt"
	"os"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/ports"
	"gopkg.in/yaml.v3"
)

// Source answers questions from the "vars" map of a YAML file, keyed by the
// question variable.
type Source struct {
	path string
	vars map[string]string
}

// Load reads the answers file once. The returned Source never touches disk again.
func Load(path string) (*Source, error) {
	vars, err := readVars(path)
	if err != nil {
		return nil, err
	}
	return &Source{path: path, vars: vars}, nil
}

var _ ports.AnswerSource = (*Source)(nil)

func (s *Source) ReadAnswer(q domain.Question) (string, error) {
	v, ok := s.vars[q.Variable]
	if !ok {
		return "", fmt.Errorf("no answer for %s in %s", q.Variable, s.path)
	}
	return v, nil
}

type yamlAnswers struct {
	Vars map[string]string `yaml:"vars"`
}

func readVars(path string) (map[string]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindIO
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "answersfile.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var y yamlAnswers
	if err := yaml.Unmarshal(b, &y); err != nil {
		return nil, &domain.OpError{
			Op:   "answersfile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if y.Vars == nil {
		y.Vars = map[string]string{}
	}
	return y.Vars, nil
}
