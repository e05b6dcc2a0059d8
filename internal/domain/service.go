package domain

import (
	"maps"
	"slices"
	"sort"
)

// Question is a per-service configuration prompt. Answer stays nil until the
// answer collector runs and is never persisted.
type Question struct {
	Prompt   string
	Variable string
	Answer   *string
}

// Answered reports whether the question carries an answer.
func (q Question) Answered() bool { return q.Answer != nil }

// Service is one catalog entry.
type Service struct {
	Name           string
	Description    string
	CurrentVersion string
	IsModified     bool
	LastUpdate     string
	Developers     string
	Links          map[string]string
	Tags           []string
	TemplatePath   string
	Variables      []string
	Questions      []Question
}

// Clone returns a deep copy. Answers recorded on the copy never reach the catalog.
func (s Service) Clone() Service {
	out := s
	out.Links = maps.Clone(s.Links)
	out.Tags = slices.Clone(s.Tags)
	out.Variables = slices.Clone(s.Variables)
	if s.Questions != nil {
		out.Questions = make([]Question, len(s.Questions))
		for i, q := range s.Questions {
			if q.Answer != nil {
				a := *q.Answer
				q.Answer = &a
			}
			out.Questions[i] = q
		}
	}
	return out
}

// HasAnyTag reports whether the service carries at least one of tags.
func (s Service) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if slices.Contains(s.Tags, t) {
			return true
		}
	}
	return false
}

// LinkLabels returns link labels sorted for display.
func (s Service) LinkLabels() []string {
	labels := make([]string, 0, len(s.Links))
	for k := range s.Links {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return labels
}

// Catalog maps service name to its record. It is loaded once and treated as
// read-only for the rest of the run.
type Catalog map[string]Service

// Names returns the catalog keys in lexical order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for k := range c {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Sorted returns the services ordered by name.
func (c Catalog) Sorted() []Service {
	out := make([]Service, 0, len(c))
	for _, n := range c.Names() {
		out = append(out, c[n])
	}
	return out
}

// Has reports catalog membership.
func (c Catalog) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// Unknown returns every name absent from the catalog, in request order.
func (c Catalog) Unknown(names []string) []string {
	var missing []string
	for _, n := range names {
		if !c.Has(n) && !slices.Contains(missing, n) {
			missing = append(missing, n)
		}
	}
	return missing
}

// Validate fails with UnknownServiceError listing all unknown names at once.
func (c Catalog) Validate(names []string) error {
	if missing := c.Unknown(names); len(missing) > 0 {
		return &UnknownServiceError{Names: missing}
	}
	return nil
}

// Pick validates names and returns independent clones in request order.
// Duplicate names are kept once.
func (c Catalog) Pick(names []string) ([]Service, error) {
	if err := c.Validate(names); err != nil {
		return nil, err
	}
	out := make([]Service, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, c[n].Clone())
	}
	return out, nil
}

// ReadmePartial holds the README fragments of one selected service.
type ReadmePartial struct {
	Service       string
	Information   string
	Configuration string
}
