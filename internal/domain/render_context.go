package domain

import "slices"

// RenderContext is the flat variable namespace fed to the templates plus the
// ordered list of selected service names. It is rebuilt on every compose run.
type RenderContext struct {
	Services []string
	Vars     map[string]string
}

// BuildRenderContext flattens answered questions of the given services, in the
// order given (selection order). When two services declare the same variable
// the later service wins; this is intended behavior.
func BuildRenderContext(selected []Service) RenderContext {
	rc := RenderContext{
		Services: make([]string, 0, len(selected)),
		Vars:     map[string]string{},
	}
	for _, svc := range selected {
		rc.Services = append(rc.Services, svc.Name)
		for _, q := range svc.Questions {
			if q.Answer == nil {
				continue
			}
			rc.Vars[q.Variable] = *q.Answer
		}
	}
	return rc
}

// HasService reports whether name is part of the render.
func (rc RenderContext) HasService(name string) bool {
	return slices.Contains(rc.Services, name)
}
