package domain

import "strings"

// FilterByTags keeps services carrying at least one of tags.
func FilterByTags(c Catalog, tags []string) (Catalog, error) {
	out := Catalog{}
	for name, svc := range c {
		if svc.HasAnyTag(tags) {
			out[name] = svc
		}
	}
	if len(out) == 0 {
		return nil, &NoMatchError{Filter: "tags", Values: append([]string(nil), tags...)}
	}
	return out, nil
}

// FilterByName keeps services whose name contains text.
func FilterByName(c Catalog, text string) (Catalog, error) {
	out := Catalog{}
	for name, svc := range c {
		if strings.Contains(svc.Name, text) {
			out[name] = svc
		}
	}
	if len(out) == 0 {
		return nil, &NoMatchError{Filter: "name", Values: []string{text}}
	}
	return out, nil
}
