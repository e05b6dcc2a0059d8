package template

import (
	"slices"
	"strconv"
	"strings"
	"text/template"
)

func baseFuncs() template.FuncMap {
	return template.FuncMap{
		"indent":  indent,
		"nindent": func(n int, s string) string { return "\n" + indent(n, s) },
		"default": defaultValue,
		"has":     func(list []string, s string) bool { return slices.Contains(list, s) },
		"join":    func(sep string, list []string) string { return strings.Join(list, sep) },
		"quote":   strconv.Quote,
		"lower":   strings.ToLower,
		"upper":   strings.ToUpper,
		"trim":    strings.TrimSpace,
	}
}

// indent prefixes every non-empty line of s with n spaces.
func indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}

func defaultValue(def, v string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
