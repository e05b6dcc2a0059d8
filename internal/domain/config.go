package domain

import "path/filepath"

// Config locates the catalog, templates and persisted selection of a ryujin
// home. Relative paths are resolved against Root.
type Config struct {
	Root    string
	Paths   PathsConfig
	Output  OutputConfig
	Answers AnswersConfig
}

type PathsConfig struct {
	Catalog   string
	Templates string
	Selection string
}

type OutputConfig struct {
	ComposeFile string
	ReadmeFile  string
}

type AnswersConfig struct {
	MaxLength int
}

// DefaultConfig provides sane defaults if ryujin.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			Catalog:   filepath.Join("services", "services.json"),
			Templates: filepath.Join("services", "templates"),
			Selection: filepath.Join("conf", "conf.json"),
		},
		Output: OutputConfig{
			ComposeFile: "docker-compose.yml",
			ReadmeFile:  "readme-compose.md",
		},
		Answers: AnswersConfig{MaxLength: DefaultAnswerMaxLength},
	}
}

// Resolve joins p with Root unless p is already absolute.
func (c Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

func (c Config) CatalogPath() string   { return c.Resolve(c.Paths.Catalog) }
func (c Config) TemplatesPath() string { return c.Resolve(c.Paths.Templates) }
func (c Config) SelectionPath() string { return c.Resolve(c.Paths.Selection) }

// WorkspaceSpec describes a ryujin home to scaffold.
type WorkspaceSpec struct {
	Root string
}
