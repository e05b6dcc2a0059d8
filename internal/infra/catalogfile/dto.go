package catalogfile

// fileService is the on-disk shape of a catalog entry. JSON and YAML catalogs
// share the same field names.
type fileService struct {
	Name           string            `json:"name" yaml:"name"`
	Description    string            `json:"description" yaml:"description"`
	CurrentVersion string            `json:"current_version" yaml:"current_version"`
	IsModified     bool              `json:"is_modified" yaml:"is_modified"`
	LastUpdate     string            `json:"last_update" yaml:"last_update"`
	Developers     string            `json:"developers" yaml:"developers"`
	Links          map[string]string `json:"links" yaml:"links"`
	Tags           []string          `json:"tags" yaml:"tags"`
	TemplatePath   string            `json:"template_path" yaml:"template_path"`
	Variables      []string          `json:"variables" yaml:"variables"`
	Questions      []fileQuestion    `json:"questions" yaml:"questions"`
}

type fileQuestion struct {
	Question string `json:"question" yaml:"question"`
	Variable string `json:"variable" yaml:"variable"`
}
