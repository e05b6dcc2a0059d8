package workspacefinder

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/aalvaropc/ryujin/internal/domain"
)

// ConfigFileName marks a ryujin home.
const ConfigFileName = "ryujin.yaml"

// EnvPrefix scopes environment overrides, e.g. RYUJIN_PATHS_CATALOG.
const EnvPrefix = "RYUJIN"

// LoadConfig reads ryujin.yaml from root on top of defaults. The file is
// optional; RYUJIN_* environment variables override both.
func LoadConfig(root string) (domain.Config, error) {
	def := domain.DefaultConfig()
	path := filepath.Join(root, ConfigFileName)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("paths.catalog", def.Paths.Catalog)
	v.SetDefault("paths.templates", def.Paths.Templates)
	v.SetDefault("paths.selection", def.Paths.Selection)
	v.SetDefault("output.compose_file", def.Output.ComposeFile)
	v.SetDefault("output.readme_file", def.Output.ReadmeFile)
	v.SetDefault("answers.max_length", def.Answers.MaxLength)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return def, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	cfg := domain.Config{
		Root: root,
		Paths: domain.PathsConfig{
			Catalog:   v.GetString("paths.catalog"),
			Templates: v.GetString("paths.templates"),
			Selection: v.GetString("paths.selection"),
		},
		Output: domain.OutputConfig{
			ComposeFile: v.GetString("output.compose_file"),
			ReadmeFile:  v.GetString("output.readme_file"),
		},
		Answers: domain.AnswersConfig{MaxLength: v.GetInt("answers.max_length")},
	}

	if cfg.Answers.MaxLength <= 0 {
		return def, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  errors.New("answers.max_length must be positive"),
		}
	}
	for key, val := range map[string]string{
		"paths.catalog":       cfg.Paths.Catalog,
		"paths.templates":     cfg.Paths.Templates,
		"paths.selection":     cfg.Paths.Selection,
		"output.compose_file": cfg.Output.ComposeFile,
		"output.readme_file":  cfg.Output.ReadmeFile,
	} {
		if strings.TrimSpace(val) == "" {
			return def, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  errors.New(key + " is empty"),
			}
		}
	}

	return cfg, nil
}
