package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/ports"
)

// HomeEnvVars are consulted in order when no explicit home is given.
// RYUJIN_CLI_PATH is the name older installs used.
var HomeEnvVars = []string{"RYUJIN_HOME", "RYUJIN_CLI_PATH"}

// Finder locates a ryujin home. A directory is a home when it holds any of
// Markers: ryujin.yaml, or the catalog of a home created before ryujin.yaml
// existed.
type Finder struct {
	Markers []string
}

func NewFinder() *Finder {
	return &Finder{Markers: []string{ConfigFileName, filepath.Join("services", "services.json")}}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

// ResolveHome picks the ryujin home: the explicit path, then HomeEnvVars,
// then an upward search from cwd, then cwd itself.
func (f *Finder) ResolveHome(explicit, cwd string, getenv func(string) string) (string, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	if p := strings.TrimSpace(explicit); p != "" {
		return filepath.Abs(p)
	}
	for _, name := range HomeEnvVars {
		if p := strings.TrimSpace(getenv(name)); p != "" {
			return filepath.Abs(p)
		}
	}

	if root, err := f.FindRoot(cwd); err == nil {
		return root, nil
	}
	return filepath.Abs(cwd)
}

// FindRoot walks up from startDir to the first directory holding a marker.
func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspacefinder.findroot"
	if startDir == "" {
		return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: errors.New("start directory is empty")}
	}

	cur, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindIO, Path: startDir, Err: err}
	}
	if info, err := os.Stat(cur); err == nil && !info.IsDir() {
		cur = filepath.Dir(cur)
	}

	for {
		if f.isHome(cur) {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: startDir, Err: domain.ErrNotFound}
		}
		cur = parent
	}
}

func (f *Finder) isHome(dir string) bool {
	for _, m := range f.Markers {
		if info, err := os.Stat(filepath.Join(dir, m)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
