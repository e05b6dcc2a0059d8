package fsworkspace

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/ports"
)

const starterRoot = "templates"

// keepOnForce lists starter files that hold user state; --force never
// replaces them once they exist.
var keepOnForce = map[string]bool{
	"conf/conf.json": true,
}

// Initializer scaffolds a ryujin home from the embedded starter tree: config,
// a small catalog, its compose/README templates and an empty selection.
type Initializer struct {
	starter fs.FS
}

func NewInitializer() *Initializer {
	sub, err := fs.Sub(templatesFS, starterRoot)
	if err != nil {
		panic(err)
	}
	return &Initializer{starter: sub}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init copies the starter files into spec.Root and returns the files it wrote.
// Existing files are kept unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) ([]string, error) {
	root := filepath.Clean(spec.Root)

	logs := filepath.Join(root, ".ryujin", "logs")
	if err := os.MkdirAll(logs, 0o755); err != nil {
		return nil, ioErr("fsworkspace.mkdir", logs, err)
	}
	if err := ensureGitignore(root); err != nil {
		return nil, ioErr("fsworkspace.gitignore", filepath.Join(root, ".gitignore"), err)
	}

	var written []string
	err := fs.WalkDir(i.starter, ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		dst := filepath.Join(root, filepath.FromSlash(rel))
		if !shouldWrite(dst, rel, force) {
			return nil
		}
		if err := i.copyFile(rel, dst); err != nil {
			return err
		}
		written = append(written, dst)
		return nil
	})
	return written, err
}

func shouldWrite(dst, rel string, force bool) bool {
	_, err := os.Stat(dst)
	if errors.Is(err, fs.ErrNotExist) {
		return true
	}
	return force && !keepOnForce[path.Clean(rel)]
}

func (i *Initializer) copyFile(rel, dst string) error {
	b, err := fs.ReadFile(i.starter, rel)
	if err != nil {
		return ioErr("fsworkspace.read", rel, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return ioErr("fsworkspace.mkdir", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return ioErr("fsworkspace.write", dst, err)
	}
	return nil
}

func ioErr(op, p string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindIO, Path: p, Err: err}
}

const gitignoreHeader = "# ryujin"

// gitignoreEntries keep logs and the per-user selection out of version control.
var gitignoreEntries = []string{".ryujin/", "conf/conf.json"}

// ensureGitignore appends whichever ryujin entries the home's .gitignore is
// missing, under a single "# ryujin" header.
func ensureGitignore(root string) error {
	p := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	existing := string(b)

	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var block []string
	if !present[gitignoreHeader] {
		block = append(block, gitignoreHeader)
	}
	missing := 0
	for _, e := range gitignoreEntries {
		if !present[e] {
			block = append(block, e)
			missing++
		}
	}
	if missing == 0 {
		return nil
	}

	if existing != "" {
		if !strings.HasSuffix(existing, "\n") {
			existing += "\n"
		}
		existing += "\n"
	}
	return os.WriteFile(p, []byte(existing+strings.Join(block, "\n")+"\n"), 0o644)
}
