package cli

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/ryujin/internal/domain"
)

// prompter is the part of the terminal the output directory dialog needs.
type prompter interface {
	ReadLine(prompt string) (string, error)
	Confirm(prompt string) (bool, error)
	Warning(format string, args ...any)
	Info(format string, args ...any)
}

// prepareOutputDir sanitizes raw and makes sure it names an existing
// directory, asking to create it or for another path until one works. An
// empty path aborts. When composeFile already exists inside it the user must
// confirm the overwrite. assumeYes answers both confirmations with yes.
func prepareOutputDir(p prompter, raw, composeFile string, assumeYes bool) (string, error) {
	dir := domain.SanitizeOutputPath(raw)

	for {
		if dir == "" {
			return "", domain.ErrAborted
		}

		info, err := os.Stat(dir)
		switch {
		case err == nil && info.IsDir():
			return confirmOverwrite(p, dir, composeFile, assumeYes)

		case err == nil:
			p.Warning("%s is not a directory", dir)

		case os.IsNotExist(err):
			create := assumeYes
			if !create {
				if create, err = p.Confirm("Directory " + dir + " does not exist. Create it?"); err != nil {
					return "", err
				}
			}
			if create {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return "", &domain.OpError{Op: "cli.mkdir", Kind: domain.KindIO, Path: dir, Err: err}
				}
				p.Info("created %s", dir)
				return confirmOverwrite(p, dir, composeFile, assumeYes)
			}

		default:
			return "", &domain.OpError{Op: "cli.stat", Kind: domain.KindIO, Path: dir, Err: err}
		}

		next, err := p.ReadLine("Output directory (empty to abort)")
		if err != nil {
			return "", err
		}
		dir = domain.SanitizeOutputPath(next)
	}
}

func confirmOverwrite(p prompter, dir, composeFile string, assumeYes bool) (string, error) {
	target := filepath.Join(dir, composeFile)
	if _, err := os.Stat(target); err != nil || assumeYes {
		return dir, nil
	}
	ok, err := p.Confirm(target + " already exists. Overwrite?")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrAborted
	}
	return dir, nil
}
