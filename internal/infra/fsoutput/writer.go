package fsoutput

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/ports"
)

// Writer stores rendered files on the local filesystem.
type Writer struct {
	perm os.FileMode
}

func NewWriter() *Writer {
	return &Writer{perm: 0o644}
}

var _ ports.OutputWriter = (*Writer)(nil)

// WriteFile writes content to dir/name, replacing any previous file. The
// directory must already exist; preparing it is the caller's job.
func (w *Writer) WriteFile(dir, name string, content []byte) (string, error) {
	path := filepath.Join(dir, name)

	info, err := os.Stat(dir)
	if err != nil {
		kind := domain.KindIO
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return "", &domain.OpError{Op: "fsoutput.stat", Kind: kind, Path: dir, Err: err}
	}
	if !info.IsDir() {
		return "", &domain.OpError{Op: "fsoutput.stat", Kind: domain.KindIO, Path: dir, Err: os.ErrInvalid}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, w.perm); err != nil {
		return "", &domain.OpError{Op: "fsoutput.write", Kind: domain.KindIO, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{Op: "fsoutput.rename", Kind: domain.KindIO, Path: path, Err: err}
	}
	return path, nil
}
