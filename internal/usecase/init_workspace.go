package usecase

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
	log         *slog.Logger
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer, opts ...Option) *InitWorkspace {
	o := applyOptions(opts)
	return &InitWorkspace{initializer: initializer, log: o.log}
}

// Execute scaffolds root. Existing files are kept unless force is set.
func (uc *InitWorkspace) Execute(root string, force bool) ([]string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &domain.OpError{Op: "init.abs", Kind: domain.KindIO, Path: root, Err: err}
	}

	written, err := uc.initializer.Init(domain.WorkspaceSpec{Root: abs}, force)
	if err != nil {
		uc.log.Error("workspace.init_failed", "root", abs, "err", err)
		return written, err
	}
	uc.log.Info("workspace.initialized", "root", abs, "files", len(written), "force", force)
	return written, nil
}
