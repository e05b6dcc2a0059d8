package ports

import "github.com/aalvaropc/ryujin/internal/domain"

// WorkspaceInitializer scaffolds a ryujin home and reports the files it wrote.
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) (written []string, err error)
}
