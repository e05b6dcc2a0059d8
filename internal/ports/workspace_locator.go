package ports

// WorkspaceLocator finds a ryujin home starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
