package ports

// SelectionStore persists the selected service names between invocations.
// A missing store reads as an empty selection.
type SelectionStore interface {
	LoadSelection() ([]string, error)
	SaveSelection(names []string) error
}
