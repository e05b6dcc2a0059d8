package domain

import "slices"

// SelectionAction tags one entry of the selection event log.
type SelectionAction string

const (
	ActionAdded           SelectionAction = "added"
	ActionAlreadySelected SelectionAction = "already_selected"
	ActionRemoved         SelectionAction = "removed"
	ActionNotSelected     SelectionAction = "not_selected"
	ActionCleared         SelectionAction = "cleared"
)

// SelectionEvent is an informational report emitted by a selection edit.
// Callers decide how (and whether) to render it.
type SelectionEvent struct {
	Action  SelectionAction
	Service string
}

// Selection is a duplicate-free list of service names kept in insertion order.
// Name comparison is exact; callers normalize case before calling in.
//
// Membership is checked against the catalog on Add and Replace only. Names that
// were valid when added are not re-checked if the catalog later shrinks.
type Selection struct {
	names []string
}

// NewSelection builds a selection from persisted names, dropping duplicates.
func NewSelection(names []string) *Selection {
	s := &Selection{}
	for _, n := range names {
		if !s.Contains(n) {
			s.names = append(s.names, n)
		}
	}
	return s
}

func (s *Selection) Len() int { return len(s.names) }

func (s *Selection) IsEmpty() bool { return len(s.names) == 0 }

func (s *Selection) Contains(name string) bool {
	return slices.Contains(s.names, name)
}

// Names returns a copy of the current names, possibly empty.
func (s *Selection) Names() []string {
	return slices.Clone(s.names)
}

// List returns the names in insertion order or ErrEmptySelection.
func (s *Selection) List() ([]string, error) {
	if s.IsEmpty() {
		return nil, ErrEmptySelection
	}
	return s.Names(), nil
}

// Clear empties the selection. Clearing an empty selection is an error.
func (s *Selection) Clear() ([]SelectionEvent, error) {
	if s.IsEmpty() {
		return nil, ErrEmptySelection
	}
	s.names = nil
	return []SelectionEvent{{Action: ActionCleared}}, nil
}

// Replace validates every name and then swaps the selection contents.
// An empty list behaves as Clear.
func (s *Selection) Replace(catalog Catalog, names []string) ([]SelectionEvent, error) {
	if len(names) == 0 {
		return s.Clear()
	}
	if err := catalog.Validate(names); err != nil {
		return nil, err
	}

	s.names = nil
	events := []SelectionEvent{{Action: ActionCleared}}
	return append(events, s.insert(names)...), nil
}

// Add validates every name before mutating. Names already present are
// reported and left untouched.
func (s *Selection) Add(catalog Catalog, names []string) ([]SelectionEvent, error) {
	if err := catalog.Validate(names); err != nil {
		return nil, err
	}
	return s.insert(names), nil
}

// Remove drops the given names. Absent names are reported, not rejected.
func (s *Selection) Remove(names []string) ([]SelectionEvent, error) {
	if s.IsEmpty() {
		return nil, ErrEmptySelection
	}

	events := make([]SelectionEvent, 0, len(names))
	for _, n := range names {
		i := slices.Index(s.names, n)
		if i < 0 {
			events = append(events, SelectionEvent{Action: ActionNotSelected, Service: n})
			continue
		}
		s.names = slices.Delete(s.names, i, i+1)
		events = append(events, SelectionEvent{Action: ActionRemoved, Service: n})
	}
	return events, nil
}

func (s *Selection) insert(names []string) []SelectionEvent {
	events := make([]SelectionEvent, 0, len(names))
	for _, n := range names {
		if s.Contains(n) {
			events = append(events, SelectionEvent{Action: ActionAlreadySelected, Service: n})
			continue
		}
		s.names = append(s.names, n)
		events = append(events, SelectionEvent{Action: ActionAdded, Service: n})
	}
	return events
}
