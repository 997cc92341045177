// Package taxdata holds the compiled-in state income tax reference table
// and lookups over it. The table is a versioned data artifact sourced from
// published Tax Foundation rates (2023 tax year); revising it for a new
// year is a data-only change.
package taxdata

import (
	"github.com/statax/statax/internal/domain"
)

// Store provides read-only access to the state tax table. It is never
// mutated after construction, so a single Store is safe for any number of
// concurrent callers without synchronization.
type Store struct {
	profiles map[string]*domain.StateTaxProfile
	names    []string
}

var defaultStore = NewStore(stateProfiles())

// Default returns the process-wide store backed by the compiled-in table.
func Default() *Store {
	return defaultStore
}

// NewStore builds a store from an explicit profile list, preserving
// insertion order for StateNames. Used by Default and by tests that want a
// reduced table.
func NewStore(profiles []domain.StateTaxProfile) *Store {
	s := &Store{
		profiles: make(map[string]*domain.StateTaxProfile, len(profiles)),
		names:    make([]string, 0, len(profiles)),
	}
	for i := range profiles {
		p := &profiles[i]
		s.profiles[p.Name] = p
		s.names = append(s.names, p.Name)
	}
	return s
}

// StateProfile resolves a state name to its tax profile. The match is
// exact and case-sensitive against the canonical state names; anything
// else (including the empty string) fails with StateNotFoundError echoing
// the supplied name.
func (s *Store) StateProfile(name string) (*domain.StateTaxProfile, error) {
	p, ok := s.profiles[name]
	if !ok {
		return nil, &domain.StateNotFoundError{Name: name}
	}
	return p, nil
}

// StateNames returns all state names in table insertion order. Callers
// that need a different order sort the returned copy themselves.
func (s *Store) StateNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Len returns the number of states in the table.
func (s *Store) Len() int {
	return len(s.names)
}
