package permission

import "fmt"

// ComponentsStore keeps exactly one Component per Kind. Entries are seeded at
// construction and never removed.
type ComponentsStore struct {
	components [kindCount]Component
}

// Entry pairs a kind with its component.
type Entry struct {
	Kind      Kind
	Component Component
}

// NewComponentsStore returns a registry seeded with the default metadata of
// every kind.
func NewComponentsStore() *ComponentsStore {
	return &ComponentsStore{components: defaultComponents}
}

// Get returns the entry for kind. It panics on a value outside the
// enumeration, which can only come from a programming error.
func (s *ComponentsStore) Get(kind Kind) Component {
	mustValid(kind)
	return s.components[kind]
}

// Update applies mutate to the entry for kind in place.
func (s *ComponentsStore) Update(kind Kind, mutate func(*Component)) {
	mustValid(kind)
	if mutate == nil {
		return
	}
	mutate(&s.components[kind])
}

// Set applies opts to the entry for kind. Empty option values keep what the
// entry already has.
func (s *ComponentsStore) Set(kind Kind, opts ...Option) {
	s.Update(kind, func(c *Component) {
		*c = c.With(opts...)
	})
}

// HasBeenCustomized reports whether the entry differs from its seed.
func (s *ComponentsStore) HasBeenCustomized(kind Kind) bool {
	return s.Get(kind) != defaultComponents[kind]
}

// Entries lists every entry in kind order.
func (s *ComponentsStore) Entries() []Entry {
	entries := make([]Entry, kindCount)
	for i := range entries {
		entries[i] = Entry{Kind: Kind(i), Component: s.components[i]}
	}
	return entries
}

// Clone returns an independent copy.
func (s *ComponentsStore) Clone() *ComponentsStore {
	clone := *s
	return &clone
}

func mustValid(kind Kind) {
	if !kind.Valid() {
		panic(fmt.Sprintf("permission: %s is not a known kind", kind))
	}
}
