// Package metadata implements a game's ordered tag list: the PGN "Seven Tag
// Roster" plus any number of additional tags, preserving insertion order
// and permitting duplicate names.
package metadata

// SevenTagRoster is the fixed, ordered set of PGN tags every game is
// expected to carry.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// tagPair is one (name, value) entry in a Metadata's ordered list.
type tagPair struct {
	Name  string
	Value string
}

// Metadata is an ordered sequence of (name, value) string pairs. Lookup by
// name returns the first match; duplicate names are permitted, though the
// PGN writer only emits the first occurrence of each name.
type Metadata struct {
	tags []tagPair
}

// New returns an empty Metadata.
func New() Metadata {
	return Metadata{}
}

// Clone returns a deep copy of m; mutating the copy never affects m.
func (m Metadata) Clone() Metadata {
	clone := make([]tagPair, len(m.tags))
	copy(clone, m.tags)
	return Metadata{tags: clone}
}

// Len returns the number of tag pairs, including duplicates.
func (m *Metadata) Len() int { return len(m.tags) }

// At returns the name and value of the i'th tag pair in insertion order.
func (m *Metadata) At(i int) (name, value string) {
	t := m.tags[i]
	return t.Name, t.Value
}

// Get returns the value of the first tag pair with the given name, and
// whether one was found.
func (m *Metadata) Get(name string) (string, bool) {
	for _, t := range m.tags {
		if t.Name == name {
			return t.Value, true
		}
	}
	return "", false
}

// GetOr returns Get's value, or fallback if the tag is absent.
func (m *Metadata) GetOr(name, fallback string) string {
	if v, ok := m.Get(name); ok {
		return v
	}
	return fallback
}

// Set replaces the value of the first tag pair with the given name, or
// appends a new pair if none exists.
func (m *Metadata) Set(name, value string) {
	for i, t := range m.tags {
		if t.Name == name {
			m.tags[i].Value = value
			return
		}
	}
	m.Append(name, value)
}

// Append adds a new (name, value) pair unconditionally, even if name
// already appears earlier in the list.
func (m *Metadata) Append(name, value string) {
	m.tags = append(m.tags, tagPair{Name: name, Value: value})
}

// Names returns the tag names in insertion order, including duplicates.
func (m *Metadata) Names() []string {
	names := make([]string, len(m.tags))
	for i, t := range m.tags {
		names[i] = t.Name
	}
	return names
}

// IsSevenTagRosterName reports whether name is one of the Seven Tag Roster
// names.
func IsSevenTagRosterName(name string) bool {
	for _, n := range SevenTagRoster {
		if n == name {
			return true
		}
	}
	return false
}
