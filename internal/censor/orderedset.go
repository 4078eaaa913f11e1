package censor

import "strings"

// Entry is a flagged word and, for rightspeak, its replacement.
type Entry struct {
	Oldspeak    string
	Newspeak    string
	HasNewspeak bool
}

func (e Entry) String() string {
	if e.HasNewspeak {
		return e.Oldspeak + "->" + e.Newspeak
	}
	return e.Oldspeak
}

// OrderedSet collects entries once each, in first-seen order.
type OrderedSet struct {
	seen    map[string]struct{}
	entries []Entry
}

func NewOrderedSet() *OrderedSet {
	return &OrderedSet{seen: make(map[string]struct{})}
}

// Add inserts _entry_ unless its oldspeak word is already present
func (s *OrderedSet) Add(entry Entry) bool {
	if _, ok := s.seen[entry.Oldspeak]; ok {
		return false
	}
	s.seen[entry.Oldspeak] = struct{}{}
	s.entries = append(s.entries, entry)
	return true
}

func (s *OrderedSet) Contains(oldspeak string) bool {
	_, ok := s.seen[oldspeak]
	return ok
}

func (s *OrderedSet) Len() int {
	return len(s.entries)
}

// Entries returns the entries in insertion order
func (s *OrderedSet) Entries() []Entry {
	return s.entries
}

func (s *OrderedSet) String() string {
	var sb strings.Builder
	for _, e := range s.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
