// Package intake manages the multi-section applicant intake state: the
// required academic fields, the toggleable score blocks, and the three
// dynamic experience lists.
package intake

import "github.com/google/uuid"

// ExperienceKind distinguishes the three independent experience lists.
type ExperienceKind string

const (
	KindResearch   ExperienceKind = "research"
	KindInternship ExperienceKind = "internship"
	KindOther      ExperienceKind = "other"
)

// ExperienceEntry is one row of an experience list. The ID is assigned at
// creation and never reused; it exists only inside the intake and is
// stripped when the profile is assembled. Field meaning varies by kind:
// Name holds the company for internships, Role holds the position.
type ExperienceEntry struct {
	ID          uuid.UUID
	Name        string
	Role        string
	Description string
}

// ExperienceList is an ordered, mutable list of entries keyed by stable
// identity. Removal is by identity, never by position, so removing a
// middle entry cannot shift data between the remaining rows.
type ExperienceList struct {
	kind    ExperienceKind
	entries []*ExperienceEntry
}

// NewExperienceList creates an empty list of the given kind.
func NewExperienceList(kind ExperienceKind) *ExperienceList {
	return &ExperienceList{kind: kind}
}

// Kind returns the list's kind.
func (l *ExperienceList) Kind() ExperienceKind {
	return l.kind
}

// Add appends one blank entry and returns its fresh identity.
func (l *ExperienceList) Add() uuid.UUID {
	entry := &ExperienceEntry{ID: uuid.New()}
	l.entries = append(l.entries, entry)
	return entry.ID
}

// Remove deletes the entry with the given identity, preserving the order
// and identities of the remainder. It reports whether an entry was removed.
func (l *ExperienceList) Remove(id uuid.UUID) bool {
	for i, entry := range l.entries {
		if entry.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the entry with the given identity for editing, or nil.
func (l *ExperienceList) Get(id uuid.UUID) *ExperienceEntry {
	for _, entry := range l.entries {
		if entry.ID == id {
			return entry
		}
	}
	return nil
}

// Len returns the number of entries.
func (l *ExperienceList) Len() int {
	return len(l.entries)
}

// Entries returns the entries in insertion order.
func (l *ExperienceList) Entries() []*ExperienceEntry {
	out := make([]*ExperienceEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
