package intake

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceList_AddAssignsFreshIdentities(t *testing.T) {
	l := NewExperienceList(KindResearch)

	a := l.Add()
	b := l.Add()

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, l.Len())
	assert.NotNil(t, l.Get(a))
	assert.NotNil(t, l.Get(b))
}

func TestExperienceList_RemoveMiddlePreservesNeighbors(t *testing.T) {
	l := NewExperienceList(KindInternship)

	first := l.Add()
	middle := l.Add()
	last := l.Add()

	l.Get(first).Name = "Alpha"
	l.Get(middle).Name = "Beta"
	l.Get(last).Name = "Gamma"

	require.True(t, l.Remove(middle))

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0].ID)
	assert.Equal(t, "Alpha", entries[0].Name)
	assert.Equal(t, last, entries[1].ID)
	assert.Equal(t, "Gamma", entries[1].Name)
	assert.Nil(t, l.Get(middle))
}

func TestExperienceList_RemoveUnknownIdentity(t *testing.T) {
	l := NewExperienceList(KindOther)
	l.Add()

	assert.False(t, l.Remove(uuid.New()))
	assert.Equal(t, 1, l.Len())
}

func TestExperienceList_AddRemoveSequencePreservesInsertionOrder(t *testing.T) {
	l := NewExperienceList(KindResearch)

	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		ids = append(ids, l.Add())
	}
	names := []string{"a", "b", "c", "d", "e"}
	for i, id := range ids {
		l.Get(id).Name = names[i]
	}

	require.True(t, l.Remove(ids[1]))
	require.True(t, l.Remove(ids[3]))
	extra := l.Add()
	l.Get(extra).Name = "f"

	var got []string
	for _, entry := range l.Entries() {
		got = append(got, entry.Name)
	}
	assert.Equal(t, []string{"a", "c", "e", "f"}, got)
}

func TestSubmit_RemovedEntriesLeaveNoGhosts(t *testing.T) {
	f := filledForm()

	keep := f.Research.Add()
	drop := f.Research.Add()
	f.Research.Get(keep).Name = "Kept lab"
	f.Research.Get(drop).Name = "Dropped lab"
	require.True(t, f.Research.Remove(drop))

	p, err := f.Submit()
	require.NoError(t, err)

	require.Len(t, p.ResearchExperiences, 1)
	assert.Equal(t, "Kept lab", p.ResearchExperiences[0].Name)
	for _, exp := range p.ResearchExperiences {
		assert.NotEqual(t, "Dropped lab", exp.Name)
	}
}
