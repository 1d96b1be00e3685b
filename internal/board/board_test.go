package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clueless/internal/cards"
)

func TestAddAdjacentIsSymmetric(t *testing.T) {
	a := NewRoom("Study")
	b := NewHallway("Study-Hall")

	require.NoError(t, a.AddAdjacent(b))

	assert.Contains(t, a.Adjacent(), b)
	assert.Contains(t, b.Adjacent(), a)
}

func TestSelfAdjacencyRejected(t *testing.T) {
	a := NewRoom("Study")
	err := a.AddAdjacent(a)

	var selfErr *SelfAdjacencyError
	require.ErrorAs(t, err, &selfErr)
	assert.Equal(t, "Study", selfErr.Name)
	assert.Empty(t, a.Adjacent())
}

func TestHallwayExclusivity(t *testing.T) {
	h := NewHallway("Study-Hall")
	assert.True(t, h.Enterable())

	require.True(t, h.AddOccupant())
	assert.Equal(t, 1, h.Occupants())
	assert.False(t, h.Enterable())
	assert.False(t, h.AddOccupant(), "hallway holds at most one occupant")
	assert.Equal(t, 1, h.Occupants())

	h.RemoveOccupant()
	assert.True(t, h.Enterable())
	h.RemoveOccupant()
	assert.Equal(t, 0, h.Occupants(), "occupancy never underflows")
}

func TestRoomOccupancyUnbounded(t *testing.T) {
	r := NewRoom("Hall")
	for i := 0; i < 6; i++ {
		require.True(t, r.AddOccupant())
	}
	assert.Equal(t, 6, r.Occupants())
	assert.True(t, r.Enterable())
}

func TestSecretPassage(t *testing.T) {
	study := NewCornerRoom("Study")
	kitchen := NewCornerRoom("Kitchen")
	lounge := NewCornerRoom("Lounge")

	require.NoError(t, study.AddSecretPassage(kitchen))
	assert.Equal(t, kitchen, study.Passage())
	assert.Equal(t, study, kitchen.Passage())

	t.Run("self passage rejected", func(t *testing.T) {
		var selfErr *SelfAdjacencyError
		assert.ErrorAs(t, study.AddSecretPassage(study), &selfErr)
	})

	t.Run("plain rooms rejected", func(t *testing.T) {
		assert.Error(t, study.AddSecretPassage(NewRoom("Hall")))
	})

	t.Run("replacing a passage clears the old reciprocal link", func(t *testing.T) {
		require.NoError(t, study.AddSecretPassage(lounge))
		assert.Equal(t, lounge, study.Passage())
		assert.Equal(t, study, lounge.Passage())
		assert.Nil(t, kitchen.Passage())
	})
}

func TestWeaponTokens(t *testing.T) {
	r := NewRoom("Library")
	rope := cards.MustNew("Rope", cards.CategoryWeapon)

	require.NoError(t, r.AddWeapon(rope))
	assert.Len(t, r.Weapons(), 1)

	assert.Error(t, r.AddWeapon(cards.MustNew("Professor Plum", cards.CategorySuspect)))
	assert.Error(t, NewHallway("x").AddWeapon(rope))

	got, ok := r.RemoveWeapon("Rope")
	require.True(t, ok)
	assert.Equal(t, rope, got)
	_, ok = r.RemoveWeapon("Rope")
	assert.False(t, ok)
}

func TestStandardBoardLayout(t *testing.T) {
	b := New()

	var rooms, corners, hallways int
	for _, sp := range b.Spaces() {
		switch sp.Kind() {
		case KindRoom:
			rooms++
		case KindCornerRoom:
			corners++
		case KindHallway:
			hallways++
		}
	}
	assert.Equal(t, 5, rooms)
	assert.Equal(t, 4, corners)
	assert.Equal(t, 12, hallways)

	t.Run("every hallway joins exactly two rooms", func(t *testing.T) {
		for _, sp := range b.Spaces() {
			if sp.Kind() != KindHallway {
				continue
			}
			neighbors := sp.Adjacent()
			require.Len(t, neighbors, 2, sp.Name())
			for _, n := range neighbors {
				assert.True(t, n.IsRoom())
				assert.Contains(t, n.Adjacent(), sp, "adjacency must be symmetric")
			}
		}
	})

	t.Run("secret passages join opposite corners", func(t *testing.T) {
		study, _ := b.Space("Study")
		kitchen, _ := b.Space("Kitchen")
		lounge, _ := b.Space("Lounge")
		conservatory, _ := b.Space("Conservatory")

		assert.Equal(t, kitchen, study.Passage())
		assert.Equal(t, study, kitchen.Passage())
		assert.Equal(t, conservatory, lounge.Passage())
		assert.Equal(t, lounge, conservatory.Passage())
	})

	t.Run("every suspect has a distinct starting hallway", func(t *testing.T) {
		seen := map[string]bool{}
		for _, character := range cards.Suspects {
			start, ok := b.StartingSpace(character)
			require.True(t, ok, character)
			assert.Equal(t, KindHallway, start.Kind())
			assert.False(t, seen[start.Name()], "starting hallways must not collide")
			seen[start.Name()] = true
		}
	})
}
