package board

import (
	"fmt"

	"clueless/internal/cards"
)

// Kind discriminates the space variants.
type Kind int

const (
	KindRoom Kind = iota
	KindCornerRoom
	KindHallway
)

func (k Kind) String() string {
	return []string{"room", "corner room", "hallway"}[k]
}

// SelfAdjacencyError reports an attempt to connect a space to itself.
type SelfAdjacencyError struct {
	Name string
}

func (e *SelfAdjacencyError) Error() string {
	return fmt.Sprintf("%s cannot be adjacent to itself", e.Name)
}

// Space is one node of the board graph. A single struct carries all three
// variants; kind-specific behavior dispatches on Kind. Rooms hold cosmetic
// weapon tokens, corner rooms may hold one secret passage, and hallways
// admit at most one occupant.
type Space struct {
	name      string
	kind      Kind
	adjacent  []*Space
	occupants int

	weapons []cards.Card // rooms and corner rooms only
	passage *Space       // corner rooms only
}

func NewRoom(name string) *Space       { return &Space{name: name, kind: KindRoom} }
func NewCornerRoom(name string) *Space { return &Space{name: name, kind: KindCornerRoom} }
func NewHallway(name string) *Space    { return &Space{name: name, kind: KindHallway} }

func (s *Space) Name() string { return s.name }
func (s *Space) Kind() Kind   { return s.kind }

// IsRoom reports whether the space is a room of either flavor.
func (s *Space) IsRoom() bool {
	return s.kind == KindRoom || s.kind == KindCornerRoom
}

// AddAdjacent installs a symmetric edge between s and other. Insertion
// order of each side's list is preserved.
func (s *Space) AddAdjacent(other *Space) error {
	if s == other {
		return &SelfAdjacencyError{Name: s.name}
	}
	s.adjacent = append(s.adjacent, other)
	other.adjacent = append(other.adjacent, s)
	return nil
}

// Adjacent returns the neighbor list in insertion order.
func (s *Space) Adjacent() []*Space {
	out := make([]*Space, len(s.adjacent))
	copy(out, s.adjacent)
	return out
}

func (s *Space) Occupants() int { return s.occupants }

// Enterable reports whether a player may move into this space. Hallways are
// exclusive; rooms have unbounded occupancy.
func (s *Space) Enterable() bool {
	if s.kind == KindHallway {
		return s.occupants == 0
	}
	return true
}

// AddOccupant increments the occupancy counter. It refuses to overfill a
// hallway, keeping the 0-or-1 invariant true by construction.
func (s *Space) AddOccupant() bool {
	if !s.Enterable() {
		return false
	}
	s.occupants++
	return true
}

// RemoveOccupant decrements the occupancy counter, never below zero.
func (s *Space) RemoveOccupant() {
	if s.occupants > 0 {
		s.occupants--
	}
}

// AddSecretPassage links two corner rooms. Installing a passage on a room
// that already has one replaces the old reciprocal link; a corner room has
// at most one passage.
func (s *Space) AddSecretPassage(other *Space) error {
	if s == other {
		return &SelfAdjacencyError{Name: s.name}
	}
	if s.kind != KindCornerRoom || other.kind != KindCornerRoom {
		return fmt.Errorf("secret passage requires two corner rooms, got %s and %s", s.kind, other.kind)
	}
	if s.passage != nil {
		s.passage.passage = nil
	}
	if other.passage != nil {
		other.passage.passage = nil
	}
	s.passage = other
	other.passage = s
	return nil
}

// Passage returns the secret-passage destination, or nil.
func (s *Space) Passage() *Space { return s.passage }

// AddWeapon places a weapon token in a room. Tokens are cosmetic; they play
// no part in win logic.
func (s *Space) AddWeapon(c cards.Card) error {
	if !s.IsRoom() {
		return fmt.Errorf("cannot place a weapon in %s %s", s.kind, s.name)
	}
	if c.Category() != cards.CategoryWeapon {
		return fmt.Errorf("%s is not a weapon card", c.Name())
	}
	s.weapons = append(s.weapons, c)
	return nil
}

// RemoveWeapon takes a weapon token out of the room by name.
func (s *Space) RemoveWeapon(name string) (cards.Card, bool) {
	for i, w := range s.weapons {
		if w.Name() == name {
			s.weapons = append(s.weapons[:i], s.weapons[i+1:]...)
			return w, true
		}
	}
	return cards.Card{}, false
}

// Weapons returns the weapon tokens currently in the room.
func (s *Space) Weapons() []cards.Card {
	out := make([]cards.Card, len(s.weapons))
	copy(out, s.weapons)
	return out
}
