package board

import "fmt"

// Board is the standard Clue-Less layout: nine rooms in a 3x3 grid, twelve
// connecting hallways, and two secret passages between diagonally opposite
// corner rooms. Built once per session.
type Board struct {
	spaces   map[string]*Space
	order    []string          // insertion order, for deterministic listing
	starting map[string]string // character -> starting hallway name
}

// hallwayName gives the canonical "A-B" name for the hallway between two
// rooms.
func hallwayName(a, b string) string {
	return fmt.Sprintf("%s-%s", a, b)
}

// New constructs the standard board.
func New() *Board {
	b := &Board{
		spaces:   make(map[string]*Space),
		starting: make(map[string]string),
	}

	corner := map[string]bool{
		"Study": true, "Lounge": true, "Conservatory": true, "Kitchen": true,
	}
	// 3x3 grid, row by row.
	grid := [][]string{
		{"Study", "Hall", "Lounge"},
		{"Library", "Billiard Room", "Dining Room"},
		{"Conservatory", "Ballroom", "Kitchen"},
	}
	for _, row := range grid {
		for _, name := range row {
			if corner[name] {
				b.add(NewCornerRoom(name))
			} else {
				b.add(NewRoom(name))
			}
		}
	}

	// Horizontal then vertical hallways, one per neighboring room pair.
	pairs := [][2]string{
		{"Study", "Hall"}, {"Hall", "Lounge"},
		{"Library", "Billiard Room"}, {"Billiard Room", "Dining Room"},
		{"Conservatory", "Ballroom"}, {"Ballroom", "Kitchen"},
		{"Study", "Library"}, {"Library", "Conservatory"},
		{"Hall", "Billiard Room"}, {"Billiard Room", "Ballroom"},
		{"Lounge", "Dining Room"}, {"Dining Room", "Kitchen"},
	}
	for _, pair := range pairs {
		hall := NewHallway(hallwayName(pair[0], pair[1]))
		b.add(hall)
		// Panics cannot fire here: the layout has no self edges.
		if err := hall.AddAdjacent(b.spaces[pair[0]]); err != nil {
			panic(err)
		}
		if err := hall.AddAdjacent(b.spaces[pair[1]]); err != nil {
			panic(err)
		}
	}

	if err := b.spaces["Study"].AddSecretPassage(b.spaces["Kitchen"]); err != nil {
		panic(err)
	}
	if err := b.spaces["Lounge"].AddSecretPassage(b.spaces["Conservatory"]); err != nil {
		panic(err)
	}

	// Each suspect opens the game in a fixed hallway next to their home
	// corner of the board.
	b.starting = map[string]string{
		"Miss Scarlett":   hallwayName("Hall", "Lounge"),
		"Colonel Mustard": hallwayName("Lounge", "Dining Room"),
		"Mrs. White":      hallwayName("Ballroom", "Kitchen"),
		"Mr. Green":       hallwayName("Conservatory", "Ballroom"),
		"Mrs. Peacock":    hallwayName("Library", "Conservatory"),
		"Professor Plum":  hallwayName("Study", "Library"),
	}
	return b
}

func (b *Board) add(s *Space) {
	b.spaces[s.Name()] = s
	b.order = append(b.order, s.Name())
}

// Space looks up a space by name.
func (b *Board) Space(name string) (*Space, bool) {
	s, ok := b.spaces[name]
	return s, ok
}

// Spaces returns all spaces in construction order.
func (b *Board) Spaces() []*Space {
	out := make([]*Space, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.spaces[name])
	}
	return out
}

// StartingSpace returns a character's fixed starting hallway.
func (b *Board) StartingSpace(character string) (*Space, bool) {
	name, ok := b.starting[character]
	if !ok {
		return nil, false
	}
	return b.spaces[name], true
}
