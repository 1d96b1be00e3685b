package player

import (
	"clueless/internal/board"
	"clueless/internal/cards"
)

// UnseatedID marks a suspect slot with no participant bound to it.
const UnseatedID = -1

// Player is the per-participant mutable state. One Player value exists for
// each of the six suspect slots; Seat binds a real participant to a slot.
// Location spaces are borrowed from the session's board, never owned.
type Player struct {
	ID        int
	Name      string
	Character string
	Hand      *cards.Hand

	Location     *board.Space
	PrevLocation *board.Space

	Active     bool
	Eliminated bool

	// Per-turn flags, cleared at the start of each of this player's turns.
	HasMoved          bool
	HasEnteredRoom    bool
	HasMadeSuggestion bool
	HasMadeAccusation bool
}

// New creates an unseated slot for a character.
func New(character string) *Player {
	return &Player{
		ID:        UnseatedID,
		Character: character,
		Hand:      cards.NewHand(),
	}
}

// Seat binds a participant to this slot and marks it active.
func (p *Player) Seat(name string, id int) {
	p.Name = name
	p.ID = id
	p.Active = true
}

// Unseat releases the slot. Used only before the game starts; mid-game
// departures flip Active instead so the dealt hand stays in place for
// disproving.
func (p *Player) Unseat() {
	p.Name = ""
	p.ID = UnseatedID
	p.Active = false
	p.Hand = cards.NewHand()
}

// Seated reports whether a participant is bound to this slot, active or not.
func (p *Player) Seated() bool { return p.ID != UnseatedID }

// ResetTurnFlags clears the four per-turn flags. Called when this player's
// turn begins; leaking a previous turn's flags is a correctness bug.
func (p *Player) ResetTurnFlags() {
	p.HasMoved = false
	p.HasEnteredRoom = false
	p.HasMadeSuggestion = false
	p.HasMadeAccusation = false
}

// ValidMoves lists the spaces this player may move to: adjacent spaces that
// are enterable (hallways only when empty), plus the secret passage when
// standing in a corner room.
func (p *Player) ValidMoves() []*board.Space {
	if p.Location == nil {
		return nil
	}
	var out []*board.Space
	for _, sp := range p.Location.Adjacent() {
		if sp.Enterable() {
			out = append(out, sp)
		}
	}
	if passage := p.Location.Passage(); passage != nil {
		out = append(out, passage)
	}
	return out
}

// Relocate moves the player to dest, maintaining occupancy counters on both
// sides. It fails without side effects if dest cannot admit another player.
func (p *Player) Relocate(dest *board.Space) bool {
	if !dest.AddOccupant() {
		return false
	}
	if p.Location != nil {
		p.Location.RemoveOccupant()
	}
	p.PrevLocation = p.Location
	p.Location = dest
	return true
}
