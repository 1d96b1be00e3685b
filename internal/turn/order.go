package turn

import (
	"math/rand"

	"clueless/internal/cards"
	"clueless/internal/player"
)

// Order is the circular turn sequence. It is a fixed arena of six suspect
// slots with an index cursor; advancing is modular index arithmetic filtered
// on the Active flag, so there is no pointer relinking to get wrong.
//
// The cursor skips unseated and inactive slots but not eliminated players:
// an eliminated player stays in rotation because their hand can still
// disprove suggestions.
type Order struct {
	slots   []*player.Player
	current int // -1 until Begin
	rng     *rand.Rand
}

// NewOrder pre-seeds one slot per suspect, all unseated.
func NewOrder(rng *rand.Rand) *Order {
	o := &Order{current: -1, rng: rng}
	for _, character := range cards.Suspects {
		o.slots = append(o.slots, player.New(character))
	}
	return o
}

// Seat binds a participant to the first unseated slot and returns it.
// Returns nil when every slot is taken or the id is already seated.
func (o *Order) Seat(name string, id int) *player.Player {
	if o.ByID(id) != nil {
		return nil
	}
	for _, p := range o.slots {
		if !p.Seated() {
			p.Seat(name, id)
			return p
		}
	}
	return nil
}

// SeatCharacter rebinds a seated participant to the named character's slot.
// Fails when the target slot is held by a different participant or the
// character is unknown.
func (o *Order) SeatCharacter(id int, character string) bool {
	cur := o.ByID(id)
	target := o.ByCharacter(character)
	if cur == nil || target == nil {
		return false
	}
	if target == cur {
		return true
	}
	if target.Seated() {
		return false
	}
	target.Seat(cur.Name, cur.ID)
	cur.Unseat()
	return true
}

// Remove marks a seated player's slot inactive. The slot itself stays in the
// arena, so circularity cannot break even when the current player leaves.
func (o *Order) Remove(id int) bool {
	p := o.ByID(id)
	if p == nil {
		return false
	}
	p.Active = false
	return true
}

// Unseat fully releases a slot. Legal only in the lobby, before hands exist.
func (o *Order) Unseat(id int) bool {
	p := o.ByID(id)
	if p == nil {
		return false
	}
	p.Unseat()
	return true
}

// ByID finds the seated player bound to a participant id.
func (o *Order) ByID(id int) *player.Player {
	if id == player.UnseatedID {
		return nil
	}
	for _, p := range o.slots {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ByCharacter finds the slot for a character name, seated or not.
func (o *Order) ByCharacter(character string) *player.Player {
	for _, p := range o.slots {
		if p.Character == character {
			return p
		}
	}
	return nil
}

// Current returns the player whose turn it is, or nil before Begin.
func (o *Order) Current() *player.Player {
	if o.current < 0 {
		return nil
	}
	return o.slots[o.current]
}

// Advance moves the cursor to the next active slot, wrapping at most once,
// and resets the new current player's per-turn flags. Returns nil when no
// slot is active.
func (o *Order) Advance() *player.Player {
	n := len(o.slots)
	for i := 1; i <= n; i++ {
		idx := (o.current + i) % n
		if o.slots[idx].Active {
			o.current = idx
			o.slots[idx].ResetTurnFlags()
			return o.slots[idx]
		}
	}
	return nil
}

// Begin parks the cursor on the first active slot and resets its flags.
// Called once, after Randomize, when the game starts.
func (o *Order) Begin() *player.Player {
	for idx, p := range o.slots {
		if p.Active {
			o.current = idx
			p.ResetTurnFlags()
			return p
		}
	}
	return nil
}

// Randomize applies a uniform shuffle to the slot arena. Must not be called
// mid-turn; the session only invokes it during game setup.
func (o *Order) Randomize() {
	o.rng.Shuffle(len(o.slots), func(i, j int) {
		o.slots[i], o.slots[j] = o.slots[j], o.slots[i]
	})
	o.current = -1
}

// Players yields players in rotation order, a single pass starting from the
// current player and wrapping exactly once. With all=false only active
// players are returned; with all=true every seated player is, which lets
// the disprove search include eliminated hands.
func (o *Order) Players(all bool) []*player.Player {
	n := len(o.slots)
	start := o.current
	if start < 0 {
		start = 0
	}
	var out []*player.Player
	for i := 0; i < n; i++ {
		p := o.slots[(start+i)%n]
		if all {
			if p.Seated() {
				out = append(out, p)
			}
		} else if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// SeatsAfter returns every seated player strictly after p in rotation order,
// wrapping once and never revisiting p. This is the disprove visit order.
func (o *Order) SeatsAfter(p *player.Player) []*player.Player {
	n := len(o.slots)
	start := -1
	for idx, slot := range o.slots {
		if slot == p {
			start = idx
			break
		}
	}
	if start < 0 {
		return nil
	}
	var out []*player.Player
	for i := 1; i < n; i++ {
		candidate := o.slots[(start+i)%n]
		if candidate.Seated() {
			out = append(out, candidate)
		}
	}
	return out
}

// SeatedCount counts slots with a bound participant.
func (o *Order) SeatedCount() int {
	count := 0
	for _, p := range o.slots {
		if p.Seated() {
			count++
		}
	}
	return count
}

// ActiveCount counts active slots.
func (o *Order) ActiveCount() int {
	count := 0
	for _, p := range o.slots {
		if p.Active {
			count++
		}
	}
	return count
}

// SurvivorCount counts active players still allowed to accuse.
func (o *Order) SurvivorCount() int {
	count := 0
	for _, p := range o.slots {
		if p.Active && !p.Eliminated {
			count++
		}
	}
	return count
}
