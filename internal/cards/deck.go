package cards

import "math/rand"

// Deck is an ordered pile of unique cards. The zero value is empty; NewDeck
// builds the full 21-card game deck.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck builds a deck holding exactly one card for every suspect, weapon
// and room in the vocabulary. The rng is used by Shuffle.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	for _, cat := range Categories {
		for _, name := range Names(cat) {
			d.cards = append(d.cards, MustNew(name, cat))
		}
	}
	return d
}

// Shuffle applies a uniform random permutation to the remaining cards.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the front card. ok is false on an empty deck.
func (d *Deck) Deal() (c Card, ok bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c = d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// Remove takes a specific card out of the deck by identity.
func (d *Deck) Remove(c Card) bool {
	for i, held := range d.cards {
		if held == c {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveFirstOf removes and returns the first card of the given category.
// Called after Shuffle this is a uniform draw from that category.
func (d *Deck) RemoveFirstOf(cat Category) (Card, bool) {
	for _, held := range d.cards {
		if held.Category() == cat {
			d.Remove(held)
			return held, true
		}
	}
	return Card{}, false
}

func (d *Deck) Len() int    { return len(d.cards) }
func (d *Deck) Empty() bool { return len(d.cards) == 0 }

// Cards returns a copy of the remaining cards in order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
