package cards

// Hand is an unordered collection of cards: a player's hand, or the hidden
// case file.
type Hand struct {
	cards []Card
}

func NewHand() *Hand { return &Hand{} }

func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// Has reports whether the hand holds a card equal to c.
func (h *Hand) Has(c Card) bool {
	for _, held := range h.cards {
		if held == c {
			return true
		}
	}
	return false
}

func (h *Hand) Empty() bool { return len(h.cards) == 0 }
func (h *Hand) Len() int    { return len(h.cards) }

// Cards returns a copy of the hand's contents.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}
