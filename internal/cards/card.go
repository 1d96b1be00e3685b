package cards

import "fmt"

// Category defines the type of a card using a typed enum.
type Category int

const (
	CategorySuspect Category = iota
	CategoryWeapon
	CategoryRoom
)

func (c Category) String() string {
	return []string{"suspect", "weapon", "room"}[c]
}

// Categories lists all card categories in canonical order.
var Categories = []Category{CategorySuspect, CategoryWeapon, CategoryRoom}

// The closed card vocabulary. Every card in play comes from these lists;
// constructing a card with any other name fails.
var (
	Suspects = []string{
		"Miss Scarlett",
		"Colonel Mustard",
		"Mrs. White",
		"Mr. Green",
		"Mrs. Peacock",
		"Professor Plum",
	}
	Weapons = []string{
		"Candlestick",
		"Dagger",
		"Lead Pipe",
		"Revolver",
		"Rope",
		"Wrench",
	}
	Rooms = []string{
		"Study",
		"Hall",
		"Lounge",
		"Library",
		"Billiard Room",
		"Dining Room",
		"Conservatory",
		"Ballroom",
		"Kitchen",
	}
)

// Names returns the vocabulary list for a category.
func Names(cat Category) []string {
	switch cat {
	case CategorySuspect:
		return Suspects
	case CategoryWeapon:
		return Weapons
	case CategoryRoom:
		return Rooms
	default:
		return nil
	}
}

// InvalidCardError reports an attempt to construct a card whose name is not
// in its category's vocabulary.
type InvalidCardError struct {
	Name     string
	Category Category
}

func (e *InvalidCardError) Error() string {
	return fmt.Sprintf("%q is not a valid %s", e.Name, e.Category)
}

// Card identifies a single game card. Equality is by (name, category).
type Card struct {
	name     string
	category Category
}

// New constructs a card, validating the name against the category's
// vocabulary.
func New(name string, cat Category) (Card, error) {
	for _, valid := range Names(cat) {
		if valid == name {
			return Card{name: name, category: cat}, nil
		}
	}
	return Card{}, &InvalidCardError{Name: name, Category: cat}
}

// MustNew is New for names known to be in the vocabulary, such as when
// building the full deck. It panics on an invalid name.
func MustNew(name string, cat Category) Card {
	c, err := New(name, cat)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Name() string       { return c.name }
func (c Card) Category() Category { return c.category }

func (c Card) String() string { return c.name }
