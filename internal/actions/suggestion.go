package actions

import (
	"fmt"

	"clueless/internal/board"
	"clueless/internal/cards"
	"clueless/internal/player"
	"clueless/internal/turn"
)

// Suggest resolves a suggestion by the acting player. The named room must be
// the suggester's current room; the named suspect's token (and the weapon
// token) are dragged there as a side effect regardless of whose turn the
// named suspect is having.
//
// The disprove search starts at the seat after the suggester and wraps once,
// visiting eliminated players too. The first visited player holding at
// least one of the three cards disproves with all of their matches.
// HasMadeSuggestion is set whether or not anyone disproves.
func Suggest(o *turn.Order, b *board.Board, suggester *player.Player, suspect, weapon, room string) (*player.Player, []cards.Card, error) {
	suspectCard, err := cards.New(suspect, cards.CategorySuspect)
	if err != nil {
		return nil, nil, err
	}
	weaponCard, err := cards.New(weapon, cards.CategoryWeapon)
	if err != nil {
		return nil, nil, err
	}
	roomCard, err := cards.New(room, cards.CategoryRoom)
	if err != nil {
		return nil, nil, err
	}

	if suggester.Location == nil || !suggester.Location.IsRoom() {
		return nil, nil, fmt.Errorf("%s must be in a room to suggest", suggester.Character)
	}
	if suggester.Location.Name() != room {
		return nil, nil, fmt.Errorf("suggestion room must be %s, the suggester's current room", suggester.Location.Name())
	}

	dragSuspectToken(o, suggester, suspect)
	dragWeaponToken(b, suggester.Location, weapon)
	suggester.HasMadeSuggestion = true

	suggested := []cards.Card{suspectCard, weaponCard, roomCard}
	for _, holder := range o.SeatsAfter(suggester) {
		var matches []cards.Card
		for _, c := range suggested {
			if holder.Hand.Has(c) {
				matches = append(matches, c)
			}
		}
		if len(matches) > 0 {
			return holder, matches, nil
		}
	}
	return nil, nil, nil
}

// dragSuspectToken moves the named suspect's token into the suggestion room.
// Rooms have unbounded occupancy, so the relocation cannot fail.
func dragSuspectToken(o *turn.Order, suggester *player.Player, suspect string) {
	target := o.ByCharacter(suspect)
	if target == nil || target == suggester || target.Location == suggester.Location {
		return
	}
	if target.Location == nil {
		// Unseated tokens are not on the board before the game starts.
		return
	}
	target.Relocate(suggester.Location)
}

// dragWeaponToken moves the named weapon's token from wherever it sits into
// the suggestion room.
func dragWeaponToken(b *board.Board, room *board.Space, weapon string) {
	for _, sp := range b.Spaces() {
		if sp == room {
			continue
		}
		if token, ok := sp.RemoveWeapon(weapon); ok {
			room.AddWeapon(token)
			return
		}
	}
}
