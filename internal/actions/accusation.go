package actions

import (
	"clueless/internal/cards"
	"clueless/internal/player"
)

// Accuse checks the accuser's claim against the hidden case file. The claim
// is correct only when all three named cards are in the file. The accuser's
// HasMadeAccusation flag is set whether or not the claim holds; the caller
// applies the win or elimination consequence.
func Accuse(caseFile *cards.Hand, accuser *player.Player, suspect, weapon, room string) (bool, error) {
	suspectCard, err := cards.New(suspect, cards.CategorySuspect)
	if err != nil {
		return false, err
	}
	weaponCard, err := cards.New(weapon, cards.CategoryWeapon)
	if err != nil {
		return false, err
	}
	roomCard, err := cards.New(room, cards.CategoryRoom)
	if err != nil {
		return false, err
	}

	accuser.HasMadeAccusation = true
	return caseFile.Has(suspectCard) &&
		caseFile.Has(weaponCard) &&
		caseFile.Has(roomCard), nil
}
