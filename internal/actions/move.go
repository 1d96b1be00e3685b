package actions

import (
	"clueless/internal/board"
	"clueless/internal/player"
)

// InvalidDestinationError reports a move with no destination at all. A
// reachable-but-blocked destination is an ordinary false return, not an
// error.
type InvalidDestinationError struct{}

func (e *InvalidDestinationError) Error() string {
	return "move has no destination"
}

// ValidActions computes the action menu for a player's current turn state.
// Eliminated players get an empty menu; so does a player who has exhausted
// all three actions, which is what ends a turn's useful choices.
func ValidActions(p *player.Player) []Kind {
	if p == nil || p.Eliminated {
		return nil
	}
	var out []Kind
	if (p.HasEnteredRoom || p.HasMoved) && !p.HasMadeSuggestion {
		out = append(out, KindSuggestion)
	}
	if !p.HasMadeAccusation {
		out = append(out, KindAccusation)
	}
	if !p.HasMoved && !p.HasMadeAccusation {
		out = append(out, KindMove)
	}
	return out
}

// Move relocates p to dest if dest is reachable from p's current space and
// can admit another occupant. Reachable means adjacent, or the secret
// passage of the corner room p stands in.
func Move(p *player.Player, dest *board.Space) (bool, error) {
	if dest == nil {
		return false, &InvalidDestinationError{}
	}
	reachable := false
	for _, sp := range p.Location.Adjacent() {
		if sp == dest {
			reachable = true
			break
		}
	}
	if !reachable && p.Location.Passage() == dest {
		reachable = true
	}
	if !reachable {
		return false, nil
	}
	if !p.Relocate(dest) {
		// Hallway already holds its one occupant.
		return false, nil
	}
	if dest.IsRoom() {
		p.HasEnteredRoom = true
	}
	p.HasMoved = true
	return true, nil
}
