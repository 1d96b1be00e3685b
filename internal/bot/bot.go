package bot

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"clueless/internal/actions"
	"clueless/internal/cards"
	"clueless/internal/events"
	"clueless/internal/session"
)

// Bot drives one seat through the public session API, the same surface a
// remote participant uses. It keeps a simple elimination grid: every card
// it has seen in a hand cannot be in the case file, and once a category is
// down to one candidate the bot knows that part of the solution.
type Bot struct {
	Name string
	ID   int

	log *logrus.Logger
	rng *rand.Rand

	seen           map[string]bool // card name -> known to be in some hand
	solved         map[string]bool // card name -> known to be in the case file
	lastSuggestion []string
	handCounted    bool
}

// New creates a bot for the given participant id.
func New(name string, id int, log *logrus.Logger, rng *rand.Rand) *Bot {
	return &Bot{
		Name:   name,
		ID:     id,
		log:    log,
		rng:    rng,
		seen:   make(map[string]bool),
		solved: make(map[string]bool),
	}
}

// HandleEvent feeds game events into the bot's knowledge grid.
func (b *Bot) HandleEvent(e events.Event) {
	switch ev := e.(type) {
	case events.SuggestionEvent:
		if ev.PlayerName == b.Name {
			b.lastSuggestion = []string{ev.Suspect, ev.Weapon, ev.Room}
		}
	case events.DisprovalEvent:
		// Only the suggester sees the shown cards.
		if ev.SuggesterName == b.Name {
			for _, name := range ev.Cards {
				b.note(name)
			}
		}
	case events.NoDisprovalEvent:
		// Nobody could disprove the bot's own suggestion: each suggested
		// card not in its hand must be in the case file.
		if ev.SuggesterName == b.Name {
			for _, name := range b.lastSuggestion {
				if !b.seen[name] {
					b.solved[name] = true
					b.log.Debugf("[%s] deduced %s is in the case file", b.Name, name)
				}
			}
		}
	}
}

func (b *Bot) note(name string) {
	if !b.seen[name] {
		b.seen[name] = true
		b.log.Debugf("[%s] learned %s is held by a player", b.Name, name)
	}
}

// TakeTurn plays out one full turn against the session: accuse when the
// solution is known, otherwise move (into a room when possible) and suggest
// from it. The caller advances the turn afterwards.
func (b *Bot) TakeTurn(sess *session.Session) {
	b.countOwnHand(sess)

	for {
		menu := sess.ValidActions()
		if len(menu) == 0 {
			return
		}

		if suspect, weapon, room, ok := b.solution(); ok && b.offered(menu, actions.KindAccusation) {
			sess.HandleAccusation(suspect, weapon, room)
			return
		}

		if b.offered(menu, actions.KindMove) {
			if dest, ok := b.chooseMove(sess.ValidMoves(b.ID)); ok {
				sess.HandleMove(b.ID, dest)
				continue
			}
			// Boxed in (every neighboring hallway occupied): nothing left
			// to do this turn.
			return
		}

		if b.offered(menu, actions.KindSuggestion) {
			p := sess.PlayerByID(b.ID)
			if p != nil && p.Location != nil && p.Location.IsRoom() {
				suspect := b.pickUnknown(cards.CategorySuspect)
				weapon := b.pickUnknown(cards.CategoryWeapon)
				sess.HandleSuggestion(b.ID, suspect, weapon, p.Location.Name())
			}
			return
		}
		return
	}
}

// countOwnHand folds the bot's dealt cards into the grid once.
func (b *Bot) countOwnHand(sess *session.Session) {
	if b.handCounted {
		return
	}
	p := sess.PlayerByID(b.ID)
	if p == nil {
		return
	}
	for _, c := range p.Hand.Cards() {
		b.note(c.Name())
	}
	b.handCounted = true
}

func (b *Bot) offered(menu []actions.Kind, k actions.Kind) bool {
	for _, m := range menu {
		if m == k {
			return true
		}
	}
	return false
}

// chooseMove prefers rooms whose card is still a solution candidate, then
// any room, then any legal destination.
func (b *Bot) chooseMove(valid []string) (string, bool) {
	if len(valid) == 0 {
		return "", false
	}
	var unknownRooms, rooms []string
	for _, name := range valid {
		if b.isRoom(name) {
			rooms = append(rooms, name)
			if !b.seen[name] && !b.solved[name] {
				unknownRooms = append(unknownRooms, name)
			}
		}
	}
	if len(unknownRooms) > 0 {
		return unknownRooms[b.rng.Intn(len(unknownRooms))], true
	}
	if len(rooms) > 0 {
		return rooms[b.rng.Intn(len(rooms))], true
	}
	return valid[b.rng.Intn(len(valid))], true
}

func (b *Bot) isRoom(name string) bool {
	for _, r := range cards.Rooms {
		if r == name {
			return true
		}
	}
	return false
}

// pickUnknown returns a random still-possible card name from a category,
// falling back to any card when everything is accounted for.
func (b *Bot) pickUnknown(cat cards.Category) string {
	if name, ok := b.knownSolution(cat); ok {
		return name
	}
	unknowns := b.Unknowns(cat)
	if len(unknowns) > 0 {
		return unknowns[b.rng.Intn(len(unknowns))]
	}
	all := cards.Names(cat)
	return all[b.rng.Intn(len(all))]
}

// Unknowns lists a category's remaining solution candidates. Exposed for
// the CLI notes table.
func (b *Bot) Unknowns(cat cards.Category) []string {
	var out []string
	for _, name := range cards.Names(cat) {
		if !b.seen[name] {
			out = append(out, name)
		}
	}
	return out
}

func (b *Bot) knownSolution(cat cards.Category) (string, bool) {
	for _, name := range cards.Names(cat) {
		if b.solved[name] {
			return name, true
		}
	}
	if unknowns := b.Unknowns(cat); len(unknowns) == 1 {
		return unknowns[0], true
	}
	return "", false
}

// solution returns the full accusation when every category is pinned down.
func (b *Bot) solution() (suspect, weapon, room string, ok bool) {
	suspect, okS := b.knownSolution(cards.CategorySuspect)
	weapon, okW := b.knownSolution(cards.CategoryWeapon)
	room, okR := b.knownSolution(cards.CategoryRoom)
	return suspect, weapon, room, okS && okW && okR
}
