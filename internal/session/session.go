package session

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"clueless/internal/actions"
	"clueless/internal/board"
	"clueless/internal/cards"
	"clueless/internal/events"
	"clueless/internal/player"
	"clueless/internal/turn"
)

// Status is the session lifecycle state.
type Status int

const (
	StatusOpen Status = iota
	StatusInitializing
	StatusInProgress
	StatusGameOver
)

func (s Status) String() string {
	return []string{"open", "initializing", "in progress", "game over"}[s]
}

const (
	// MinPlayers is the fewest players a game can start with; the player
	// count must also be a multiple of it.
	MinPlayers = 3
	// MaxPlayers matches the six suspect slots.
	MaxPlayers = 6
	// MinSurvivors is the fewest active, non-eliminated players a running
	// game tolerates before ending with no winner.
	MinSurvivors = 2
)

// InvalidStateError reports an operation attempted in the wrong lifecycle
// state.
type InvalidStateError struct {
	Op     string
	Status Status
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s while game is %s", e.Op, e.Status)
}

// InsufficientPlayersError reports a start attempt with an illegal player
// count.
type InsufficientPlayersError struct {
	Count int
}

func (e *InsufficientPlayersError) Error() string {
	return fmt.Sprintf("need at least %d players and a multiple of %d to start, have %d",
		MinPlayers, MinPlayers, e.Count)
}

// Session is the authoritative state machine for one game. Every exported
// mutator holds the session mutex for its whole read-modify-write sequence,
// so at most one action mutates the game at a time; read queries take the
// read lock. Sessions share nothing, so the registry map is the only state
// visible across game IDs.
type Session struct {
	mu  sync.RWMutex
	id  uuid.UUID
	log *logrus.Logger
	rng *rand.Rand

	board    *board.Board
	deck     *cards.Deck
	caseFile *cards.Hand
	order    *turn.Order
	bus      *events.Manager

	status Status
	winner *player.Player
}

// New creates an open session with a fresh board, full deck and empty seat
// arena.
func New(id uuid.UUID, log *logrus.Logger, rng *rand.Rand) *Session {
	return &Session{
		id:       id,
		log:      log,
		rng:      rng,
		board:    board.New(),
		deck:     cards.NewDeck(rng),
		caseFile: cards.NewHand(),
		order:    turn.NewOrder(rng),
		bus:      events.NewManager(),
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

// Events exposes the session bus for subscribing renderers and bots.
// Listeners run under the session lock and must not call back in.
func (s *Session) Events() *events.Manager { return s.bus }

// AddPlayer seats a participant on the first free suspect slot.
func (s *Session) AddPlayer(name string, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusOpen {
		return &InvalidStateError{Op: "add player", Status: s.status}
	}
	p := s.order.Seat(name, id)
	if p == nil {
		return fmt.Errorf("no seat available for player %d", id)
	}
	s.log.WithFields(logrus.Fields{
		"game":      s.id,
		"player":    name,
		"character": p.Character,
	}).Info("player seated")
	s.bus.Publish(events.PlayerJoinedEvent{PlayerName: name, Character: p.Character})
	return nil
}

// SetCharacter rebinds a seated participant to the requested character.
// Returns false when the slot belongs to someone else, the character is
// unknown, or the game has started.
func (s *Session) SetCharacter(id int, character string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusOpen {
		return false
	}
	ok := s.order.SeatCharacter(id, character)
	if ok {
		s.log.WithFields(logrus.Fields{"game": s.id, "player": id, "character": character}).
			Debug("character selected")
	}
	return ok
}

// RemovePlayer handles a participant leaving. In the lobby the seat is
// freed; mid-game the slot goes inactive (the rotation skips it, the dealt
// hand still disproves) and the game may die out below the survivor floor.
func (s *Session) RemovePlayer(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.order.ByID(id)
	if p == nil {
		return false
	}
	name, character := p.Name, p.Character

	switch s.status {
	case StatusOpen:
		s.order.Unseat(id)
	case StatusInProgress:
		wasCurrent := s.order.Current() == p
		s.order.Remove(id)
		if wasCurrent {
			s.advanceLocked()
		}
		if s.order.SurvivorCount() < MinSurvivors {
			s.finishLocked(nil)
		}
	default:
		return false
	}

	s.log.WithFields(logrus.Fields{"game": s.id, "player": name}).Info("player removed")
	s.bus.Publish(events.PlayerLeftEvent{PlayerName: name, Character: character})
	return true
}

// StartGame moves the session Open -> Initializing -> InProgress: case file
// drawn, hands dealt, weapon tokens scattered, turn order randomized, first
// turn begun.
func (s *Session) StartGame() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusOpen {
		return &InvalidStateError{Op: "start game", Status: s.status}
	}
	count := s.order.ActiveCount()
	if count < MinPlayers || count%MinPlayers != 0 {
		return &InsufficientPlayersError{Count: count}
	}

	s.status = StatusInitializing
	s.createCaseFile()
	s.dealCards()
	s.placeTokens()
	s.order.Randomize()
	first := s.order.Begin()
	s.status = StatusInProgress

	rotation := s.turnOrderLocked()
	s.log.WithFields(logrus.Fields{"game": s.id, "players": count, "order": rotation}).
		Info("game started")
	s.bus.Publish(events.GameStartedEvent{TurnOrder: rotation})
	s.bus.Publish(events.TurnStartEvent{PlayerName: first.Name, Character: first.Character})
	return nil
}

// createCaseFile draws one card of each category, uniformly, into the hidden
// case file.
func (s *Session) createCaseFile() {
	s.deck.Shuffle()
	for _, cat := range cards.Categories {
		c, ok := s.deck.RemoveFirstOf(cat)
		if !ok {
			// The deck always holds all three categories at this point.
			panic(fmt.Sprintf("deck has no %s card", cat))
		}
		s.caseFile.Add(c)
	}
	s.log.WithField("game", s.id).Debugf("case file sealed: %v", s.caseFile.Cards())
}

// dealCards distributes every remaining card round-robin over the active
// players in rotation order until the deck is empty; the final pass may be
// partial.
func (s *Session) dealCards() {
	s.deck.Shuffle()
	players := s.order.Players(false)
	for i := 0; !s.deck.Empty(); i++ {
		c, _ := s.deck.Deal()
		players[i%len(players)].Hand.Add(c)
	}
	for _, p := range players {
		s.log.WithFields(logrus.Fields{"game": s.id, "player": p.Name}).
			Debugf("dealt %d cards", p.Hand.Len())
	}
}

// placeTokens puts each active player's token on their character's starting
// hallway and scatters one weapon token into a random room apiece.
func (s *Session) placeTokens() {
	for _, p := range s.order.Players(false) {
		start, ok := s.board.StartingSpace(p.Character)
		if !ok {
			panic(fmt.Sprintf("no starting space for %s", p.Character))
		}
		p.Relocate(start)
	}

	var rooms []*board.Space
	for _, sp := range s.board.Spaces() {
		if sp.IsRoom() {
			rooms = append(rooms, sp)
		}
	}
	for _, name := range cards.Weapons {
		room := rooms[s.rng.Intn(len(rooms))]
		room.AddWeapon(cards.MustNew(name, cards.CategoryWeapon))
	}
}

// HandleMove moves the acting player to the named space. Stale-turn
// requests and destinations outside the action menu return false.
func (s *Session) HandleMove(playerID int, destName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress {
		return false, &InvalidStateError{Op: "move", Status: s.status}
	}
	p := s.order.Current()
	if p == nil || p.ID != playerID || p.Eliminated {
		return false, nil
	}
	if p.HasMoved || p.HasMadeAccusation {
		return false, nil
	}

	dest, _ := s.board.Space(destName)
	from := p.Location
	ok, err := actions.Move(p, dest)
	if err != nil || !ok {
		return false, err
	}
	s.log.WithFields(logrus.Fields{"game": s.id, "player": p.Name, "to": dest.Name()}).
		Debug("player moved")
	s.bus.Publish(events.MoveEvent{PlayerName: p.Name, From: from.Name(), To: dest.Name()})
	return true, nil
}

// HandleSuggestion resolves a suggestion by the acting player and returns
// the disprover (nil if none) with the names of every matching card shown.
func (s *Session) HandleSuggestion(playerID int, suspect, weapon, room string) (*player.Player, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress {
		return nil, nil, &InvalidStateError{Op: "suggest", Status: s.status}
	}
	p := s.order.Current()
	if p == nil || p.ID != playerID {
		return nil, nil, fmt.Errorf("not player %d's turn", playerID)
	}
	if p.Eliminated || p.HasMadeSuggestion || !(p.HasEnteredRoom || p.HasMoved) {
		return nil, nil, fmt.Errorf("%s may not suggest now", p.Character)
	}

	disprover, matches, err := actions.Suggest(s.order, s.board, p, suspect, weapon, room)
	if err != nil {
		return nil, nil, err
	}

	s.bus.Publish(events.SuggestionEvent{
		PlayerName: p.Name, Suspect: suspect, Weapon: weapon, Room: room,
	})
	var names []string
	for _, c := range matches {
		names = append(names, c.Name())
	}
	if disprover != nil {
		s.log.WithFields(logrus.Fields{
			"game": s.id, "suggester": p.Name, "disprover": disprover.Name,
		}).Debug("suggestion disproved")
		s.bus.Publish(events.DisprovalEvent{
			SuggesterName: p.Name, DisproverName: disprover.Name, Cards: names,
		})
	} else {
		s.bus.Publish(events.NoDisprovalEvent{SuggesterName: p.Name})
	}
	return disprover, names, nil
}

// HandleAccusation checks the acting player's accusation against the case
// file. A correct accusation wins and ends the game; a wrong one
// permanently eliminates the accuser and may end the game with no winner.
func (s *Session) HandleAccusation(suspect, weapon, room string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress {
		return false, &InvalidStateError{Op: "accuse", Status: s.status}
	}
	p := s.order.Current()
	if p == nil {
		return false, fmt.Errorf("no player is acting")
	}
	if p.Eliminated || p.HasMadeAccusation {
		return false, fmt.Errorf("%s may not accuse now", p.Character)
	}

	correct, err := actions.Accuse(s.caseFile, p, suspect, weapon, room)
	if err != nil {
		return false, err
	}
	s.bus.Publish(events.AccusationEvent{
		PlayerName: p.Name, Suspect: suspect, Weapon: weapon, Room: room, Correct: correct,
	})

	if correct {
		s.log.WithFields(logrus.Fields{"game": s.id, "winner": p.Name}).Info("accusation correct")
		s.finishLocked(p)
		return true, nil
	}

	p.Eliminated = true
	s.log.WithFields(logrus.Fields{"game": s.id, "player": p.Name}).Info("player eliminated")
	s.bus.Publish(events.EliminationEvent{PlayerName: p.Name})
	if s.order.SurvivorCount() < MinSurvivors {
		s.finishLocked(nil)
	}
	return false, nil
}

// EndTurn hands the turn to the next active player.
func (s *Session) EndTurn() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress {
		return
	}
	s.advanceLocked()
}

func (s *Session) advanceLocked() {
	next := s.order.Advance()
	if next == nil {
		return
	}
	s.bus.Publish(events.TurnStartEvent{PlayerName: next.Name, Character: next.Character})
}

// finishLocked moves the session to GameOver. winner may be nil when the
// game dies out with no correct accusation.
func (s *Session) finishLocked(winner *player.Player) {
	s.winner = winner
	s.status = StatusGameOver

	var solution []string
	for _, c := range s.caseFile.Cards() {
		solution = append(solution, c.Name())
	}
	ev := events.GameOverEvent{Solution: solution}
	if winner != nil {
		ev.Winner = winner.Name
	}
	s.log.WithFields(logrus.Fields{"game": s.id, "winner": ev.Winner}).Info("game over")
	s.bus.Publish(ev)
}

// ValidActions returns the acting player's action menu.
func (s *Session) ValidActions() []actions.Kind {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.status != StatusInProgress {
		return nil
	}
	return actions.ValidActions(s.order.Current())
}

// ValidMoves returns the destinations open to the given player. Only the
// acting player gets a non-empty answer; stale-turn queries are rejected.
func (s *Session) ValidMoves(playerID int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.status != StatusInProgress {
		return nil
	}
	p := s.order.Current()
	if p == nil || p.ID != playerID {
		return nil
	}
	var names []string
	for _, sp := range p.ValidMoves() {
		names = append(names, sp.Name())
	}
	return names
}

// TurnOrder lists character names of active players in rotation order.
func (s *Session) TurnOrder() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.turnOrderLocked()
}

func (s *Session) turnOrderLocked() []string {
	var out []string
	for _, p := range s.order.Players(false) {
		out = append(out, p.Character)
	}
	return out
}

// Status returns the session lifecycle state.
func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Winner returns the winning player, or nil.
func (s *Session) Winner() *player.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.winner
}

// CurrentPlayer returns the player whose turn it is.
func (s *Session) CurrentPlayer() *player.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.order.Current()
}

// Players returns the active players in rotation order.
func (s *Session) Players() []*player.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.order.Players(false)
}

// PlayerByID looks up a seated player.
func (s *Session) PlayerByID(id int) *player.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.order.ByID(id)
}

// Board exposes the session's board for read-only rendering.
func (s *Session) Board() *board.Board { return s.board }
