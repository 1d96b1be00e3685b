package session

import (
	"io"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clueless/internal/actions"
	"clueless/internal/cards"
	"clueless/internal/events"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestSession seats n players named p1..pn with ids 1..n.
func newTestSession(t *testing.T, n int, seed int64) *Session {
	t.Helper()
	s := New(uuid.New(), testLogger(), rand.New(rand.NewSource(seed)))
	names := []string{"p1", "p2", "p3", "p4", "p5", "p6"}
	for i := 0; i < n; i++ {
		require.NoError(t, s.AddPlayer(names[i], i+1))
	}
	return s
}

// solveByElimination reconstructs the case file from the outside: the three
// vocabulary cards no player holds must be the solution.
func solveByElimination(t *testing.T, s *Session, ids []int) (suspect, weapon, room string) {
	t.Helper()
	out := make(map[cards.Category]string)
	for _, cat := range cards.Categories {
		for _, name := range cards.Names(cat) {
			c := cards.MustNew(name, cat)
			held := false
			for _, id := range ids {
				if s.PlayerByID(id).Hand.Has(c) {
					held = true
					break
				}
			}
			if !held {
				require.Empty(t, out[cat], "more than one %s card is unaccounted for", cat)
				out[cat] = name
			}
		}
		require.NotEmpty(t, out[cat], "every %s card was dealt; none left for the case file", cat)
	}
	return out[cards.CategorySuspect], out[cards.CategoryWeapon], out[cards.CategoryRoom]
}

// recorder captures every published event for assertions.
type recorder struct {
	events []events.Event
}

func (r *recorder) HandleEvent(e events.Event) { r.events = append(r.events, e) }

func (r *recorder) last() events.Event {
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

func TestStartGamePlayerCounts(t *testing.T) {
	t.Run("three players start", func(t *testing.T) {
		s := newTestSession(t, 3, 1)
		require.NoError(t, s.StartGame())
		assert.Equal(t, StatusInProgress, s.Status())
	})

	t.Run("six players start", func(t *testing.T) {
		s := newTestSession(t, 6, 1)
		require.NoError(t, s.StartGame())
		assert.Equal(t, StatusInProgress, s.Status())
	})

	t.Run("counts not a multiple of three are rejected", func(t *testing.T) {
		for _, n := range []int{2, 4, 5} {
			s := newTestSession(t, n, 1)
			err := s.StartGame()
			var insufficient *InsufficientPlayersError
			require.ErrorAs(t, err, &insufficient)
			assert.Equal(t, n, insufficient.Count)
			assert.Equal(t, StatusOpen, s.Status())
		}
	})

	t.Run("starting twice is a state error", func(t *testing.T) {
		s := newTestSession(t, 3, 1)
		require.NoError(t, s.StartGame())
		var state *InvalidStateError
		assert.ErrorAs(t, s.StartGame(), &state)
	})
}

func TestStartGameDealsEveryCard(t *testing.T) {
	tests := []struct {
		players int
		perHand int
	}{
		{players: 3, perHand: 6},
		{players: 6, perHand: 3},
	}
	for _, tt := range tests {
		s := newTestSession(t, tt.players, 42)
		require.NoError(t, s.StartGame())

		ids := make([]int, tt.players)
		dealt := make(map[string]int)
		for i := range ids {
			ids[i] = i + 1
			p := s.PlayerByID(ids[i])
			require.NotNil(t, p)
			assert.Equal(t, tt.perHand, p.Hand.Len())
			for _, c := range p.Hand.Cards() {
				dealt[c.String()]++
			}
		}
		assert.Len(t, dealt, tt.players*tt.perHand, "no card is dealt twice")

		suspect, weapon, room := solveByElimination(t, s, ids)
		assert.NotEmpty(t, suspect)
		assert.NotEmpty(t, weapon)
		assert.NotEmpty(t, room)
	}
}

func TestStartGamePlacesTokens(t *testing.T) {
	s := newTestSession(t, 3, 7)
	require.NoError(t, s.StartGame())

	for _, p := range s.Players() {
		start, ok := s.Board().StartingSpace(p.Character)
		require.True(t, ok)
		assert.Equal(t, start, p.Location, "%s opens on their home hallway", p.Character)
	}

	tokens := 0
	for _, sp := range s.Board().Spaces() {
		ws := sp.Weapons()
		if len(ws) > 0 {
			assert.True(t, sp.IsRoom(), "weapon tokens only land in rooms")
			tokens += len(ws)
		}
	}
	assert.Equal(t, len(cards.Weapons), tokens)
}

func TestSetCharacter(t *testing.T) {
	s := newTestSession(t, 2, 1)

	t.Run("occupied character is refused", func(t *testing.T) {
		assert.False(t, s.SetCharacter(2, s.PlayerByID(1).Character))
	})

	t.Run("free character is granted", func(t *testing.T) {
		assert.True(t, s.SetCharacter(2, "Mrs. Peacock"))
		assert.Equal(t, "Mrs. Peacock", s.PlayerByID(2).Character)
	})

	t.Run("vacated character becomes available", func(t *testing.T) {
		assert.True(t, s.SetCharacter(1, "Colonel Mustard"))
	})

	t.Run("locked after start", func(t *testing.T) {
		require.NoError(t, s.AddPlayer("p3", 3))
		require.NoError(t, s.StartGame())
		assert.False(t, s.SetCharacter(1, "Professor Plum"))
	})
}

func TestHandleMove(t *testing.T) {
	s := newTestSession(t, 3, 11)
	require.NoError(t, s.StartGame())
	p := s.CurrentPlayer()

	t.Run("stale turn is ignored", func(t *testing.T) {
		staleID := p.ID%3 + 1
		ok, err := s.HandleMove(staleID, "Study")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, s.ValidMoves(staleID))
	})

	t.Run("acting player moves off the starting hallway", func(t *testing.T) {
		moves := s.ValidMoves(p.ID)
		require.NotEmpty(t, moves)
		ok, err := s.HandleMove(p.ID, moves[0])
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, moves[0], p.Location.Name())
		assert.True(t, p.Location.IsRoom(), "hallways only border rooms")
	})

	t.Run("second move in one turn is refused", func(t *testing.T) {
		ok, err := s.HandleMove(p.ID, p.PrevLocation.Name())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("no moves before the game starts", func(t *testing.T) {
		open := newTestSession(t, 3, 11)
		_, err := open.HandleMove(1, "Study")
		var state *InvalidStateError
		assert.ErrorAs(t, err, &state)
	})
}

func TestHandleSuggestion(t *testing.T) {
	s := newTestSession(t, 3, 19)
	require.NoError(t, s.StartGame())
	p := s.CurrentPlayer()

	t.Run("refused before moving", func(t *testing.T) {
		_, _, err := s.HandleSuggestion(p.ID, "Miss Scarlett", "Rope", "Study")
		assert.Error(t, err)
	})

	moves := s.ValidMoves(p.ID)
	require.NotEmpty(t, moves)
	ok, err := s.HandleMove(p.ID, moves[0])
	require.NoError(t, err)
	require.True(t, ok)
	room := p.Location.Name()

	t.Run("wrong participant is refused", func(t *testing.T) {
		_, _, err := s.HandleSuggestion(p.ID%3+1, "Miss Scarlett", "Rope", room)
		assert.Error(t, err)
	})

	t.Run("suggestion resolves from the entered room", func(t *testing.T) {
		rec := &recorder{}
		s.Events().Subscribe(rec)

		disprover, shown, err := s.HandleSuggestion(p.ID, "Miss Scarlett", "Rope", room)
		require.NoError(t, err)
		if disprover != nil {
			assert.NotEmpty(t, shown)
			assert.NotEqual(t, p, disprover)
			_, isDisproval := rec.last().(events.DisprovalEvent)
			assert.True(t, isDisproval)
		} else {
			assert.Empty(t, shown)
			_, isNoDisproval := rec.last().(events.NoDisprovalEvent)
			assert.True(t, isNoDisproval)
		}

		for _, q := range s.Players() {
			if q.Character == "Miss Scarlett" {
				assert.Equal(t, room, q.Location.Name(), "named suspect is dragged to the room")
			}
		}
	})

	t.Run("one suggestion per turn", func(t *testing.T) {
		_, _, err := s.HandleSuggestion(p.ID, "Miss Scarlett", "Rope", room)
		assert.Error(t, err)
	})
}

func TestHandleAccusation(t *testing.T) {
	t.Run("correct accusation wins the game", func(t *testing.T) {
		s := newTestSession(t, 3, 23)
		require.NoError(t, s.StartGame())
		rec := &recorder{}
		s.Events().Subscribe(rec)

		suspect, weapon, room := solveByElimination(t, s, []int{1, 2, 3})
		p := s.CurrentPlayer()

		correct, err := s.HandleAccusation(suspect, weapon, room)
		require.NoError(t, err)
		assert.True(t, correct)
		assert.Equal(t, StatusGameOver, s.Status())
		assert.Equal(t, p, s.Winner())

		over, ok := rec.last().(events.GameOverEvent)
		require.True(t, ok)
		assert.Equal(t, p.Name, over.Winner)
		assert.ElementsMatch(t, []string{suspect, weapon, room}, over.Solution)
	})

	t.Run("wrong accusations eliminate until the game dies out", func(t *testing.T) {
		s := newTestSession(t, 3, 23)
		require.NoError(t, s.StartGame())
		suspect, weapon, room := solveByElimination(t, s, []int{1, 2, 3})

		// A valid triple that cannot be the solution.
		wrongSuspect := ""
		for _, name := range cards.Suspects {
			if name != suspect {
				wrongSuspect = name
				break
			}
		}

		first := s.CurrentPlayer()
		correct, err := s.HandleAccusation(wrongSuspect, weapon, room)
		require.NoError(t, err)
		assert.False(t, correct)
		assert.True(t, first.Eliminated)
		assert.Equal(t, StatusInProgress, s.Status(), "two survivors keep the game alive")

		t.Run("eliminated player may not accuse again", func(t *testing.T) {
			_, err := s.HandleAccusation(suspect, weapon, room)
			assert.Error(t, err)
		})

		s.EndTurn()
		second := s.CurrentPlayer()
		require.NotEqual(t, first, second)

		correct, err = s.HandleAccusation(wrongSuspect, weapon, room)
		require.NoError(t, err)
		assert.False(t, correct)
		assert.Equal(t, StatusGameOver, s.Status(), "one survivor cannot win alone")
		assert.Nil(t, s.Winner())
	})

	t.Run("invalid card names do not spend the accusation", func(t *testing.T) {
		s := newTestSession(t, 3, 23)
		require.NoError(t, s.StartGame())
		p := s.CurrentPlayer()

		_, err := s.HandleAccusation("Miss Scarlett", "Flamethrower", "Study")
		var invalid *cards.InvalidCardError
		assert.ErrorAs(t, err, &invalid)
		assert.False(t, p.HasMadeAccusation)
	})
}

func TestEndTurnRotation(t *testing.T) {
	s := newTestSession(t, 3, 31)
	require.NoError(t, s.StartGame())

	seen := make(map[string]int)
	for i := 0; i < 6; i++ {
		seen[s.CurrentPlayer().Character]++
		s.EndTurn()
	}
	assert.Len(t, seen, 3)
	for character, n := range seen {
		assert.Equal(t, 2, n, "%s acts exactly twice over two full rounds", character)
	}
	assert.Equal(t, s.TurnOrder()[0], s.CurrentPlayer().Character)
}

func TestRemovePlayer(t *testing.T) {
	t.Run("lobby removal frees the seat", func(t *testing.T) {
		s := newTestSession(t, 6, 1)
		require.Error(t, s.AddPlayer("p7", 7), "all six seats are taken")
		require.True(t, s.RemovePlayer(3))
		assert.NoError(t, s.AddPlayer("p7", 7))
	})

	t.Run("removing the acting player advances the turn", func(t *testing.T) {
		s := newTestSession(t, 3, 37)
		require.NoError(t, s.StartGame())

		leaving := s.CurrentPlayer()
		require.True(t, s.RemovePlayer(leaving.ID))
		assert.NotEqual(t, leaving, s.CurrentPlayer())
		assert.Equal(t, StatusInProgress, s.Status())
		assert.Len(t, s.TurnOrder(), 2)
	})

	t.Run("falling below two survivors ends the game", func(t *testing.T) {
		s := newTestSession(t, 3, 37)
		require.NoError(t, s.StartGame())

		require.True(t, s.RemovePlayer(1))
		require.True(t, s.RemovePlayer(2))
		assert.Equal(t, StatusGameOver, s.Status())
		assert.Nil(t, s.Winner())
	})

	t.Run("unknown participant returns false", func(t *testing.T) {
		s := newTestSession(t, 3, 37)
		assert.False(t, s.RemovePlayer(99))
	})
}

func TestValidActionsLifecycle(t *testing.T) {
	s := newTestSession(t, 3, 41)
	assert.Nil(t, s.ValidActions(), "no menu before the game starts")

	require.NoError(t, s.StartGame())
	assert.Equal(t, []actions.Kind{actions.KindAccusation, actions.KindMove}, s.ValidActions(),
		"a fresh turn offers a move or an accusation")

	p := s.CurrentPlayer()
	moves := s.ValidMoves(p.ID)
	require.NotEmpty(t, moves)
	ok, err := s.HandleMove(p.ID, moves[0])
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []actions.Kind{actions.KindSuggestion, actions.KindAccusation}, s.ValidActions(),
		"entering a room trades the move for a suggestion")
}
