package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"clueless/internal/actions"
	"clueless/internal/bot"
	"clueless/internal/cards"
	"clueless/internal/config"
	"clueless/internal/session"
)

// CLI seats a table and plays games against the session API from the
// terminal.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
}

func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{log: log, line: line}
}

// Run dispatches the command line.
func (c *CLI) Run(args []string, opts *config.Options, rng *rand.Rand) error {
	defer c.line.Close()
	if len(args) < 1 {
		c.printUsage()
		return errors.New("no command provided")
	}

	switch args[0] {
	case "play":
		if len(args) != 3 {
			c.printUsage()
			return errors.New("invalid arguments for 'play' command")
		}
		humans, _ := strconv.Atoi(args[1])
		bots, _ := strconv.Atoi(args[2])
		return c.runGame(opts, rng, humans, bots)
	case "sim":
		if len(args) != 2 {
			c.printUsage()
			return errors.New("invalid arguments for 'sim' command")
		}
		bots, _ := strconv.Atoi(args[1])
		return c.runGame(opts, rng, 0, bots)
	default:
		c.printUsage()
		return fmt.Errorf("unknown command '%s'", args[0])
	}
}

func (c *CLI) printUsage() {
	fmt.Println(C.Header.Sprint("\n--- Clue-Less ---"))
	fmt.Println("Usage:")
	fmt.Println(C.Prompt.Sprint("  clueless play <humans> <bots>"))
	fmt.Println("    Seat a table of humans and bots and play a game.")
	fmt.Println(C.Prompt.Sprint("  clueless sim <bots>"))
	fmt.Println("    Run an all-bot game to completion.")
	fmt.Println("\nFlags:")
	fmt.Println("  -loglevel debug    Trace dealing and bot deduction.")
	fmt.Println("  -config file.json  Load runtime options.")
}

func (c *CLI) runGame(opts *config.Options, rng *rand.Rand, humans, numBots int) error {
	total := humans + numBots
	if total < session.MinPlayers || total > session.MaxPlayers || total%session.MinPlayers != 0 {
		return fmt.Errorf("player count must be %d or %d, got %d",
			session.MinPlayers, session.MaxPlayers, total)
	}

	registry := session.NewRegistry(c.log, rng)
	sess := registry.Create()
	sess.Events().Subscribe(&Renderer{})

	// Humans take the low ids and may pick their character.
	nextID := 1
	for i := 0; i < humans; i++ {
		name := c.promptForString(fmt.Sprintf("Enter name for player %d: ", i+1))
		if err := sess.AddPlayer(name, nextID); err != nil {
			return err
		}
		c.offerCharacter(sess, nextID)
		nextID++
	}

	botsByID := make(map[int]*bot.Bot)
	for i := 0; i < numBots; i++ {
		name := fmt.Sprintf("Bot %d", i+1)
		if err := sess.AddPlayer(name, nextID); err != nil {
			return err
		}
		b := bot.New(name, nextID, c.log, rand.New(rand.NewSource(rng.Int63())))
		sess.Events().Subscribe(b)
		botsByID[nextID] = b
		nextID++
	}

	if err := sess.StartGame(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	RenderSeating(sess)

	delay := time.Duration(opts.BotDelayMS) * time.Millisecond
	for i := 0; sess.Status() == session.StatusInProgress && i < opts.TurnLimit; i++ {
		cur := sess.CurrentPlayer()
		if cur == nil {
			break
		}
		if b, ok := botsByID[cur.ID]; ok {
			b.TakeTurn(sess)
			time.Sleep(delay)
		} else {
			c.humanTurn(sess, cur.ID)
		}
		if sess.Status() == session.StatusInProgress {
			sess.EndTurn()
		}
	}

	if winner := sess.Winner(); winner != nil {
		if b, ok := botsByID[winner.ID]; ok {
			RenderNotes(b)
		}
	}
	return nil
}

// offerCharacter lets a freshly seated human swap to a free character.
func (c *CLI) offerCharacter(sess *session.Session, id int) {
	taken := make(map[string]bool)
	for _, p := range sess.Players() {
		if p.ID != id {
			taken[p.Character] = true
		}
	}
	var free []string
	for _, character := range cards.Suspects {
		if !taken[character] {
			free = append(free, character)
		}
	}
	choice := c.promptForSelection("Choose your character:", free)
	if !sess.SetCharacter(id, choice) {
		C.Warn.Printf("Could not claim %s; keeping the assigned seat.\n", choice)
	}
}

// humanTurn runs one interactive turn until the player ends it or runs out
// of actions.
func (c *CLI) humanTurn(sess *session.Session, id int) {
	for {
		menu := sess.ValidActions()
		if len(menu) == 0 {
			C.Info.Println("No actions left this turn.")
			return
		}

		options := make([]string, 0, len(menu)+1)
		for _, k := range menu {
			options = append(options, k.String())
		}
		options = append(options, "end turn")

		switch c.promptForSelection("Choose an action:", options) {
		case actions.KindMove.String():
			c.handleMove(sess, id)
		case actions.KindSuggestion.String():
			c.handleSuggestion(sess, id)
		case actions.KindAccusation.String():
			c.handleAccusation(sess)
			return
		case "end turn":
			return
		}

		if sess.Status() != session.StatusInProgress {
			return
		}
	}
}

func (c *CLI) handleMove(sess *session.Session, id int) {
	valid := sess.ValidMoves(id)
	if len(valid) == 0 {
		C.Warn.Println("Every destination is blocked.")
		return
	}
	dest := c.promptForSelection("Move to:", valid)
	ok, err := sess.HandleMove(id, dest)
	if err != nil {
		C.Warn.Printf("Move failed: %v\n", err)
	} else if !ok {
		C.Warn.Println("That space cannot be entered.")
	}
}

func (c *CLI) handleSuggestion(sess *session.Session, id int) {
	p := sess.PlayerByID(id)
	if p == nil || p.Location == nil || !p.Location.IsRoom() {
		C.Warn.Println("You must be in a room to make a suggestion.")
		return
	}
	room := p.Location.Name()
	suspect := c.promptForSelection("Suggest a suspect:", cards.Suspects)
	weapon := c.promptForSelection("Suggest a weapon:", cards.Weapons)

	disprover, shown, err := sess.HandleSuggestion(id, suspect, weapon, room)
	if err != nil {
		C.Warn.Printf("Suggestion failed: %v\n", err)
		return
	}
	if disprover != nil {
		// Shown cards are private to the suggester.
		C.Info.Printf("%s privately shows you: %s\n", disprover.Name, strings.Join(shown, ", "))
	}
}

func (c *CLI) handleAccusation(sess *session.Session) {
	C.Warn.Println("An accusation is final: guess wrong and you are out.")
	suspect := c.promptForSelection("Accuse a suspect:", cards.Suspects)
	weapon := c.promptForSelection("Accuse a weapon:", cards.Weapons)
	room := c.promptForSelection("Accuse a room:", cards.Rooms)

	if _, err := sess.HandleAccusation(suspect, weapon, room); err != nil {
		C.Warn.Printf("Accusation failed: %v\n", err)
	}
}
