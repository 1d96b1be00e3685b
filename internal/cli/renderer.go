package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"clueless/internal/bot"
	"clueless/internal/cards"
	"clueless/internal/events"
	"clueless/internal/session"
)

// C is the semantic color palette for terminal output.
var C = struct {
	Yes, No, Info, Warn, Header, Prompt *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
}

// CharacterColors maps each suspect to their board color.
var CharacterColors = map[string]*color.Color{
	"Miss Scarlett":   color.New(color.FgRed),
	"Colonel Mustard": color.New(color.FgYellow),
	"Mrs. White":      color.New(color.FgWhite),
	"Mr. Green":       color.New(color.FgGreen),
	"Mrs. Peacock":    color.New(color.FgBlue),
	"Professor Plum":  color.New(color.FgMagenta),
}

// Colorize renders a character name in its color, other names plain.
func Colorize(name string) string {
	if c, ok := CharacterColors[name]; ok {
		return c.Sprint(name)
	}
	return name
}

// Renderer listens on a session's event bus and narrates the game.
type Renderer struct{}

func (r *Renderer) HandleEvent(e events.Event) {
	switch ev := e.(type) {
	case events.PlayerJoinedEvent:
		C.Info.Printf("%s joins as %s\n", ev.PlayerName, Colorize(ev.Character))
	case events.PlayerLeftEvent:
		C.Warn.Printf("%s (%s) leaves the game\n", ev.PlayerName, Colorize(ev.Character))
	case events.GameStartedEvent:
		var parts []string
		for _, character := range ev.TurnOrder {
			parts = append(parts, Colorize(character))
		}
		C.Header.Printf("\n--- Game started. Turn order: %s ---\n", strings.Join(parts, ", "))
	case events.TurnStartEvent:
		C.Header.Printf("\n--- %s's turn (%s) ---\n", ev.PlayerName, Colorize(ev.Character))
	case events.MoveEvent:
		C.Info.Printf("%s moves from %s to %s\n", ev.PlayerName, ev.From, ev.To)
	case events.SuggestionEvent:
		C.Info.Printf("%s suggests: %s with the %s in the %s\n",
			ev.PlayerName, Colorize(ev.Suspect), ev.Weapon, ev.Room)
	case events.DisprovalEvent:
		C.Info.Printf("-> %s shows a card to %s\n", ev.DisproverName, ev.SuggesterName)
	case events.NoDisprovalEvent:
		C.Info.Println("-> No player could disprove the suggestion")
	case events.AccusationEvent:
		C.Warn.Printf("%s ACCUSES: %s with the %s in the %s\n",
			ev.PlayerName, Colorize(ev.Suspect), ev.Weapon, ev.Room)
	case events.EliminationEvent:
		C.No.Printf("The accusation is wrong. %s is eliminated.\n", ev.PlayerName)
	case events.GameOverEvent:
		C.Header.Println("\n--- GAME OVER ---")
		C.Info.Printf("The case file held: %s\n", strings.Join(ev.Solution, ", "))
		if ev.Winner != "" {
			C.Yes.Printf("Winner: %s\n", ev.Winner)
		} else {
			C.Warn.Println("Nobody solved the case.")
		}
	}
}

// RenderSeating prints the seating table for a session.
func RenderSeating(sess *session.Session) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Seating")
	t.AppendHeader(table.Row{"Character", "Player", "Location"})
	for _, p := range sess.Players() {
		loc := "-"
		if p.Location != nil {
			loc = p.Location.Name()
		}
		t.AppendRow(table.Row{Colorize(p.Character), p.Name, loc})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.Render()
}

// RenderNotes prints a bot's remaining solution candidates per category.
func RenderNotes(b *bot.Bot) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("%s's remaining candidates", b.Name))
	t.AppendHeader(table.Row{"Category", "Candidates"})
	for _, cat := range cards.Categories {
		t.AppendRow(table.Row{cat.String(), strings.Join(b.Unknowns(cat), ", ")})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
