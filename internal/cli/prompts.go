package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"
)

func (c *CLI) promptForString(prompt string) string {
	for {
		C.Prompt.Print(prompt)
		input, err := c.line.Prompt("")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				C.Info.Println("\nGoodbye!")
				os.Exit(0)
			}
			c.log.Fatalf("Error reading line: %v", err)
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.line.AppendHistory(trimmed)
			return trimmed
		}
	}
}

func (c *CLI) promptForInt(prompt string, min, max int) int {
	for {
		input := c.promptForString(prompt)
		num, err := strconv.Atoi(input)
		if err != nil || num < min || num > max {
			C.Warn.Printf("Invalid input. Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return num
	}
}

func (c *CLI) promptForSelection(prompt string, options []string) string {
	for {
		C.Header.Println("\n" + prompt)
		for i, opt := range options {
			fmt.Printf(" %2d: %s\n", i+1, Colorize(opt))
		}

		input := c.promptForString("Enter number or name: ")
		if num, err := strconv.Atoi(input); err == nil && num >= 1 && num <= len(options) {
			return options[num-1]
		}
		for _, opt := range options {
			if strings.EqualFold(opt, input) {
				return opt
			}
		}
		C.Warn.Println("Invalid selection.")
	}
}
