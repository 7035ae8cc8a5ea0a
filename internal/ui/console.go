package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"codegen/internal/log"
)

// ConsoleUI implements Prompter on a line-oriented terminal
type ConsoleUI struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewConsoleUI creates a new console-based interactive UI
func NewConsoleUI(in io.Reader, out io.Writer) *ConsoleUI {
	return &ConsoleUI{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ShowMessage displays a message to the user
func (c *ConsoleUI) ShowMessage(message string) {
	fmt.Fprintln(c.out, message)
}

// AskYesNo prompts for a y/n answer
func (c *ConsoleUI) AskYesNo(ctx context.Context, prompt string) (bool, error) {
	answer, err := c.ask(ctx, fmt.Sprintf("%s (y/n): ", prompt))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// AskInt prompts until the user enters an integer no smaller than least
func (c *ConsoleUI) AskInt(ctx context.Context, prompt string, least int) (int, error) {
	for {
		answer, err := c.ask(ctx, fmt.Sprintf("%s: ", prompt))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= least {
			return n, nil
		}
		fmt.Fprintf(c.out, "Please enter a whole number of at least %d.\n", least)
	}
}

// AskString prompts for text, falling back to def when the answer is empty
func (c *ConsoleUI) AskString(ctx context.Context, prompt, def string) (string, error) {
	label := prompt
	if def != "" {
		label = fmt.Sprintf("%s (default: %s)", prompt, def)
	}
	answer, err := c.ask(ctx, label+": ")
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// ask prints prompt and waits for one trimmed line or context cancellation
func (c *ConsoleUI) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	// Create a channel to receive the input
	inputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		if c.scanner.Scan() {
			inputCh <- strings.TrimSpace(c.scanner.Text())
			return
		}
		if err := c.scanner.Err(); err != nil {
			errCh <- err
			return
		}
		errCh <- io.ErrUnexpectedEOF
	}()

	// Wait for either input or context cancellation
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-errCh:
		l := log.L()
		l.Debug().Err(err).Msg("Input closed while waiting for answer")
		return "", fmt.Errorf("failed to read answer: %w", err)
	case answer := <-inputCh:
		return answer, nil
	}
}
