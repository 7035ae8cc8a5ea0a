package ui

import "context"

// Prompter defines the interface for user interactions
type Prompter interface {
	// ShowMessage displays a message to the user
	ShowMessage(message string)

	// AskYesNo asks a y/n question; anything other than "y"/"yes" is no
	AskYesNo(ctx context.Context, prompt string) (bool, error)

	// AskInt asks for an integer no smaller than least, prompting again on invalid input
	AskInt(ctx context.Context, prompt string, least int) (int, error)

	// AskString asks for free text, returning def for an empty answer
	AskString(ctx context.Context, prompt, def string) (string, error)
}
