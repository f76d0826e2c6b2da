package client

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// TerminalPasswordPrompt reads the password from stdin without echo. It
// returns nil when stdin is not a terminal, so the app falls back to reading
// the password as a plain input line.
func TerminalPasswordPrompt() PasswordPrompt {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}

	return func(prompt string) (string, error) {
		fmt.Fprint(os.Stderr, prompt)
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(password), nil
	}
}
