package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var errNoSecret = errors.New("no secret key: pass --secret, set IDENTITY_SECRET or run interactively")

// readSecret returns the flag or environment value if set, otherwise prompts
// on the terminal without echo.
func readSecret(value string, stdin *os.File, prompt io.Writer) (string, error) {
	if value != "" {
		return value, nil
	}

	fd := int(stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errNoSecret
	}

	fmt.Fprint(prompt, "Secret key (S...): ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("could not read secret: %w", err)
	}

	secret := strings.TrimSpace(string(raw))
	if secret == "" {
		return "", errNoSecret
	}
	return secret, nil
}
