// Package prompt implements the numbered-menu selection used by the CLI.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed indicates the operator closed stdin before choosing.
var ErrInputClosed = errors.New("input closed before a choice was made")

// menuWidth is the width of the menu separator lines.
const menuWidth = 60

// Menu prints a numbered menu with a title banner.
func Menu(w io.Writer, title string, items []string) {
	line := strings.Repeat("=", menuWidth)
	fmt.Fprintf(w, "\n%s\n  %s\n%s\n", line, title, line)
	for i, item := range items {
		fmt.Fprintf(w, "  %d. %s\n", i+1, item)
	}
	fmt.Fprintf(w, "%s\n\n", line)
}

// Choose reads a 1-based menu choice from r and returns the 0-based index.
// Invalid input re-prompts; EOF fails with ErrInputClosed.
func Choose(r io.Reader, w io.Writer, max int, label string) (int, error) {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "%s (1-%d): ", label, max)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("reading choice: %w", err)
			}
			return 0, ErrInputClosed
		}

		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(w, "Please enter a number")
			continue
		}
		if choice < 1 || choice > max {
			fmt.Fprintf(w, "Please enter a number between 1 and %d\n", max)
			continue
		}
		return choice - 1, nil
	}
}

// Select shows the menu and reads a choice in one step, returning the
// selected item. A single-item menu is still shown so the operator sees
// what was picked for them.
func Select(r io.Reader, w io.Writer, title, label string, items []string) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("nothing to select for %q", title)
	}

	Menu(w, title, items)
	idx, err := Choose(r, w, len(items), label)
	if err != nil {
		return "", err
	}
	return items[idx], nil
}
