package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"fsops/internal/domain"
)

// ErrNonInteractive is returned when a prompt is needed but stdin is not a terminal.
var ErrNonInteractive = errors.New("cannot prompt for confirmation: non-interactive terminal")

// Adapter asks yes/no questions on the terminal.
type Adapter struct {
	stdin  io.Reader
	stderr io.Writer
	// force skips the terminal check, used when stdin is piped on purpose.
	force bool
}

// NewAdapter creates a new terminal adapter.
func NewAdapter(stdin io.Reader, stderr io.Writer) *Adapter {
	return &Adapter{
		stdin:  stdin,
		stderr: stderr,
	}
}

// NewScriptedAdapter creates an adapter that reads answers from stdin
// even when it is not a terminal.
func NewScriptedAdapter(stdin io.Reader, stderr io.Writer) *Adapter {
	a := NewAdapter(stdin, stderr)
	a.force = true
	return a
}

// Confirm prints prompt followed by [y/N] and reads one line.
// Only "y" and "yes" (any case) count as consent; EOF counts as no.
func (a *Adapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	if !a.IsInteractive() {
		return false, ErrNonInteractive
	}

	fmt.Fprintf(a.stderr, "%s [y/N]: ", prompt)

	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// IsInteractive returns true if the terminal is interactive.
func (a *Adapter) IsInteractive() bool {
	if a.force {
		return true
	}
	if file, ok := a.stdin.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

var _ domain.Confirmer = (*Adapter)(nil)
