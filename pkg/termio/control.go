// Package termio owns the terminal: entering/leaving raw mode and the
// alternate screen, painting frames with minimal escape sequences, and
// decoding keyboard input.
package termio

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/lasangainc/toast-thebrowser/pkg/core"
)

const (
	seqEnterAltScreen = "\x1b[?1049h"
	seqLeaveAltScreen = "\x1b[?1049l"
	seqHideCursor     = "\x1b[?25l"
	seqShowCursor     = "\x1b[?25h"
)

// Control manages the raw-mode/alternate-screen lifecycle of the
// controlling terminal. Construct with Open and always defer Close so the
// terminal is restored on every exit path.
type Control struct {
	fd       int
	oldState *term.State
}

// Open enters raw mode and the alternate screen, hiding the cursor. The
// returned Control's Close method undoes all three; call it on every exit
// path.
func Open() (*Control, error) {
	fd := int(os.Stdout.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, &core.ConfigurationError{Msg: fmt.Sprintf("failed to enter raw mode: %v", err)}
	}

	if _, err := os.Stdout.WriteString(seqEnterAltScreen + seqHideCursor); err != nil {
		_ = term.Restore(fd, oldState)
		return nil, &core.ConfigurationError{Msg: fmt.Sprintf("failed to enter alternate screen: %v", err)}
	}

	return &Control{fd: fd, oldState: oldState}, nil
}

// Size returns the current terminal dimensions (cols, rows).
func (c *Control) Size() (cols, rows int, err error) {
	return term.GetSize(c.fd)
}

// Close restores cooked mode, shows the cursor, and leaves the alternate
// screen. Safe to call multiple times; only the first call has effect on
// the oldState restore (the state is cleared once restored).
func (c *Control) Close() error {
	_, _ = os.Stdout.WriteString(seqShowCursor + seqLeaveAltScreen)
	if c.oldState == nil {
		return nil
	}
	state := c.oldState
	c.oldState = nil
	return term.Restore(c.fd, state)
}
