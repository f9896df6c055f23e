package rofi

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"github.com/qtc-de/librofi/logging"
)

// Args builds the selector's argument list. The order is fixed:
// dmenu mode, prompt, message, one -kb-custom-N flag per keybinding
// in insertion order, then the optional display flags. Nothing is
// reordered or deduplicated.
func (s *Session) Args() []string {
	args := []string{"-dmenu"}

	if s.name != "" {
		args = append(args, "-p", s.name)
	}

	if s.message != "" {
		args = append(args, "-mesg", s.message)
	}

	for i, key := range s.keys {
		args = append(args, fmt.Sprintf("-kb-custom-%d", i+1), key)
	}

	if s.caseInsensitive {
		args = append(args, "-i")
	}

	if s.lines > 0 {
		args = append(args, "-l", strconv.Itoa(s.lines))
	}

	if s.selectedRow >= 0 {
		args = append(args, "-selected-row", strconv.Itoa(s.selectedRow))
	}

	if s.filter != "" {
		args = append(args, "-filter", s.filter)
	}

	return args
}

// input renders all entries through the session's layout into the
// text written to the selector's stdin, one line per entry. A line
// that already ends in a newline is not terminated twice.
func (s *Session) input() string {
	var b strings.Builder

	for _, entry := range s.entries {
		line := s.layout.Apply(entry)
		b.WriteString(line)

		if !strings.HasSuffix(line, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Start spawns the selector, feeds it the formatted entries, waits
// for it to exit and hands the captured output to exactly one
// callback: the success callback on exit code 0, the canceled
// callback on 1, the keybinding callback at index code-10 when one is
// registered there, the default callback otherwise.
//
// Start blocks until the selector exits and the callback returns.
// Errors are limited to failures around the process itself; whatever
// the selector reports through its exit code is dispatch, not error.
func (s *Session) Start() error {
	ctx := logging.SessionCtx(s.executable)
	args := s.Args()

	slog.DebugContext(ctx, "Starting selector", "args", args, "entries", len(s.entries))

	cmd := exec.Command(s.executable, args...)

	var stdout bytes.Buffer

	cmd.Stdin = strings.NewReader(s.input())
	cmd.Stdout = &stdout

	code := 0

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("could not run %s: %w", s.executable, err)
		}

		code = exitErr.ExitCode()
	}

	slog.DebugContext(ctx, "Selector exited", "code", code, "output", stdout.Len())

	s.callbackFor(code)(stdout.String())

	return nil
}

// callbackFor resolves the exit-code-to-callback mapping: 0 and 1
// are the fixed success and cancel codes, 10+i belongs to the i-th
// registered keybinding, everything else falls through to the
// default callback.
func (s *Session) callbackFor(code int) Callback {
	switch code {
	case 0:
		return s.success
	case 1:
		return s.canceled
	}

	if i := code - 10; i >= 0 && i < len(s.callbacks) {
		return s.callbacks[i]
	}

	return s.fallback
}
