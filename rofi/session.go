package rofi

import (
	"fmt"
	"strings"

	"github.com/qtc-de/librofi/config"
	"github.com/qtc-de/librofi/layout"
)

// Callback consumes the output captured from one selector run. The
// session invokes exactly one callback per Start call, inline, after
// the selector process has terminated.
type Callback func(output string)

// printOutput is the shared default for the success, canceled and
// fallback roles: dump whatever the selector printed onto stdout.
func printOutput(output string) {
	fmt.Print(output)
}

// formatChars are the output format specifiers the selector
// understands (literal string, index, dmenu index, quoted, ...).
const formatChars = "sidqpfF"

// Session drives one external selector invocation: it collects
// entries, keybindings and display options, spawns the selector
// binary, feeds the formatted entries over stdin and dispatches the
// captured stdout to a callback picked by the exit code.
//
// A Session is not safe for concurrent use. Configure it fully before
// calling Start; Start itself may be called any number of times, each
// call running an independent selector process.
type Session struct {
	executable string
	name       string
	message    string
	layout     layout.Layout
	entries    []string

	// format is recorded for the caller's benefit only; the fixed
	// argument list built by Args deliberately does not carry it.
	format byte

	// keys[i] pairs with callbacks[i]; index i maps to exit code 10+i.
	keys      []string
	callbacks []Callback

	success  Callback
	canceled Callback
	fallback Callback

	caseInsensitive bool
	lines           int
	selectedRow     int
	filter          string
}

// NewSession resolves the selector executable through the per-user
// config file or PATH and returns a session with default settings:
// no entries, plain layout and the built-in print callback in all
// three fallback roles.
func NewSession() (*Session, error) {
	executable, err := config.ResolveExecutable()
	if err != nil {
		return nil, fmt.Errorf("could not create selector session: %w", err)
	}

	return &Session{
		executable:  executable,
		layout:      layout.Plain{},
		success:     printOutput,
		canceled:    printOutput,
		fallback:    printOutput,
		selectedRow: -1,
	}, nil
}

// Executable returns the selector binary this session spawns.
func (s *Session) Executable() string {
	return s.executable
}

// SetName sets the prompt shown next to the input field.
func (s *Session) SetName(name string) {
	s.name = name
}

// SetMessage sets the message line shown below the input field.
func (s *Session) SetMessage(message string) {
	s.message = message
}

// SetLayout replaces the layout applied to each entry before it is
// written to the selector.
func (s *Session) SetLayout(l layout.Layout) {
	s.layout = l
}

// SetFormat sets the output format specifier. An unknown specifier
// is reported as an error but stored anyway; the error return is the
// caller's signal to reconsider.
func (s *Session) SetFormat(format byte) error {
	s.format = format

	if strings.IndexByte(formatChars, format) < 0 {
		return fmt.Errorf("invalid format character %q, expected one of %q", format, formatChars)
	}

	return nil
}

// SetSuccessCallback sets the callback run on exit code 0.
func (s *Session) SetSuccessCallback(cb Callback) {
	s.success = cb
}

// SetCanceledCallback sets the callback run on exit code 1.
func (s *Session) SetCanceledCallback(cb Callback) {
	s.canceled = cb
}

// SetDefaultCallback sets the callback run on any exit code that is
// neither 0, 1 nor mapped to a keybinding.
func (s *Session) SetDefaultCallback(cb Callback) {
	s.fallback = cb
}

// AddKeybinding registers key as a custom exit binding. The n-th
// registered binding (0-based) fires its callback when the selector
// exits with code 10+n.
func (s *Session) AddKeybinding(key string, cb Callback) {
	s.keys = append(s.keys, key)
	s.callbacks = append(s.callbacks, cb)
}

// AddEntry appends one line to the selector's entry list. Entries
// keep their insertion order.
func (s *Session) AddEntry(entry string) {
	s.entries = append(s.entries, entry)
}

// SetCaseInsensitive toggles case insensitive matching.
func (s *Session) SetCaseInsensitive(enabled bool) {
	s.caseInsensitive = enabled
}

// SetLines sets the number of visible entry rows. Values below one
// leave the selector's own default in place.
func (s *Session) SetLines(n int) {
	s.lines = n
}

// SetSelectedRow preselects the given row. Negative values leave the
// selection at the selector's own default.
func (s *Session) SetSelectedRow(n int) {
	s.selectedRow = n
}

// SetFilter prefills the input field with text.
func (s *Session) SetFilter(text string) {
	s.filter = text
}
