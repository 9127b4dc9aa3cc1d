package menu

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// InvalidSelectionMessage is printed for unparsable or out-of-range input.
	InvalidSelectionMessage = "Invalid selection; Try again!"

	// ActionFailedMessage is printed when an action returns an error or panics.
	ActionFailedMessage = "ERROR: Unable to execute menu option!"
)

// Outcomes recorded by the selection counter.
const (
	OutcomeAction  = "action"
	OutcomeFailed  = "failed"
	OutcomeSubMenu = "submenu"
	OutcomeExit    = "exit"
	OutcomeInvalid = "invalid"
)

// errInputClosed unwinds every nested loop once the shared reader is exhausted.
var errInputClosed = errors.New("menu input closed")

// Display renders the menu, reads a selection and dispatches it until the
// terminal item is selected. Sub-menus run nested inside this call.
//
// End of input ends this loop and every enclosing one, and Display returns
// nil. Any other read failure does the same but is returned wrapped.
// Action failures never end the loop.
func (m *Menu) Display() error {
	return unwrapClosed(m.run())
}

// ExecuteMenuSelection dispatches the 1-based selection n. Zero means no
// selection was made and is reported as invalid, like any out-of-range value.
func (m *Menu) ExecuteMenuSelection(n int) error {
	return unwrapClosed(m.execute(n))
}

func (m *Menu) run() error {
	m.active = true
	defer func() { m.active = false }()

	for m.active {
		out := m.output()
		fmt.Fprintln(out, m.Render())
		fmt.Fprint(out, m.prompt+" ")

		n, err := m.readSelection()
		if err != nil {
			fmt.Fprintln(out)
			return err
		}

		if err := m.execute(n); err != nil {
			return err
		}
	}

	return nil
}

// readSelection returns the parsed selection, or 0 when the line is not an integer.
func (m *Menu) readSelection() (int, error) {
	line, err := m.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		if errors.Is(err, io.EOF) {
			m.log().Debug("menu input closed", "menu", m.name)
			return 0, errInputClosed
		}
		m.log().Error("failed to read menu selection", "menu", m.name, "error", err)
		return 0, fmt.Errorf("failed to read menu selection: %w", err)
	}

	n, perr := strconv.Atoi(strings.TrimSpace(line))
	if perr != nil {
		return 0, nil
	}

	return n, nil
}

func (m *Menu) execute(n int) error {
	out := m.output()

	if n < 1 || n > len(m.items) {
		m.log().Debug("invalid selection", "menu", m.name, "selection", n)
		m.record(OutcomeInvalid)
		fmt.Fprintln(out, InvalidSelectionMessage)
		return nil
	}

	switch item := m.items[n-1].(type) {
	case *SubMenuItem:
		m.log().Debug("entering sub-menu", "menu", m.name, "item", item.Text)
		m.record(OutcomeSubMenu)
		return item.Menu.run()
	case *ActionItem:
		if err := invoke(item.Action); err != nil {
			m.log().Error("menu action failed", "menu", m.name, "item", item.Text, "error", err)
			m.record(OutcomeFailed)
			fmt.Fprintln(out, "\n"+ActionFailedMessage)
			return nil
		}
		m.log().Debug("menu action completed", "menu", m.name, "item", item.Text)
		m.record(OutcomeAction)
	case *TerminalItem:
		m.log().Debug("leaving menu", "menu", m.name)
		m.record(OutcomeExit)
		m.active = false
	}

	return nil
}

func invoke(action Action) (err error) {
	if action == nil {
		return errors.New("menu action is nil")
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("menu action panicked: %v", r)
		}
	}()

	return action()
}

func unwrapClosed(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}
