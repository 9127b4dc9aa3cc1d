// Package menu builds numbered, text-driven menus with nested sub-menus
// that read selections line by line from a shared reader.
package menu

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/mchmarny/textmenu/pkg/metric"
)

const (
	// DefaultPrompt is the text shown when requesting a selection.
	DefaultPrompt = "Please select an option from the above menu:"

	// DefaultTitle is the header rendered between the separators.
	DefaultTitle = "MENU"

	// DefaultSeparatorWidth is the width of the rendered separator lines.
	DefaultSeparatorWidth = 100

	// RootName identifies a menu that was never attached to a parent.
	RootName = "root"
)

var (
	// ErrNilMenu is returned when a nil sub-menu is attached.
	ErrNilMenu = errors.New("sub-menu is nil")

	// ErrAlreadyAttached is returned when a sub-menu already has a parent.
	// Each menu can be attached to exactly one parent.
	ErrAlreadyAttached = errors.New("sub-menu already attached to a parent menu")

	// ErrCycle is returned when attaching a menu under itself or one of its descendants.
	ErrCycle = errors.New("sub-menu would create a cycle")
)

// LineReader is a sequential line source. *bufio.Reader satisfies it.
type LineReader interface {
	ReadString(delim byte) (string, error)
}

// Menu is an ordered set of selectable items plus its own display loop.
// All menus of one application share a single LineReader.
type Menu struct {
	in      LineReader
	out     io.Writer
	logger  *slog.Logger
	counter metric.IncrementalCounter

	items  []Item
	prompt string
	title  string
	width  int
	name   string
	parent *Menu
	active bool
}

// Option is a functional option for configuring the Menu.
type Option func(*Menu)

// WithOutput sets the sink for rendering and status messages.
// Unset sub-menus use their parent's sink, the root falls back to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(m *Menu) { m.out = w }
}

// WithPrompt sets the selection prompt. Same as ChangeMenuChoicePrompt.
func WithPrompt(text string) Option {
	return func(m *Menu) { m.prompt = text }
}

// WithTitle sets the header text rendered between the separators.
func WithTitle(title string) Option {
	return func(m *Menu) { m.title = title }
}

// WithSeparatorWidth sets the separator width. Non-positive values are ignored.
func WithSeparatorWidth(n int) Option {
	return func(m *Menu) {
		if n > 0 {
			m.width = n
		}
	}
}

// WithLogger sets the logger used for diagnostics. Unset sub-menus use their
// parent's logger, the root falls back to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(m *Menu) { m.logger = l }
}

// WithCounter records every dispatch outcome, labelled with the menu name
// and the outcome. Unset sub-menus use their parent's counter.
func WithCounter(c metric.IncrementalCounter) Option {
	return func(m *Menu) { m.counter = c }
}

// New creates a menu reading selections from in. The menu starts with a
// single "Exit Application" terminal item.
func New(in LineReader, opts ...Option) *Menu {
	m := &Menu{
		in:     in,
		prompt: DefaultPrompt,
		title:  DefaultTitle,
		width:  DefaultSeparatorWidth,
		name:   RootName,
		items:  []Item{&TerminalItem{Text: ExitLabel}},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// NewSubMenu creates a menu sharing m's input source, with the same header
// layout. It is not attached; use AddSubMenu for that.
func (m *Menu) NewSubMenu(opts ...Option) *Menu {
	opts = append([]Option{WithTitle(m.title), WithSeparatorWidth(m.width)}, opts...)
	return New(m.in, opts...)
}

// AddItem prepends an action item.
func (m *Menu) AddItem(label string, action Action) {
	m.prepend(&ActionItem{Text: label, Action: action})
}

// AddFunc prepends an action item for a function that cannot fail.
func (m *Menu) AddFunc(label string, fn func()) {
	m.AddItem(label, func() error {
		fn()
		return nil
	})
}

// AddSubMenu prepends a sub-menu item and, as a side effect, turns the
// sub-menu's terminal item into a "Previous Menu" item.
func (m *Menu) AddSubMenu(label string, sub *Menu) error {
	if sub == nil {
		return ErrNilMenu
	}

	for p := m; p != nil; p = p.parent {
		if p == sub {
			return ErrCycle
		}
	}

	if sub.parent != nil {
		return ErrAlreadyAttached
	}

	sub.parent = m
	sub.name = label
	m.prepend(&SubMenuItem{Text: label, Menu: sub})
	sub.markAsBack()

	return nil
}

// ChangeMenuChoicePrompt replaces the selection prompt.
func (m *Menu) ChangeMenuChoicePrompt(text string) {
	m.prompt = text
}

// Prompt returns the current selection prompt.
func (m *Menu) Prompt() string {
	return m.prompt
}

// Items returns the items in display order.
func (m *Menu) Items() []Item {
	items := make([]Item, len(m.items))
	copy(items, m.items)
	return items
}

// Len returns the number of selectable items, terminal included.
func (m *Menu) Len() int {
	return len(m.items)
}

// Parent returns the menu m is attached to, or nil for a root.
func (m *Menu) Parent() *Menu {
	return m.parent
}

func (m *Menu) prepend(item Item) {
	m.items = append([]Item{item}, m.items...)
}

// markAsBack relabels the terminal item, found by kind and not by position,
// or appends one when missing.
func (m *Menu) markAsBack() {
	for _, item := range m.items {
		if t, ok := item.(*TerminalItem); ok {
			t.Text = BackLabel
			return
		}
	}

	m.items = append(m.items, &TerminalItem{Text: BackLabel})
}

func (m *Menu) output() io.Writer {
	for p := m; p != nil; p = p.parent {
		if p.out != nil {
			return p.out
		}
	}

	return os.Stdout
}

func (m *Menu) log() *slog.Logger {
	for p := m; p != nil; p = p.parent {
		if p.logger != nil {
			return p.logger
		}
	}

	return slog.Default()
}

func (m *Menu) record(outcome string) {
	for p := m; p != nil; p = p.parent {
		if p.counter != nil {
			p.counter.Increment(m.name, outcome)
			return
		}
	}
}
