package menu

const (
	// ExitLabel is the terminal item label of a root menu.
	ExitLabel = "Exit Application"

	// BackLabel is the terminal item label of a menu attached as a sub-menu.
	BackLabel = "Previous Menu"
)

// Action is a registered menu action. A returned error (or a panic) is
// reported to the user as a generic failure and never ends the menu loop.
type Action func() error

// Item represents an individual entry in the menu. It is one of
// *ActionItem, *SubMenuItem or *TerminalItem.
type Item interface {
	// Label is the text rendered for the item.
	Label() string

	// Kind identifies the item case.
	Kind() Kind

	isItem()
}

// Kind identifies the case of an Item.
type Kind string

const (
	KindAction   Kind = "action"
	KindSubMenu  Kind = "submenu"
	KindTerminal Kind = "terminal"
)

// ActionItem runs Action when selected.
type ActionItem struct {
	Text   string
	Action Action
}

func (i *ActionItem) Label() string { return i.Text }
func (i *ActionItem) Kind() Kind    { return KindAction }
func (*ActionItem) isItem()         {}

// SubMenuItem enters Menu's own display loop when selected.
type SubMenuItem struct {
	Text string
	Menu *Menu
}

func (i *SubMenuItem) Label() string { return i.Text }
func (i *SubMenuItem) Kind() Kind    { return KindSubMenu }
func (*SubMenuItem) isItem()         {}

// TerminalItem ends the current display loop when selected.
type TerminalItem struct {
	Text string
}

func (i *TerminalItem) Label() string { return i.Text }
func (i *TerminalItem) Kind() Kind    { return KindTerminal }
func (*TerminalItem) isItem()         {}
