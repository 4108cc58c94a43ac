package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/ui/theme"
)

// Button fires OnPress on enter. A disabled button renders dimmed and
// ignores keys.
type Button struct {
	Label    string
	Disabled bool
	OnPress  func() tea.Cmd
}

func NewButton(label string, enabled bool, onPress func() tea.Cmd) Button {
	return Button{Label: label, Disabled: !enabled, OnPress: onPress}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" && !b.Disabled && b.OnPress != nil {
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View(st *theme.Styles) string {
	style := st.ButtonActive
	if b.Disabled {
		style = st.ButtonInactive
	}
	return style.Render("[ " + b.Label + " ]")
}
