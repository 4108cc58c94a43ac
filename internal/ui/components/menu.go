package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Action may be nil for menus whose owner
// reads Selected instead.
type MenuItem struct {
	Label  string
	Hint   string
	Action func() tea.Cmd
}

// Menu is a vertical list with a cursor. Up and down wrap around; the
// digits 1-9 jump straight to an entry.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Current returns the entry under the cursor.
func (m Menu) Current() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}
	n := len(m.Items)
	switch key := kmsg.String(); key {
	case "up", "k":
		m.Selected = (m.Selected - 1 + n) % n
	case "down", "j":
		m.Selected = (m.Selected + 1) % n
	case "home", "g":
		m.Selected = 0
	case "end", "G":
		m.Selected = n - 1
	case "enter":
		if item, ok := m.Current(); ok && item.Action != nil {
			return m, item.Action()
		}
	default:
		if d, err := strconv.Atoi(key); err == nil && d >= 1 && d <= n {
			m.Selected = d - 1
		}
	}
	return m, nil
}

func (m Menu) View(st *theme.Styles) string {
	var b strings.Builder
	for i, item := range m.Items {
		if i != m.Selected {
			b.WriteString(st.Unselected.Render("    " + item.Label))
		} else {
			b.WriteString(st.Selected.Render("  ▸ " + item.Label))
			if item.Hint != "" {
				b.WriteString("  " + st.Hint.Render(item.Hint))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
