package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/ui/theme"
)

// ChecklistGroup is a titled section of toggleable items.
type ChecklistGroup struct {
	Title string
	Items []string
}

// Checklist is a grouped multi-select list. Space toggles the item under
// the cursor and OnToggle is called with its group and item indices.
type Checklist struct {
	Groups   []ChecklistGroup
	Checked  func(group, item int) bool
	OnToggle func(group, item int)

	group, item int
}

// NewChecklist creates a checklist with the cursor on the first item.
func NewChecklist(groups []ChecklistGroup, checked func(g, i int) bool, onToggle func(g, i int)) Checklist {
	return Checklist{Groups: groups, Checked: checked, OnToggle: onToggle}
}

// Cursor returns the group and item under the cursor.
func (c Checklist) Cursor() (group, item int) {
	return c.group, c.item
}

// Update handles navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Groups) == 0 {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.item > 0 {
			c.item--
		} else if c.group > 0 {
			c.group--
			c.item = len(c.Groups[c.group].Items) - 1
		}
	case "down", "j":
		if c.item < len(c.Groups[c.group].Items)-1 {
			c.item++
		} else if c.group < len(c.Groups)-1 {
			c.group++
			c.item = 0
		}
	case "tab":
		c.group = (c.group + 1) % len(c.Groups)
		c.item = 0
	case "shift+tab":
		c.group = (c.group + len(c.Groups) - 1) % len(c.Groups)
		c.item = 0
	case "space", " ", "x":
		if c.OnToggle != nil {
			c.OnToggle(c.group, c.item)
		}
	}
	return c, nil
}

// View renders the visible window of the list, keeping the cursor in view.
func (c Checklist) View(st *theme.Styles, height int) string {
	var lines []string
	cursorLine := 0
	for g, grp := range c.Groups {
		lines = append(lines, st.Label.Render(grp.Title))
		for i, item := range grp.Items {
			checked := c.Checked != nil && c.Checked(g, i)
			box, style := "[ ]", st.Unselected
			if checked {
				box, style = "[x]", st.Checked
			}
			prefix := "  "
			if g == c.group && i == c.item {
				prefix = "▸ "
				cursorLine = len(lines)
				if !checked {
					style = st.Selected
				}
			}
			lines = append(lines, style.Render(prefix+box+" "+item))
		}
		lines = append(lines, "")
	}

	if height > 0 && len(lines) > height {
		start := max(0, cursorLine-height/2)
		end := min(len(lines), start+height)
		start = max(0, end-height)
		lines = lines[start:end]
	}
	return strings.Join(lines, "\n")
}
