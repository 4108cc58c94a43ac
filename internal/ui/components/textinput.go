package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/ui/theme"
)

// InputKind restricts which characters a TextInput accepts.
type InputKind int

const (
	TextKind    InputKind = iota
	IntegerKind           // digits only
	DecimalKind           // digits and one '.'
)

// TextInput is a bubbles text field that can be limited to numbers and
// marked right or wrong after a check.
type TextInput struct {
	Model textinput.Model
	Kind  InputKind

	// mark is 0 before Submit, then 1 for valid or -1 for invalid.
	mark int
}

// NewTextInput returns a focused field holding at most limit characters.
func NewTextInput(placeholder string, kind InputKind, limit int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	m.CharLimit = limit
	m.Focus()
	return TextInput{Model: m, Kind: kind}
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && t.Kind != TextKind {
		if s := k.String(); len(s) == 1 && !t.allows(s[0]) {
			return t, nil
		}
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) allows(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case c == '.':
		return t.Kind == DecimalKind && !strings.Contains(t.Model.Value(), ".")
	}
	return false
}

func (t TextInput) View(st *theme.Styles) string {
	switch t.mark {
	case 1:
		return t.Model.View() + " " + st.Correct.Render("✓")
	case -1:
		return t.Model.View() + " " + st.Incorrect.Render("✗")
	}
	return t.Model.View()
}

func (t *TextInput) Focus() tea.Cmd { return t.Model.Focus() }

func (t *TextInput) Blur() { t.Model.Blur() }

func (t TextInput) Value() string { return strings.TrimSpace(t.Model.Value()) }

func (t *TextInput) SetValue(v string) { t.Model.SetValue(v) }

func (t TextInput) NumericValue() (int, error) { return strconv.Atoi(t.Value()) }

func (t TextInput) FloatValue() (float64, error) { return strconv.ParseFloat(t.Value(), 64) }

// Reset empties the field and clears its mark.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
	t.mark = 0
}

// Submit marks the field with the result of checking its value.
func (t *TextInput) Submit(valid bool) {
	t.mark = -1
	if valid {
		t.mark = 1
	}
}
