// Package screentest holds helpers shared by screen tests.
package screentest

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hemepath/internal/content"
	"github.com/abhisek/hemepath/internal/logging"
	"github.com/abhisek/hemepath/internal/screen"
)

// Deps returns dependencies backed by the embedded library with no tutor.
func Deps() *screen.Deps {
	return &screen.Deps{
		Library: content.MustDefault(),
		Logger:  logging.Discard(),
	}
}

// Key builds a key press for a named key or a single printable rune.
func Key(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	}
	if rest, ok := strings.CutPrefix(k, "ctrl+"); ok {
		return tea.KeyPressMsg{Code: []rune(rest)[0], Mod: tea.ModCtrl}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Code: r, Text: k}
}

// Type sends each rune of text to s and returns the resulting screen.
func Type(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(Key(string(r)))
	}
	return s
}

// Press sends the named keys in order.
func Press(s screen.Screen, keys ...string) screen.Screen {
	for _, k := range keys {
		s, _ = s.Update(Key(k))
	}
	return s
}

// Exec runs cmd and returns its message, or nil.
func Exec(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
