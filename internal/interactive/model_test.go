package interactive

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/d-kuro/durfield/pkg/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func press(t *testing.T, m Model, k tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

func TestModel_LivePreview(t *testing.T) {
	m := typeString(t, New(""), "10h 23m")
	assert.Equal(t, "10h 23m", m.Input())
	assert.Contains(t, m.View(), "= 10h 23m (37380000000 us)")

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	d, accepted := m.Result()
	assert.True(t, accepted)
	assert.Equal(t, int64(37380), d.Seconds())
	assert.Empty(t, m.View())
}

func TestModel_ShowsErrors(t *testing.T) {
	m := typeString(t, New(""), "5x")
	assert.Contains(t, m.View(), `invalid token "5x"`)

	m, cmd := press(t, m, tea.KeyEnter)
	assert.Nil(t, cmd, "enter is ignored while the expression is invalid")
	_, accepted := m.Result()
	assert.False(t, accepted)

	m, _ = press(t, m, tea.KeyBackspace)
	m = typeString(t, m, "s")
	assert.Contains(t, m.View(), "= 5s")
}

func TestModel_EmptyInput(t *testing.T) {
	m := New("")
	assert.Contains(t, m.View(), "empty duration string")
}

func TestModel_Initial(t *testing.T) {
	m := New("24 days")
	assert.Contains(t, m.View(), "= 24d")

	m, _ = press(t, m, tea.KeyCtrlU)
	assert.Equal(t, "", m.Input())
}

func TestModel_Quit(t *testing.T) {
	m, cmd := press(t, New("1d"), tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	_, accepted := m.Result()
	assert.False(t, accepted)
}

func TestModel_IgnoresOtherMessages(t *testing.T) {
	m := New("1h")
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, m.Input(), next.(Model).Input())

	d, _ := next.(Model).Result()
	assert.Equal(t, duration.FromMicroseconds(duration.Hour), d)
}
