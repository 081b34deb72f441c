package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmacedo/pegada/internal/footprint"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m *Model, msgs ...tea.Msg) *Model {
	var model tea.Model = m
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}
	return model.(*Model)
}

// TestNewModel tests editor initialization.
func TestNewModel(t *testing.T) {
	model := NewModel(footprint.DefaultSession(), nil)

	require.NotNil(t, model)
	assert.Equal(t, StateBrowsing, model.state)
	assert.Equal(t, 0, model.focusedRow)
	assert.Equal(t, ColName, model.focusedCol)
	assert.Len(t, model.session.Categories(), len(footprint.DefaultCategories()))
}

// TestModelNavigation tests row and column focus movement.
func TestModelNavigation(t *testing.T) {
	t.Run("moves down and up within bounds", func(t *testing.T) {
		model := NewModel(footprint.DefaultSession(), nil)

		model = update(model, keyMsg(tea.KeyDown), keyMsg(tea.KeyDown))
		assert.Equal(t, 2, model.focusedRow)

		model = update(model, keyMsg(tea.KeyUp), keyMsg(tea.KeyUp), keyMsg(tea.KeyUp))
		assert.Equal(t, 0, model.focusedRow)
	})

	t.Run("does not move past the last row", func(t *testing.T) {
		model := NewModel(footprint.DefaultSession(), nil)
		last := len(model.session.Categories()) - 1

		for i := 0; i < last+5; i++ {
			model = update(model, keyMsg(tea.KeyDown))
		}
		assert.Equal(t, last, model.focusedRow)
	})

	t.Run("moves across columns with right and tab", func(t *testing.T) {
		model := NewModel(footprint.DefaultSession(), nil)

		model = update(model, keyMsg(tea.KeyRight), keyMsg(tea.KeyTab))
		assert.Equal(t, ColUnit, model.focusedCol)

		model = update(model, keyMsg(tea.KeyLeft))
		assert.Equal(t, ColConsumption, model.focusedCol)
	})
}

// TestModelEditCommit tests the edit cycle against the computed totals.
func TestModelEditCommit(t *testing.T) {
	model := NewModel(footprint.DefaultSession(), nil)

	// Focus the consumption cell of the first row and type a value.
	model = update(model,
		keyMsg(tea.KeyRight),
		keyMsg(tea.KeyEnter),
		runeMsg("100"),
		keyMsg(tea.KeyEnter),
	)

	assert.Equal(t, StateBrowsing, model.state)
	assert.Equal(t, "100", model.session.Categories()[0].Consumption)
	assert.Greater(t, model.session.Compute().TotalGha, 0.0)
}

// TestModelEditCancel tests that esc discards the buffered edit.
func TestModelEditCancel(t *testing.T) {
	model := NewModel(footprint.DefaultSession(), nil)
	original := model.session.Categories()[0].Name

	model = update(model,
		keyMsg(tea.KeyEnter),
		runeMsg("abc"),
		keyMsg(tea.KeyEsc),
	)

	assert.Equal(t, StateBrowsing, model.state)
	assert.Equal(t, original, model.session.Categories()[0].Name)
}

// TestModelToggleEnabled tests the space toggle and its status message.
func TestModelToggleEnabled(t *testing.T) {
	model := NewModel(footprint.DefaultSession(), nil)

	model = update(model, keyMsg(tea.KeySpace))
	assert.False(t, model.session.Categories()[0].Enabled)
	assert.Contains(t, model.status, "desativada")

	model = update(model, keyMsg(tea.KeySpace))
	assert.True(t, model.session.Categories()[0].Enabled)
	assert.Contains(t, model.status, "ativada")
}

// TestModelAddRemove tests adding and removing custom categories.
func TestModelAddRemove(t *testing.T) {
	model := NewModel(footprint.DefaultSession(), nil)
	initial := len(model.session.Categories())

	model = update(model, runeMsg("a"))
	require.Len(t, model.session.Categories(), initial+1)
	assert.Equal(t, initial, model.focusedRow)
	assert.True(t, model.session.Categories()[initial].Custom)

	model = update(model, runeMsg("x"))
	assert.Len(t, model.session.Categories(), initial)
	assert.Equal(t, initial-1, model.focusedRow)
}

// TestModelRemoveBuiltinRejected tests the built-in protection status.
func TestModelRemoveBuiltinRejected(t *testing.T) {
	model := NewModel(footprint.DefaultSession(), nil)
	initial := len(model.session.Categories())

	model = update(model, runeMsg("x"))

	assert.Len(t, model.session.Categories(), initial)
	assert.Contains(t, model.status, "não podem ser removidas")
}

// TestModelResetConsumption tests the r shortcut.
func TestModelResetConsumption(t *testing.T) {
	session := footprint.DefaultSession()
	cats := session.Categories()
	_ = session.UpdateField(cats[0].ID, footprint.FieldConsumption, "50")

	model := NewModel(session, nil)
	model = update(model, runeMsg("r"))

	assert.Empty(t, model.session.Categories()[0].Consumption)
}

// TestModelAutosave tests that mutations flow through the save callback.
func TestModelAutosave(t *testing.T) {
	saves := 0
	model := NewModel(footprint.DefaultSession(), func(*footprint.Session) string {
		saves++
		return ""
	})

	model = update(model,
		keyMsg(tea.KeySpace),
		runeMsg("a"),
		runeMsg("r"),
	)

	assert.Equal(t, 3, saves)
	require.NotNil(t, model)
}

// TestModelSaveStatusOverride tests that a save message wins the status line.
func TestModelSaveStatusOverride(t *testing.T) {
	model := NewModel(footprint.DefaultSession(), func(*footprint.Session) string {
		return "Falha ao salvar."
	})

	model = update(model, keyMsg(tea.KeySpace))

	assert.Equal(t, "Falha ao salvar.", model.status)
}

// TestModelQuit tests the quit keys.
func TestModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeMsg("q"), keyMsg(tea.KeyCtrlC)} {
		model := NewModel(footprint.DefaultSession(), nil)
		updated, cmd := model.Update(msg)

		assert.Equal(t, StateQuitting, updated.(*Model).state)
		require.NotNil(t, cmd)
		assert.Empty(t, updated.View())
	}
}

// TestModelView tests the rendered frame contents.
func TestModelView(t *testing.T) {
	session := footprint.DefaultSession()
	cats := session.Categories()
	_ = session.UpdateField(cats[0].ID, footprint.FieldConsumption, "100")

	model := NewModel(session, nil)
	view := model.View()

	assert.Contains(t, view, "Pegada ecológica")
	assert.Contains(t, view, "Categoria")
	assert.Contains(t, view, "Emissão total")
	assert.Contains(t, view, "informe a população")
}

// TestModelViewPerCapita tests the per-capita footer when population is set.
func TestModelViewPerCapita(t *testing.T) {
	session := footprint.DefaultSession()
	params := session.Params()
	params.Population = "200"
	session.SetParams(params)

	model := NewModel(session, nil)
	view := model.View()

	assert.Contains(t, view, "Per capita:")
	assert.False(t, strings.Contains(view, "informe a população"))
}

// TestModelUnitToggle tests the consolidated-unit shortcut.
func TestModelUnitToggle(t *testing.T) {
	model := NewModel(footprint.DefaultSession(), nil)
	require.True(t, model.session.Params().UseGha)

	model = update(model, runeMsg("u"))
	assert.False(t, model.session.Params().UseGha)
	assert.Contains(t, model.status, "ha")
}
