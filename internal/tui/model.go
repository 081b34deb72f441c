// Package tui implements the interactive category editor. Every committed
// edit triggers a full recomputation pass and an autosave, mirroring the
// calculator's edit-recompute-persist loop.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rmacedo/pegada/internal/footprint"
)

// Column identifies an editable cell within a category row.
type Column int

const (
	ColName Column = iota
	ColConsumption
	ColUnit
	ColFE
	ColLifeSpan
	ColMethod
	columnCount
)

// fieldForColumn maps a column to its session field name.
func fieldForColumn(col Column) string {
	switch col {
	case ColName:
		return footprint.FieldName
	case ColConsumption:
		return footprint.FieldConsumption
	case ColUnit:
		return footprint.FieldUnit
	case ColFE:
		return footprint.FieldFE
	case ColLifeSpan:
		return footprint.FieldLifeSpan
	case ColMethod:
		return footprint.FieldMethod
	default:
		return ""
	}
}

var columnTitles = []string{"Categoria", "Consumo", "Unidade", "FE", "Vida útil", "Método"}

// State represents the editor state.
type State int

const (
	// StateBrowsing indicates the user is navigating cells.
	StateBrowsing State = iota
	// StateEditing indicates a cell edit is in progress.
	StateEditing
	// StateQuitting indicates the editor is exiting.
	StateQuitting
)

// SaveFunc persists the session after a mutation; it returns a status
// message for the status line.
type SaveFunc func(*footprint.Session) string

// Model is the Bubble Tea model for the interactive footprint editor.
type Model struct {
	session *footprint.Session
	save    SaveFunc

	focusedRow int
	focusedCol Column
	state      State
	input      textinput.Model

	// status is the single status-line sink; every new message
	// overwrites the previous one.
	status string

	width  int
	height int
}

// Default dimensions before the first WindowSizeMsg.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// NewModel creates the editor over a session. save may be nil (no
// persistence, used by tests).
func NewModel(session *footprint.Session, save SaveFunc) *Model {
	ti := textinput.New()
	ti.CharLimit = 120

	return &Model{
		session: session,
		save:    save,
		input:   ti,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Session exposes the edited session (for the caller after Quit).
func (m *Model) Session() *footprint.Session {
	return m.session
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

//nolint:exhaustive // Only the relevant key types are handled.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == StateEditing {
		return m.handleEditModeKey(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = StateQuitting
		return m, tea.Quit

	case tea.KeyUp:
		if m.focusedRow > 0 {
			m.focusedRow--
		}
	case tea.KeyDown:
		if m.focusedRow < len(m.session.Categories())-1 {
			m.focusedRow++
		}
	case tea.KeyLeft:
		if m.focusedCol > 0 {
			m.focusedCol--
		}
	case tea.KeyRight, tea.KeyTab:
		if m.focusedCol < columnCount-1 {
			m.focusedCol++
		}

	case tea.KeyEnter:
		if cat, ok := m.focusedCategory(); ok {
			m.state = StateEditing
			m.input.SetValue(m.cellValue(cat, m.focusedCol))
			m.input.CursorEnd()
			m.input.Width = columnWidths[m.focusedCol]
			return m, m.input.Focus()
		}

	case tea.KeySpace:
		m.toggleEnabled()

	case tea.KeyRunes:
		return m.handleRuneKey(string(msg.Runes))
	}

	return m, nil
}

func (m *Model) handleRuneKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		m.state = StateQuitting
		return m, tea.Quit
	case "a":
		cat := m.session.AddCategory("")
		m.focusedRow = len(m.session.Categories()) - 1
		m.focusedCol = ColName
		m.persist(fmt.Sprintf("Categoria %q adicionada.", cat.Name))
	case "x":
		m.removeFocused()
	case "r":
		m.session.ResetConsumption()
		m.persist("Consumos limpos.")
	case "u":
		params := m.session.Params()
		params.UseGha = !params.UseGha
		m.session.SetParams(params)
		m.persist("Unidade consolidada: " + params.FootprintUnit())
	case " ":
		m.toggleEnabled()
	}
	return m, nil
}

//nolint:exhaustive // Only the relevant key types are handled.
func (m *Model) handleEditModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.commitEdit()
		return m, nil
	case tea.KeyEsc:
		m.state = StateBrowsing
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlC:
		m.state = StateQuitting
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) focusedCategory() (footprint.CategoryRecord, bool) {
	cats := m.session.Categories()
	if m.focusedRow < 0 || m.focusedRow >= len(cats) {
		return footprint.CategoryRecord{}, false
	}
	return cats[m.focusedRow], true
}

func (m *Model) cellValue(cat footprint.CategoryRecord, col Column) string {
	switch col {
	case ColName:
		return cat.Name
	case ColConsumption:
		return cat.Consumption
	case ColUnit:
		return cat.Unit
	case ColFE:
		return cat.FE
	case ColLifeSpan:
		return cat.LifeSpan
	case ColMethod:
		return cat.Method
	default:
		return ""
	}
}

func (m *Model) commitEdit() {
	cat, ok := m.focusedCategory()
	if !ok {
		m.state = StateBrowsing
		return
	}
	if err := m.session.UpdateField(cat.ID, fieldForColumn(m.focusedCol), m.input.Value()); err != nil {
		m.status = err.Error()
	} else {
		m.persist("Alteração aplicada.")
	}
	m.state = StateBrowsing
	m.input.Blur()
}

func (m *Model) toggleEnabled() {
	cat, ok := m.focusedCategory()
	if !ok {
		return
	}
	_ = m.session.SetEnabled(cat.ID, !cat.Enabled)
	if cat.Enabled {
		m.persist(fmt.Sprintf("Categoria %q desativada.", cat.Name))
	} else {
		m.persist(fmt.Sprintf("Categoria %q ativada.", cat.Name))
	}
}

func (m *Model) removeFocused() {
	cat, ok := m.focusedCategory()
	if !ok {
		return
	}
	if err := m.session.RemoveCategory(cat.ID); err != nil {
		m.status = "Categorias padrão não podem ser removidas."
		return
	}
	if m.focusedRow >= len(m.session.Categories()) && m.focusedRow > 0 {
		m.focusedRow--
	}
	m.persist(fmt.Sprintf("Categoria %q removida.", cat.Name))
}

// persist saves through the callback and overwrites the status line.
func (m *Model) persist(status string) {
	m.status = status
	if m.save != nil {
		if saved := m.save(m.session); saved != "" {
			m.status = saved
		}
	}
}

// Styles.
var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	focusStyle    = lipgloss.NewStyle().Reverse(true)
	editStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	totalsStyle   = lipgloss.NewStyle().Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Column display widths.
var columnWidths = []int{32, 14, 12, 10, 10, 28}

// View implements tea.Model.
func (m *Model) View() string {
	if m.state == StateQuitting {
		return ""
	}

	comp := m.session.Compute()
	params := m.session.Params()

	var b strings.Builder
	b.WriteString(headerStyle.Render("Pegada ecológica — editor interativo"))
	b.WriteString("\n\n")
	m.renderTable(&b, comp)
	b.WriteString("\n")
	m.renderTotals(&b, comp, params)

	if warnings := m.session.Warnings(); !warnings.Empty() {
		b.WriteString("\n")
		for _, name := range warnings.InvalidFE {
			b.WriteString(warnStyle.Render(fmt.Sprintf("FE inválido: %s", name)) + "\n")
		}
		for _, name := range warnings.InvalidLifeSpan {
			b.WriteString(warnStyle.Render(fmt.Sprintf("Vida útil inválida: %s", name)) + "\n")
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(statusStyle.Render(helpLine(m.state == StateEditing)))
	return b.String()
}

func helpLine(editing bool) string {
	if editing {
		return "enter confirma · esc cancela"
	}
	return "setas navegam · enter edita · espaço ativa/desativa · a adiciona · x remove · r limpa consumos · u ha/gha · q sai"
}

func (m *Model) renderTable(b *strings.Builder, comp footprint.Computation) {
	cells := make([]string, 0, columnCount)
	for i, title := range columnTitles {
		cells = append(cells, pad(title, columnWidths[i]))
	}
	b.WriteString(headerStyle.Render("  "+strings.Join(cells, " ")) + "  " + headerStyle.Render(pad("Pegada", 14)))
	b.WriteString("\n")

	for rowIdx, row := range comp.Rows {
		b.WriteString(m.renderRow(rowIdx, row, comp))
		b.WriteString("\n")
	}
}

func (m *Model) renderRow(rowIdx int, row footprint.Row, comp footprint.Computation) string {
	cat := row.Category

	marker := " "
	if !cat.Enabled {
		marker = "·"
	}

	cells := make([]string, 0, columnCount)
	for col := ColName; col < columnCount; col++ {
		value := m.cellValue(cat, col)
		if col == ColLifeSpan && !cat.HasUsefulLife {
			value = ""
		}
		focused := rowIdx == m.focusedRow && col == m.focusedCol

		if focused && m.state == StateEditing {
			cells = append(cells, editStyle.Render(pad(m.input.Value()+"▌", columnWidths[col])))
			continue
		}

		cell := pad(value, columnWidths[col])
		switch {
		case focused:
			cell = focusStyle.Render(cell)
		case !cat.Enabled:
			cell = disabledStyle.Render(cell)
		}
		cells = append(cells, cell)
	}

	amount := ""
	if row.Metrics.Valid {
		amount = footprint.FormatNumber(row.Amount(comp.UseGha), footprint.FractionMetrics)
	}

	return marker + " " + strings.Join(cells, " ") + "  " + pad(amount, 14)
}

func (m *Model) renderTotals(b *strings.Builder, comp footprint.Computation, params footprint.Parameters) {
	b.WriteString(totalsStyle.Render(fmt.Sprintf("Emissão total: %s t CO₂/ano   Pegada total: %s %s",
		footprint.FormatNumber(comp.TotalTon, footprint.FractionMetrics),
		footprint.FormatNumber(comp.Total(), footprint.FractionMetrics),
		params.FootprintUnit())))
	b.WriteString("\n")
	if comp.HasPerCapita {
		b.WriteString(fmt.Sprintf("Per capita: %s %s\n",
			footprint.FormatNumber(comp.PerCapita, footprint.FractionMetrics),
			params.PerCapitaUnit()))
	} else {
		b.WriteString("Per capita: informe a população (pegada param set population)\n")
	}
}

// pad truncates or right-pads a value to the column width.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
