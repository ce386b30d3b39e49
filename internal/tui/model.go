package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const helpText = "arrows/hjkl move · enter/space play · 1-9 cell · n new game · p players · q quit"

const (
	fieldPlayer1Name = iota
	fieldPlayer1Color
	fieldPlayer2Name
	fieldPlayer2Color
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Player 1 name",
	"Player 1 color",
	"Player 2 name",
	"Player 2 color",
}

// Session is what the terminal UI needs from the game manager.
type Session interface {
	ConfigurePlayers(form entity.PlayerForm) (entity.GameSnapshot, error)
	NewGame() (entity.GameSnapshot, error)
	MakeTurn(row, col int) (entity.GameSnapshot, tictactoe.MoveResult, error)
	Snapshot() (entity.GameSnapshot, error)
}

// Model is the bubbletea model of the hot-seat board and the player form.
type Model struct {
	logger  *slog.Logger
	session Session
	screen  *Screen

	cursorRow int
	cursorCol int
	notice    string

	editing bool
	inputs  []textinput.Model
	focus   int
	formErr string

	quitting bool
}

func New(logger *slog.Logger, session Session, screen *Screen) *Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		input := textinput.New()
		input.Prompt = "> "
		input.CharLimit = 32
		input.Width = 24
		input.Placeholder = fieldLabels[i]
		inputs[i] = input
	}

	return &Model{
		logger:    logger.With("component", "tui"),
		session:   session,
		screen:    screen,
		cursorRow: 1,
		cursorCol: 1,
		inputs:    inputs,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing {
			return m, m.updateInputs(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.editing {
		return m, m.updateForm(keyMsg)
	}

	return m, m.updateBoard(keyMsg)
}

func (m *Model) updateBoard(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	switch key {
	case "q":
		m.quitting = true
		return tea.Quit
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case "enter", " ", "space":
		m.play(m.cursorRow, m.cursorCol)
	case "n":
		m.notice = ""
		if _, err := m.session.NewGame(); err != nil {
			m.logger.Error("failed to start a new game", "error", err)
		}
	case "p":
		return m.openForm()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			cell := int(key[0] - '1')
			m.cursorRow = cell/tictactoe.BoardSize + 1
			m.cursorCol = cell%tictactoe.BoardSize + 1
			m.play(m.cursorRow, m.cursorCol)
		}
	}

	return nil
}

func (m *Model) moveCursor(dRow, dCol int) {
	m.cursorRow = clamp(m.cursorRow+dRow, 1, tictactoe.BoardSize)
	m.cursorCol = clamp(m.cursorCol+dCol, 1, tictactoe.BoardSize)
}

func (m *Model) play(row, col int) {
	// a disabled board ignores clicks
	if !m.screen.Enabled() {
		return
	}

	_, result, err := m.session.MakeTurn(row, col)
	if err != nil {
		m.logger.Error("failed to make a turn", "error", err)
		return
	}

	if result == tictactoe.MoveOccupied {
		m.notice = "That cell is taken."
		return
	}

	m.notice = ""
}

func (m *Model) openForm() tea.Cmd {
	snapshot, err := m.session.Snapshot()
	if err != nil {
		m.logger.Error("failed to read the game", "error", err)
		return nil
	}

	values := [fieldCount]string{}
	if snapshot.Player1 != nil {
		values[fieldPlayer1Name], values[fieldPlayer1Color] = snapshot.Player1.Name, snapshot.Player1.Color
	}
	if snapshot.Player2 != nil {
		values[fieldPlayer2Name], values[fieldPlayer2Color] = snapshot.Player2.Name, snapshot.Player2.Color
	}

	for i := range m.inputs {
		m.inputs[i].SetValue(values[i])
		m.inputs[i].Blur()
	}

	m.editing = true
	m.formErr = ""
	m.focus = fieldPlayer1Name

	return m.inputs[m.focus].Focus()
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return nil
	case "tab", "down":
		return m.focusField((m.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return m.focusField((m.focus + fieldCount - 1) % fieldCount)
	case "enter":
		m.submitForm()
		return nil
	}

	return m.updateInputs(msg)
}

func (m *Model) focusField(field int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = field

	return m.inputs[m.focus].Focus()
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	return cmd
}

func (m *Model) submitForm() {
	form := entity.PlayerForm{
		Player1Name:  m.inputs[fieldPlayer1Name].Value(),
		Player1Color: m.inputs[fieldPlayer1Color].Value(),
		Player2Name:  m.inputs[fieldPlayer2Name].Value(),
		Player2Color: m.inputs[fieldPlayer2Color].Value(),
	}

	if _, err := m.session.ConfigurePlayers(form); err != nil {
		m.formErr = "Could not save players: " + err.Error()
		return
	}

	m.closeForm()
	m.notice = ""
	m.cursorRow, m.cursorCol = 1, 1
}

func (m *Model) closeForm() {
	m.inputs[m.focus].Blur()
	m.editing = false
	m.formErr = ""
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Tic Tac Toe"))
	sb.WriteString("\n\n")

	if m.editing {
		sb.WriteString(m.formView())
	} else {
		sb.WriteString(m.boardView())
	}

	return sb.String()
}

func (m *Model) boardView() string {
	var sb strings.Builder

	status, color := m.screen.Status()
	statusStyle := StatusStyle
	if color != "" {
		statusStyle = statusStyle.Foreground(lipgloss.Color(color))
	}
	sb.WriteString(statusStyle.Render(status))
	sb.WriteString("\n")

	colors := m.markColors()
	board := m.screen.Board()

	rows := make([]string, 0, board.Rows)
	for row := 1; row <= board.Rows; row++ {
		cells := make([]string, 0, board.Cols)
		for col := 1; col <= board.Cols; col++ {
			cells = append(cells, m.cellView(board.At(row, col), row, col, colors))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	sb.WriteString("\n")

	if m.notice != "" {
		sb.WriteString(ErrorStyle.Render(m.notice))
		sb.WriteString("\n")
	}

	sb.WriteString(InfoStyle.Render(helpText))
	sb.WriteString("\n")

	return sb.String()
}

func (m *Model) cellView(mark entity.Marker, row, col int, colors map[entity.Marker]string) string {
	style := CellStyle
	switch {
	case !m.screen.Enabled():
		style = DisabledCellStyle
	case row == m.cursorRow && col == m.cursorCol:
		style = CursorCellStyle
	}

	text := string(mark)
	if mark == entity.EmptyCell {
		text = " "
	} else if color := colors[mark]; color != "" && m.screen.Enabled() {
		style = style.Foreground(lipgloss.Color(color))
	}

	return style.Render(text)
}

func (m *Model) markColors() map[entity.Marker]string {
	colors := map[entity.Marker]string{}

	snapshot, err := m.session.Snapshot()
	if err != nil {
		return colors
	}

	for _, player := range []*entity.Player{snapshot.Player1, snapshot.Player2} {
		if player != nil {
			colors[player.Mark] = player.Color
		}
	}

	return colors
}

func (m *Model) formView() string {
	var sb strings.Builder

	sb.WriteString(StatusStyle.Render("Players"))
	sb.WriteString("\n")

	for i := range m.inputs {
		sb.WriteString(LabelStyle.Render(fieldLabels[i]))
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n")
	}

	if m.formErr != "" {
		sb.WriteString("\n")
		sb.WriteString(ErrorStyle.Render(m.formErr))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(InfoStyle.Render("tab/up/down move · enter save · esc cancel"))
	sb.WriteString("\n")

	return sb.String()
}

// Editing reports whether the player form is open.
func (m *Model) Editing() bool {
	return m.editing
}

func (m *Model) Cursor() (int, int) {
	return m.cursorRow, m.cursorCol
}

func clamp(value, low, high int) int {
	return max(low, min(value, high))
}
