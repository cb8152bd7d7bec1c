package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/mindguard/internal/cli/formatter"
	"github.com/alexanderramin/mindguard/internal/domain"
)

// shellState tracks which interaction state the shell is in.
type shellState int

const (
	stateEditing   shellState = iota // textarea focused, awaiting input
	stateAnalyzing                   // classification in flight
)

// analyzedMsg carries the outcome of an async analyze call.
type analyzedMsg struct {
	analysis *domain.Analysis
	err      error
}

// exportedMsg carries the outcome of an async export call.
type exportedMsg struct {
	path string
	err  error
}

// shellModel is the bubbletea Model for the interactive journaling shell.
type shellModel struct {
	input   textarea.Model
	spinner spinner.Model
	width   int

	app   *App
	state shellState

	// rendered panels, refreshed after each successful analyze
	resultPanel  string
	trendPanel   string
	historyPanel string

	statusLine string
	quitting   bool
}

// newShellModel creates a new bubbletea shell model.
func newShellModel(app *App) shellModel {
	ta := textarea.New()
	ta.Placeholder = "Example: I feel overwhelmed with school and haven't been sleeping well..."
	ta.Focus()
	ta.SetHeight(5)
	ta.CharLimit = 2000

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return shellModel{
		input:   ta,
		spinner: sp,
		app:     app,
		state:   stateEditing,
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(msg.Width - 4)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyCtrlS:
			if m.state == stateEditing {
				return m.startAnalyze()
			}
			return m, nil
		case tea.KeyCtrlE:
			if m.state == stateEditing {
				return m, m.exportCmd()
			}
			return m, nil
		}

	case analyzedMsg:
		return m.finishAnalyze(msg)

	case exportedMsg:
		if msg.err != nil {
			m.statusLine = formatter.StyleRed.Render(describeExportError(msg.err).Error())
		} else {
			m.statusLine = formatter.StyleGreen.Render("PDF report saved as " + msg.path)
		}
		return m, nil

	case spinner.TickMsg:
		if m.state == stateAnalyzing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.state == stateEditing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("Take care of yourself.") + "\n"
	}

	var b strings.Builder

	b.WriteString(formatter.Header("MindGuard - Daily Reflection"))
	b.WriteString("\n\n")

	if m.state == stateAnalyzing {
		b.WriteString(m.spinner.View())
		b.WriteString(formatter.Dim(" analyzing..."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(formatter.Dim("ctrl+s analyze  ctrl+e export  ctrl+c quit"))
		b.WriteString("\n")
	}

	if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteString("\n")
	}

	if m.resultPanel != "" {
		b.WriteString("\n")
		b.WriteString(m.resultPanel)
		b.WriteString("\n")
	}
	if m.trendPanel != "" {
		b.WriteString("\n")
		b.WriteString(m.trendPanel)
		b.WriteString("\n")
	}
	if m.historyPanel != "" {
		b.WriteString("\n")
		b.WriteString(m.historyPanel)
		b.WriteString("\n")
	}

	return b.String()
}

// ── actions ──────────────────────────────────────────────────────────────────

func (m shellModel) startAnalyze() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		m.statusLine = formatter.StyleYellow.Render("Please enter how you're feeling.")
		return m, nil
	}

	m.state = stateAnalyzing
	m.statusLine = ""

	analyze := func() tea.Msg {
		analysis, err := m.app.Analysis.Analyze(context.Background(), text)
		return analyzedMsg{analysis: analysis, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, analyze)
}

func (m shellModel) finishAnalyze(msg analyzedMsg) (tea.Model, tea.Cmd) {
	m.state = stateEditing

	if msg.err != nil {
		m.statusLine = formatter.StyleRed.Render(describeAnalyzeError(msg.err).Error())
		return m, nil
	}

	m.input.Reset()
	m.statusLine = ""
	m.resultPanel = formatter.FormatAnalysis(msg.analysis)
	m.refreshJournalPanels()
	return m, nil
}

// refreshJournalPanels re-renders the trend and history views from the
// full journal. Reads are idempotent: no append, no change in output.
func (m *shellModel) refreshJournalPanels() {
	entries, err := m.app.Journal.All(context.Background())
	if err != nil || len(entries) == 0 {
		return
	}

	scores := make([]int, len(entries))
	for i, e := range entries {
		scores[i] = e.RiskScore
	}
	m.trendPanel = formatter.RenderBox("Emotional Trend", formatter.RenderTrend(scores, 8))
	m.historyPanel = formatter.RenderBox("Reflection History", formatter.FormatHistoryTable(entries))
}

func (m shellModel) exportCmd() tea.Cmd {
	return func() tea.Msg {
		err := m.app.Report.ExportPDF(context.Background(), defaultReportPath)
		return exportedMsg{path: defaultReportPath, err: err}
	}
}
