// Package tui is the interactive terminal front-end of a tailoring session.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/cv-tailor/internal/notify"
	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/jonathan/cv-tailor/internal/workflow"
)

type tab int

const (
	tabResume tab = iota
	tabCoverLetter
	tabJob
)

var tabTitles = []string{"Resume", "Cover Letter", "Job"}

// jobField indexes the editable job fields on the Job tab
type jobField int

const (
	fieldCompanyProfile jobField = iota
	fieldJobDescription
	fieldOtherDetails
)

var jobFieldTitles = []string{"Company Profile", "Job Description", "Other Details"}

type promptKind int

const (
	promptNone promptKind = iota
	promptURL
	promptFile
)

// chromeHeight is the number of rows used by tabs, status bar, notifications and help
const chromeHeight = 7

type model struct {
	ctx    context.Context
	coord  *workflow.Coordinator
	bridge *bridge

	tab      tab
	field    jobField
	editing  bool
	prompt   promptKind
	input    textinput.Model
	editor   textarea.Model
	preview  viewport.Model
	spinner  spinner.Model
	notices  []notify.Notification
	width    int
	height   int
	ready    bool
	quitting bool
}

func newModel(ctx context.Context, coord *workflow.Coordinator, b *bridge) model {
	input := textinput.New()
	input.CharLimit = 2048

	editor := textarea.New()
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.Placeholder = "Press i to edit, or import a resume with f / p"

	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))

	m := model{
		ctx:     ctx,
		coord:   coord,
		bridge:  b,
		input:   input,
		editor:  editor,
		preview: viewport.New(80, 20),
		spinner: sp,
	}
	m.syncFromSession()
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForNotifications(m.ctx, m.bridge.notifications),
		waitForStatus(m.ctx, m.bridge.status),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case opDoneMsg:
		if msg.result.OK() && focusesBuffer(msg.result.Op) {
			m.editing = false
			m.editor.Blur()
			m.tab = tabResume
		}
		m.syncFromSession()
		return m, nil

	case notificationsMsg:
		m.notices = msg.items
		m.resize()
		return m, waitForNotifications(m.ctx, m.bridge.notifications)

	case statusMsg:
		if !msg.status.Busy() {
			m.syncFromSession()
		}
		return m, waitForStatus(m.ctx, m.bridge.status)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch {
		case m.prompt != promptNone:
			return m.updatePrompt(msg)
		case m.editing:
			return m.updateEditor(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	return m, nil
}

// focusesBuffer reports whether a successful op moves the session to a buffer tab
func focusesBuffer(op workflow.Op) bool {
	switch op {
	case workflow.OpOptimizeResume, workflow.OpGenerateCoverLetter,
		workflow.OpImportFile, workflow.OpImportClipboard, workflow.OpExportPDF:
		return true
	default:
		return false
	}
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := m.ctx
	coord := m.coord

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "1":
		m.switchTab(tabResume)
	case "2":
		m.switchTab(tabCoverLetter)
	case "3":
		m.switchTab(tabJob)
	case "tab":
		m.switchTab((m.tab + 1) % tab(len(tabTitles)))
	case "up", "k":
		if m.tab == tabJob && m.field > fieldCompanyProfile {
			m.field--
			m.syncFromSession()
		} else {
			m.preview.ScrollUp(1)
		}
	case "down", "j":
		if m.tab == tabJob && m.field < fieldOtherDetails {
			m.field++
			m.syncFromSession()
		} else {
			m.preview.ScrollDown(1)
		}
	case "i", "enter":
		m.startEditing()
		return m, textarea.Blink
	case "v":
		coord.ToggleViewMode()
		m.syncFromSession()
	case "u":
		m.openPrompt(promptURL, "Job posting URL: ", "https://")
		return m, textinput.Blink
	case "f":
		m.openPrompt(promptFile, "Resume file (PDF or image): ", "~/resume.pdf")
		return m, textinput.Blink
	case "p":
		return m, runOp(func() workflow.Result { return coord.ImportResumeClipboard(ctx) })
	case "o":
		return m, runOp(func() workflow.Result { return coord.OptimizeResume(ctx) })
	case "c":
		return m, runOp(func() workflow.Result { return coord.GenerateCoverLetter(ctx) })
	case "s":
		kind := m.documentKind()
		return m, runOp(func() workflow.Result { return coord.ExportFile(kind) })
	case "y":
		kind := m.documentKind()
		return m, runOp(func() workflow.Result { return coord.ExportClipboard(kind) })
	case "P":
		kind := m.documentKind()
		return m, runOp(func() workflow.Result { return coord.ExportPDF(ctx, kind) })
	case "x":
		if n := len(m.notices); n > 0 {
			coord.Notifications().Dismiss(m.notices[n-1].ID)
		}
	}
	return m, nil
}

func (m model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.editing = false
		m.editor.Blur()
		m.commitEditor()
		m.syncFromSession()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.commitEditor()
	return m, cmd
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil
	case "enter":
		value := m.input.Value()
		kind := m.prompt
		m.closePrompt()

		ctx, coord := m.ctx, m.coord
		if kind == promptURL {
			return m, runOp(func() workflow.Result { return coord.ExtractJobDetails(ctx, value) })
		}
		path := expandHome(value)
		return m, runOp(func() workflow.Result { return coord.ImportResumePath(ctx, path) })
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) openPrompt(kind promptKind, label, placeholder string) {
	m.prompt = kind
	m.input.Reset()
	m.input.Prompt = label
	m.input.Placeholder = placeholder
	m.input.Focus()
}

func (m *model) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
	m.input.Reset()
}

func (m *model) switchTab(t tab) {
	m.tab = t
	if kind, ok := m.tabKind(); ok {
		m.coord.SetActiveTab(kind)
	}
	m.syncFromSession()
}

// tabKind maps document tabs to buffer kinds; the Job tab has none
func (m *model) tabKind() (types.DocumentKind, bool) {
	switch m.tab {
	case tabResume:
		return types.KindResume, true
	case tabCoverLetter:
		return types.KindCoverLetter, true
	default:
		return "", false
	}
}

// documentKind is the buffer targeted by export keys; the Job tab exports the active buffer
func (m *model) documentKind() types.DocumentKind {
	if kind, ok := m.tabKind(); ok {
		return kind
	}
	return m.coord.Session().ActiveTab()
}

func (m *model) startEditing() {
	if m.tab != tabJob {
		m.coord.SetViewMode(types.ViewEditing)
	}
	m.syncFromSession()
	m.editing = true
	m.editor.Focus()
}

// commitEditor writes the editor text back to the session
func (m *model) commitEditor() {
	value := m.editor.Value()
	session := m.coord.Session()

	if kind, ok := m.tabKind(); ok {
		session.SetBuffer(kind, value)
		return
	}
	switch m.field {
	case fieldCompanyProfile:
		session.SetCompanyProfile(value)
	case fieldJobDescription:
		session.SetJobDescription(value)
	case fieldOtherDetails:
		session.SetOtherDetails(value)
	}
}

// syncFromSession reloads the visible text after operations and tab switches.
// Operations focus a buffer, so the tab follows the session's active tab.
func (m *model) syncFromSession() {
	snap := m.coord.Session().Snapshot()

	if m.tab != tabJob && !m.editing {
		if snap.ActiveTab == types.KindCoverLetter {
			m.tab = tabCoverLetter
		} else {
			m.tab = tabResume
		}
	}

	var text string
	switch m.tab {
	case tabResume:
		text = snap.Resume
	case tabCoverLetter:
		text = snap.CoverLetter
	case tabJob:
		text = []string{snap.CompanyProfile, snap.JobDescription, snap.OtherDetails}[m.field]
	}

	if !m.editing {
		m.editor.SetValue(text)
	}
	m.preview.SetContent(m.previewContent(snap, text))
}

func (m *model) previewContent(snap workflow.Snapshot, text string) string {
	if m.tab != tabJob {
		return renderPreview(text)
	}

	var sb strings.Builder
	values := []string{snap.CompanyProfile, snap.JobDescription, snap.OtherDetails}
	for i, title := range jobFieldTitles {
		style := fieldLabelStyle
		if jobField(i) == m.field {
			style = selectedFieldLabelStyle
		}
		sb.WriteString(style.Render(title))
		sb.WriteString("\n")
		value := values[i]
		if strings.TrimSpace(value) == "" {
			value = helpStyle.Render("(empty)")
		}
		sb.WriteString(value)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (m *model) resize() {
	w := max(m.width-2, 20)
	h := max(m.height-chromeHeight-len(m.notices), 5)
	m.editor.SetWidth(w)
	m.editor.SetHeight(h)
	m.preview.Width = w
	m.preview.Height = h
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	snap := m.coord.Session().Snapshot()
	sections := []string{m.renderTabs(snap), m.renderBody(snap), m.renderStatus(snap)}
	if notices := m.renderNotifications(); notices != "" {
		sections = append(sections, notices)
	}
	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m model) renderTabs(snap workflow.Snapshot) string {
	tabs := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if tab(i) == m.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	mode := "preview"
	if m.editing || (m.tab != tabJob && snap.ViewMode == types.ViewEditing) {
		mode = "edit"
	}
	tabs = append(tabs, helpStyle.Render("  ["+mode+"]"))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m model) renderBody(snap workflow.Snapshot) string {
	if m.editing {
		return editingPaneStyle.Render(m.editor.View())
	}
	if m.tab != tabJob && snap.ViewMode == types.ViewEditing {
		return paneStyle.Render(m.editor.View())
	}
	return paneStyle.Render(m.preview.View())
}

func (m model) renderStatus(snap workflow.Snapshot) string {
	var text string
	switch {
	case snap.Status.Busy():
		text = m.spinner.View() + " " + snap.Status.Label()
	case m.prompt != promptNone:
		text = m.input.View()
	default:
		text = "Ready"
	}
	return statusBarStyle.Width(max(m.width, 20)).Render(text)
}

func (m model) renderNotifications() string {
	lines := make([]string, 0, len(m.notices))
	for _, n := range m.notices {
		switch n.Severity {
		case notify.SeveritySuccess:
			lines = append(lines, successStyle.Render("✓ "+n.Text))
		case notify.SeverityError:
			lines = append(lines, errorStyle.Render("✗ "+n.Text))
		default:
			lines = append(lines, infoStyle.Render("• "+n.Text))
		}
	}
	return strings.Join(lines, "\n")
}

func (m model) renderFooter() string {
	if m.editing {
		return helpStyle.Render("esc: stop editing")
	}
	if m.prompt != promptNone {
		return helpStyle.Render("enter: confirm • esc: cancel")
	}
	return helpStyle.Render("u: job URL • f: import file • p: paste resume • o: optimize • c: cover letter • v: edit/preview\n" +
		"i: edit • s: save .md • y: copy • P: PDF • x: dismiss • 1-3/tab: switch • q: quit")
}
