// Package ui implements the interactive terminal interface: a template
// picker with category tabs, a dynamic parameter form, and a result view
// with markdown rendering and export actions.
package ui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/musekit/muse/internal/clipboard"
	"github.com/musekit/muse/internal/controller"
	"github.com/musekit/muse/internal/export"
	"github.com/musekit/muse/internal/models"
	"github.com/musekit/muse/internal/service"
)

// createGlamourRenderer creates a glamour renderer with improved contrast
// handling.
func createGlamourRenderer(wordWrap int) (*glamour.TermRenderer, error) {
	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		return glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(wordWrap),
		)
	}

	profile := termenv.ColorProfile()

	var styleOption glamour.TermRendererOption
	if lipgloss.HasDarkBackground() {
		switch profile {
		case termenv.TrueColor, termenv.ANSI256:
			styleOption = glamour.WithStandardStyle("dark")
		default:
			styleOption = glamour.WithAutoStyle()
		}
	} else {
		switch profile {
		case termenv.TrueColor, termenv.ANSI256:
			styleOption = glamour.WithStandardStyle("light")
		default:
			styleOption = glamour.WithAutoStyle()
		}
	}

	return glamour.NewTermRenderer(
		styleOption,
		glamour.WithColorProfile(profile),
		glamour.WithWordWrap(wordWrap),
	)
}

// templateItem adapts a template to the bubbles list item interface.
type templateItem struct {
	tmpl *models.Template
}

func (i templateItem) FilterValue() string { return i.tmpl.Name + " " + i.tmpl.Description }
func (i templateItem) Title() string       { return i.tmpl.Name }
func (i templateItem) Description() string { return i.tmpl.Description }

// ViewMode represents the current view in the TUI.
type ViewMode int

const (
	ViewPicker ViewMode = iota
	ViewForm
	ViewResult
	ViewInfo
)

// Messages for async operations.

type generateDoneMsg struct {
	result *models.GenerationResult
	err    error
}

type statusClearMsg struct{}

// generateCmd runs the generation call off the event loop.
func generateCmd(gen controller.Generator, prompt, systemInstruction string) tea.Cmd {
	return func() tea.Msg {
		result, err := gen.Generate(context.Background(), prompt, systemInstruction)
		return generateDoneMsg{result: result, err: err}
	}
}

func clearStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// KeyMap defines all key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Back     key.Binding
	Quit     key.Binding
	Help     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Submit   key.Binding
	Copy     key.Binding
	Export   key.Binding
	EditForm key.Binding
	Info     key.Binding
}

// ShortHelp returns keybindings to show in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns keybindings to show in the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.Back, k.Next, k.Prev},
		{k.Submit, k.Copy, k.Export, k.EditForm},
		{k.Info, k.Help, k.Quit},
	}
}

func defaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev category")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next category")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "generate")),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Export:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save to file")),
		EditForm: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit inputs")),
		Info:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "methodology")),
	}
}

// Model represents the TUI application state.
type Model struct {
	service *service.Service
	ctrl    *controller.Controller
	gen     controller.Generator
	model   string

	viewMode ViewMode

	// UI components
	templateList list.Model
	form         *ParamForm
	viewport     viewport.Model
	spin         spinner.Model
	help         help.Model
	keys         KeyMap

	glamourRenderer *glamour.TermRenderer

	categories  []models.Category
	categoryIdx int

	width  int
	height int

	statusMsg string
}

// NewModel creates the TUI model.
func NewModel(svc *service.Service, gen controller.Generator, modelName string) (*Model, error) {
	initializeColors()
	initializeStyles()

	renderer, err := createGlamourRenderer(80)
	if err != nil {
		return nil, fmt.Errorf("failed to create glamour renderer: %w", err)
	}

	ctrl := controller.New(svc.Catalog(), gen)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StyleLoading

	m := &Model{
		service:         svc,
		ctrl:            ctrl,
		gen:             gen,
		model:           modelName,
		templateList:    newTemplateList(ctrl.Templates()),
		spin:            sp,
		help:            help.New(),
		keys:            defaultKeyMap(),
		glamourRenderer: renderer,
		categories:      svc.Categories(),
		viewport:        viewport.New(80, 20),
	}
	return m, nil
}

func newTemplateList(templates []*models.Template) list.Model {
	items := make([]list.Item, len(templates))
	for i, tmpl := range templates {
		items[i] = templateItem{tmpl: tmpl}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	return l
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
		m.templateList.SetSize(msg.Width-4, msg.Height-8)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.State() == controller.StateGenerating {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case generateDoneMsg:
		m.ctrl.CompleteSubmit(msg.result, msg.err)
		if m.ctrl.State() == controller.StateSuccess {
			m.viewMode = ViewResult
			m.renderResult()
		}
		return m, nil

	case statusClearMsg:
		m.statusMsg = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewPicker:
		return m.handlePickerKey(msg)
	case ViewForm:
		return m.handleFormKey(msg)
	case ViewResult:
		return m.handleResultKey(msg)
	case ViewInfo:
		return m.handleInfoKey(msg)
	}
	return m, nil
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list is filtering, it owns every keystroke.
	if m.templateList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.templateList, cmd = m.templateList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.switchCategory(-1)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.switchCategory(1)
		return m, nil

	case key.Matches(msg, m.keys.Info):
		m.viewMode = ViewInfo
		m.renderInfo()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		item, ok := m.templateList.SelectedItem().(templateItem)
		if !ok {
			return m, nil
		}
		m.ctrl.SelectTemplate(item.tmpl.ID)
		m.form = NewParamForm(item.tmpl, m.ctrl.Values())
		m.viewMode = ViewForm
		return m, nil
	}

	var cmd tea.Cmd
	m.templateList, cmd = m.templateList.Update(msg)
	return m, cmd
}

func (m *Model) switchCategory(delta int) {
	n := len(m.categories)
	m.categoryIdx = (m.categoryIdx + delta + n) % n
	m.ctrl.SelectCategory(m.categories[m.categoryIdx])
	m.templateList = newTemplateList(m.ctrl.Templates())
	m.templateList.SetSize(m.width-4, m.height-8)
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.viewMode = ViewPicker
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.form.NextField()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.form.PrevField()
		return m, nil

	case key.Matches(msg, m.keys.Submit),
		msg.Type == tea.KeyEnter && !m.form.FocusedMultiline():
		return m.submit()
	}

	cmd, id, raw := m.form.Update(msg)
	if id != "" {
		m.ctrl.SetValue(id, raw)
	}
	return m, cmd
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	built, ok := m.ctrl.BeginSubmit()
	if !ok {
		return m, nil
	}
	return m, tea.Batch(
		m.spin.Tick,
		generateCmd(m.gen, built.Prompt, built.SystemInstruction),
	)
}

func (m *Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.EditForm):
		m.viewMode = ViewForm
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if result := m.ctrl.Result(); result != nil {
			if !clipboard.Available() {
				m.statusMsg = "No clipboard utility found (install xclip, xsel, or wl-clipboard)"
				return m, clearStatusCmd()
			}
			if err := export.CopyResult(result); err != nil {
				m.statusMsg = "Copy failed: " + err.Error()
			} else {
				m.statusMsg = "Copied to clipboard!"
			}
			return m, clearStatusCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m.exportResult()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) exportResult() (tea.Model, tea.Cmd) {
	result := m.ctrl.Result()
	tmpl := m.ctrl.Template()
	if result == nil || tmpl == nil {
		return m, nil
	}
	path := export.DefaultFilename(tmpl)
	if err := export.WriteFile(path, tmpl, m.ctrl.Values(), result, m.model); err != nil {
		m.statusMsg = "Export failed: " + err.Error()
	} else {
		m.statusMsg = "Saved to " + path
	}
	return m, clearStatusCmd()
}

func (m *Model) handleInfoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		m.viewMode = ViewPicker
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// renderResult fills the viewport with the markdown-rendered generation.
func (m *Model) renderResult() {
	result := m.ctrl.Result()
	if result == nil {
		return
	}

	content := result.Text
	if len(result.Sources) > 0 {
		content += "\n\n## Sources\n"
		for _, src := range result.Sources {
			title := src.Title
			if title == "" {
				title = src.URL
			}
			content += fmt.Sprintf("\n- [%s](%s)", title, src.URL)
		}
	}

	rendered, err := m.glamourRenderer.Render(content)
	if err != nil {
		rendered = content
	}
	m.viewport.SetContent(rendered)
	m.viewport.GotoTop()
}

func (m *Model) renderInfo() {
	rendered, err := m.glamourRenderer.Render(promptEngineeringInfo)
	if err != nil {
		rendered = promptEngineeringInfo
	}
	m.viewport.SetContent(rendered)
	m.viewport.GotoTop()
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.viewMode {
	case ViewPicker:
		return m.pickerView()
	case ViewForm:
		return m.formView()
	case ViewResult:
		return m.resultView()
	case ViewInfo:
		return m.infoView()
	}
	return ""
}

func (m *Model) pickerView() string {
	tabs := make([]string, len(m.categories))
	for i, cat := range m.categories {
		if i == m.categoryIdx {
			tabs[i] = StyleTabActive.Render(string(cat))
		} else {
			tabs[i] = StyleTabInactive.Render(string(cat))
		}
	}

	header := StyleTitle.Render("Muse") + "  " +
		lipgloss.JoinHorizontal(lipgloss.Left, tabs...)
	footer := StyleFormHelp.Render("enter: select • ←/→: category • /: filter • i: methodology • q: quit")
	if m.help.ShowAll {
		footer = m.help.View(m.keys)
	}

	return StyleContainer.Render(
		header + "\n\n" + m.templateList.View() + "\n" + footer)
}

func (m *Model) formView() string {
	tmpl := m.ctrl.Template()
	if tmpl == nil || m.form == nil {
		return StyleContainer.Render(StyleError.Render("No template selected"))
	}

	var body string
	body += StyleTitle.Render(tmpl.Name) + "\n"
	body += StyleMuted.Render(tmpl.Description) + "\n\n"
	body += m.form.View(m.ctrl.FieldErrors())

	switch m.ctrl.State() {
	case controller.StateGenerating:
		body += "\n" + m.spin.View() + StyleLoading.Render("Generating...")
	case controller.StateFailed:
		if failure := m.ctrl.Failure(); failure != "" {
			body += "\n" + StyleError.Render(failure)
		}
	}

	body += "\n\n" + StyleFormHelp.Render("tab: next field • ctrl+s: generate • esc: back")
	return StyleContainer.Render(body)
}

func (m *Model) resultView() string {
	tmpl := m.ctrl.Template()
	var body string
	if tmpl != nil {
		body += StyleTitle.Render(tmpl.Name) + StyleSuccess.Render(" ✓ generated") + "\n"
	}
	body += StyleContentBox.Render(m.viewport.View())
	if m.statusMsg != "" {
		body += "\n" + StyleStatusBanner.Render(m.statusMsg)
	}
	body += "\n" + StyleFormHelp.Render("c: copy • s: save to file • e: edit inputs • esc: back • q: quit")
	return StyleContainer.Render(body)
}

func (m *Model) infoView() string {
	body := StyleTitle.Render("Prompt Engineering Methodology") + "\n"
	body += StyleContentBox.Render(m.viewport.View())
	body += "\n" + StyleFormHelp.Render("esc: back")
	return StyleContainer.Render(body)
}
