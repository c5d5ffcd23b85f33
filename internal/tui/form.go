package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/storeadmin/internal/billboard"
	"github.com/muurk/storeadmin/internal/session"
	"github.com/muurk/storeadmin/internal/storeapi"
	"github.com/muurk/storeadmin/internal/ui"
	"github.com/muurk/storeadmin/internal/urls"
)

// actionDoneMsg reports that a dispatched form action returned.
type actionDoneMsg struct {
	action billboard.Action
}

// formKeyMap defines key bindings for the form screen
type formKeyMap struct {
	Submit key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Delete, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Delete, k.Quit}}
}

// FormConfig wires a FormModel to its collaborators.
type FormConfig struct {
	API         billboard.API
	StoreID     string
	Origin      string
	InitialData *storeapi.Billboard

	// Sync keeps the local registry current after an action. May be nil.
	Sync *session.PageSync
}

// FormModel is the interactive billboard form.
type FormModel struct {
	ctrl    *billboard.Controller
	router  *session.Router
	toaster *ui.Toaster

	input   textinput.Model
	spinner spinner.Model
	modal   AlertModal
	help    help.Model
	keys    formKeyMap

	fieldErr string
	done     bool

	Width  int
	Height int
}

// NewFormModel builds the form, its controller and its collaborators.
func NewFormModel(cfg FormConfig) FormModel {
	toaster := ui.NewToaster(io.Discard)

	var (
		onRefresh func()
		onStart   func(billboard.Action)
	)
	if cfg.Sync != nil {
		onRefresh = cfg.Sync.Refresh
		onStart = cfg.Sync.Begin
	}
	router := session.NewRouter(urls.BillboardsPage(cfg.StoreID), onRefresh)

	ctrl := billboard.NewController(billboard.Options{
		StoreID:     cfg.StoreID,
		Origin:      cfg.Origin,
		InitialData: cfg.InitialData,
		API:         cfg.API,
		Router:      router,
		Notifier:    toaster,
		OnStart:     onStart,
	})

	if cfg.Sync != nil && cfg.Sync.Label == nil {
		cfg.Sync.Label = func() string { return ctrl.Values().Label }
	}

	input := textinput.New()
	input.Placeholder = billboard.LabelPlaceholder
	input.CharLimit = 128
	input.Width = 40
	input.SetValue(ctrl.Values().Label)
	input.CursorEnd()
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ui.PrimaryColor)

	keys := formKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("enter", ctrl.Heading().ActionLabel),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}

	return FormModel{
		ctrl:    ctrl,
		router:  router,
		toaster: toaster,
		input:   input,
		spinner: s,
		modal:   NewAlertModal(),
		help:    help.New(),
		keys:    keys,
	}
}

// Controller exposes the form controller, mainly for inspection in tests.
func (m FormModel) Controller() *billboard.Controller {
	return m.ctrl
}

// Router exposes the router, mainly for inspection in tests.
func (m FormModel) Router() *session.Router {
	return m.router
}

// LastToast returns the most recent notification.
func (m FormModel) LastToast() (ui.Toast, bool) {
	return m.toaster.Last()
}

// Done reports whether the form navigated away (after a delete).
func (m FormModel) Done() bool {
	return m.done
}

// Init starts the cursor blink and spinner.
func (m FormModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles all messages for the form.
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case actionDoneMsg:
		// Controller state may have changed under us; resync the input.
		m.input.SetValue(m.ctrl.Values().Label)
		if msg.action == billboard.ActionDelete && m.router.Path() == urls.Root {
			m.done = true
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.ctrl.Gate().IsOpen {
			return m.updateGate(msg)
		}
		return m.updateForm(msg)
	}

	return m, nil
}

// updateForm handles keys while the form itself has focus.
func (m FormModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	loading := m.ctrl.Loading()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		if loading {
			return m, nil
		}
		return m.submit()

	case key.Matches(msg, m.keys.Delete):
		if loading {
			return m, nil
		}
		m.ctrl.RequestDelete()
		m.modal = NewAlertModal()
		return m, nil
	}

	if loading {
		// The input is disabled while a request is in flight.
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetLabel(m.input.Value())
	m.fieldErr = ""
	return m, cmd
}

// updateGate handles keys while the confirmation modal is open.
func (m FormModel) updateGate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var result GateResult
	m.modal, result = m.modal.Update(msg, m.ctrl.Loading())

	switch result {
	case GateClose:
		m.ctrl.CloseDelete()
	case GateConfirm:
		ctrl := m.ctrl
		return m, func() tea.Msg {
			ctrl.ConfirmDelete(context.Background())
			return actionDoneMsg{action: billboard.ActionDelete}
		}
	}
	return m, nil
}

// submit validates synchronously and dispatches the save.
func (m FormModel) submit() (tea.Model, tea.Cmd) {
	values := m.ctrl.Values()
	if err := values.Validate(); err != nil {
		if vErr, ok := err.(*billboard.ValidationError); ok {
			m.fieldErr = vErr.Message
		} else {
			m.fieldErr = err.Error()
		}
		return m, nil
	}

	m.fieldErr = ""
	ctrl := m.ctrl
	return m, func() tea.Msg {
		_ = ctrl.Submit(context.Background(), values)
		return actionDoneMsg{action: billboard.ActionSave}
	}
}

// View renders the form, with the confirmation modal on top when open.
func (m FormModel) View() string {
	width := m.Width
	if width == 0 {
		width = ui.GetTerminalWidth()
	}
	height := m.Height
	if height == 0 {
		height = 24
	}

	gate := m.ctrl.Gate()
	if gate.IsOpen {
		return RenderModal(m.modal.View(gate.Loading), width, height)
	}

	return RenderApplicationContainer(m.renderContent(width-8), m.help.View(m.keys), width, height)
}

func (m FormModel) renderContent(width int) string {
	heading := m.ctrl.Heading()
	loading := m.ctrl.Loading()

	title := ui.HeadingTitleStyle.Render(heading.Title)
	deleteBtn := DestructiveButtonStyle.Render("🗑 Delete")
	if loading {
		deleteBtn = ButtonStyle.Render("🗑 Delete")
	}
	title = lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", deleteBtn)

	inputStyle := FocusedInputStyle
	if loading {
		inputStyle = DisabledInputStyle
	}
	field := lipgloss.JoinVertical(lipgloss.Left,
		FieldLabelStyle.Render("Label"),
		inputStyle.Render(m.input.View()),
	)
	if m.fieldErr != "" {
		field = lipgloss.JoinVertical(lipgloss.Left, field, FieldErrorStyle.Render(m.fieldErr))
	}

	action := SelectedButtonStyle.Render(heading.ActionLabel)
	if loading {
		action = ButtonStyle.Render(m.spinner.View() + " " + heading.ActionLabel)
	}

	sections := []string{
		title,
		ui.HeadingDescriptionStyle.Render(heading.Description),
		SeparatorStyle.Render(strings.Repeat("─", max(width, 1))),
		field,
		action,
		SeparatorStyle.Render(strings.Repeat("─", max(width, 1))),
		ui.RenderAlert(m.ctrl.APIAlert(), width),
	}

	if toast, ok := m.toaster.Last(); ok {
		sections = append(sections, toast.Render())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
