package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wxconv/config"
	appmodel "wxconv/model"
	"wxconv/storage"
)

// statusFlashDuration is how long a status message stays on screen
var statusFlashDuration = 3 * time.Second

type AppView struct {
	// Reference to core data model
	dataModel *appmodel.Model

	// Window state
	width  int
	height int
	ready  bool

	screen screen

	// Converter screen
	valueInput textinput.Model
	focusField int

	// Weather screen
	cityInput       textinput.Model
	loadingSpinner  spinner.Model
	weatherRendered string
	weatherSource   string // markup weatherRendered was produced from

	// Status line flash
	statusMsg   string
	statusErr   bool
	statusFlash int

	showHelp  bool
	showAbout bool

	confirmation ConfirmationState

	// History modal
	showHistoryOffer   bool
	showHistory        bool
	historyEntries     []storage.Entry
	filteredHistory    []storage.Entry
	historyFilterInput textinput.Model
	selectedHistoryIdx int

	// Acknowledge modal (for warnings/errors requiring only acknowledgement)
	showAcknowledgeModal  bool
	acknowledgeModalTitle string
	acknowledgeModalMsg   string
	acknowledgeModalType  ModalType
}

func NewAppView(dataModel *appmodel.Model) AppView {
	valueInput := textinput.New()
	valueInput.Prompt = ""
	valueInput.Placeholder = "Enter a value"
	valueInput.CharLimit = 64
	valueInput.Width = 24
	valueInput.Focus()

	cityInput := textinput.New()
	cityInput.Prompt = "City: "
	cityInput.Placeholder = "e.g. Paris"
	cityInput.CharLimit = 100
	cityInput.Width = 32

	historyFilterInput := textinput.New()
	historyFilterInput.Prompt = "Filter: "
	historyFilterInput.CharLimit = 64

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(successColor)

	return AppView{
		dataModel:          dataModel,
		screen:             screenConverter,
		valueInput:         valueInput,
		focusField:         focusValue,
		cityInput:          cityInput,
		loadingSpinner:     s,
		historyFilterInput: historyFilterInput,
	}
}

func (a AppView) Init() tea.Cmd {
	return textinput.Blink
}

func (a AppView) View() string {
	if !a.ready {
		return "Loading wxconv..."
	}

	if a.showAcknowledgeModal {
		return RenderAcknowledgeModal(
			a.acknowledgeModalTitle,
			a.acknowledgeModalMsg,
			a.acknowledgeModalType,
			a.width,
			a.height,
		)
	}

	if a.confirmation.Active {
		return RenderConfirmationModal(a.confirmation, a.width, a.height)
	}

	if a.showHistoryOffer {
		return a.renderHistoryOffer()
	}

	// Help sits on top so it can be peeked at from any modal
	if a.showHelp {
		return a.renderHelpModal(a.width, a.height)
	}

	if a.showHistory {
		return a.renderHistoryModal()
	}

	if a.showAbout {
		return a.renderAboutModal(a.width, a.height)
	}

	title := AppStyle.Render("wxconv") + TitleStyle.Render(fmt.Sprintf(" - %s", a.screen))
	if a.dataModel.HistoryEnabled() {
		title += DimStyle.Render(" | history on")
	}

	var body string
	switch a.screen {
	case screenWeather:
		body = a.renderWeather()
	default:
		body = a.renderConverter()
	}

	bodyHeight := a.height - 4
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		body,
		a.renderStatusLine(),
		a.renderStatusBar(),
	)
}

func (a AppView) renderStatusLine() string {
	if a.statusMsg == "" {
		return ""
	}
	if a.statusErr {
		return StatusErrStyle.Render(a.statusMsg)
	}
	return StatusOKStyle.Render(a.statusMsg)
}

func (a AppView) renderStatusBar() string {
	kb := a.dataModel.Config.Keybindings
	descStyle := lipgloss.NewStyle().Foreground(successColor).Bold(true)

	pairs := []string{
		kb.DisplayActionKey("quit"), "Quit",
		kb.DisplayActionKey("help"), "Help",
		kb.DisplayActionKey("switch_view"), "Switch view",
	}
	if a.screen == screenConverter {
		pairs = append(pairs,
			"Enter", "Convert",
			kb.DisplayActionKey("reset"), "Reset",
			kb.DisplayActionKey("copy_result"), "Copy",
		)
	} else {
		pairs = append(pairs, "Enter", "Get weather")
	}

	var bar string
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			bar += "  "
		}
		bar += pairs[i] + " " + descStyle.Render(pairs[i+1])
	}
	return StatusStyle.Render(bar)
}

// flash shows msg in the status line and schedules its removal
func (a *AppView) flash(msg string, isErr bool) tea.Cmd {
	a.statusMsg = msg
	a.statusErr = isErr
	a.statusFlash++
	return tea.Tick(statusFlashDuration, func(time.Time) tea.Msg {
		return flashTickMsg{}
	})
}

// showAcknowledge opens a modal that only needs Enter to dismiss
func (a *AppView) showAcknowledge(title, msg string, modalType ModalType) {
	a.showAcknowledgeModal = true
	a.acknowledgeModalTitle = title
	a.acknowledgeModalMsg = msg
	a.acknowledgeModalType = modalType
}

func (a *AppView) closeAllModals() {
	a.showHelp = false
	a.showAbout = false
	a.showHistory = false
	a.showHistoryOffer = false
	a.showAcknowledgeModal = false
	a.confirmation = ConfirmationState{}

	if a.historyFilterInput.Focused() {
		a.historyFilterInput.Blur()
	}
}

// debugf logs through the shared debug logger when it is enabled
func debugf(format string, args ...any) {
	if config.DebugLog != nil {
		config.DebugLog.Debugf(format, args...)
	}
}
