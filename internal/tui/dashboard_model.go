package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"punchcard/internal/models"
	"punchcard/internal/parser"
	"punchcard/internal/store"
)

// dashState is the top-level state of the dashboard over the active session
type dashState int

const (
	stateAuth    dashState = iota // not signed in, showing the auth form
	stateIdle                     // signed in, no open session
	stateRunning                  // signed in, one open session, timer ticking
)

// listMode is the sub-mode over the session list
type listMode int

const (
	modeBrowse listMode = iota
	modeManualAdd
	modeEdit
	modeConfirmDelete
)

// DashboardModel is the TUI model for the work dashboard. It owns the
// in-memory session list mirrored from the store; the list is fully
// refreshed after every mutating action, except the inline-edit path which
// patches it optimistically first.
type DashboardModel struct {
	width  int
	height int

	state dashState
	mode  listMode

	user     *models.User
	sessions []models.WorkSession

	// Timer state
	active  *models.WorkSession
	elapsed int // seconds, recomputed each tick

	// List state
	cursor   int
	savingID uint // row with an in-flight inline-edit update, 0 = none
	deleteID uint // row pending delete confirmation

	// Auth form state
	authInputs []textinput.Model // email, password
	authFocus  int
	signupMode bool

	// Manual-add / inline-edit form state
	formInputs []textinput.Model // check-in, check-out
	formFocus  int
	editID     uint

	message string

	// Identity-change events pushed by the store subscription
	authCh      chan authChangeMsg
	unsubscribe func()
}

// Messages

// tickMsg is sent every second while a session is running
type tickMsg time.Time

type authChangeMsg struct {
	event store.AuthEvent
	user  *models.User
}

type authResultMsg struct {
	user   *models.User
	signup bool
	err    error
}

type sessionsLoadedMsg struct {
	sessions []models.WorkSession
	err      error
}

type sessionStartedMsg struct {
	session *models.WorkSession
	err     error
}

type sessionEndedMsg struct{ err error }

type sessionSavedMsg struct{ err error }

type sessionUpdatedMsg struct {
	id  uint
	err error
}

type sessionDeletedMsg struct{ err error }

type signedOutMsg struct{ err error }

// NewDashboardModel creates the dashboard model and subscribes to
// identity-change events. The subscription is released by teardown.
func NewDashboardModel() *DashboardModel {
	m := &DashboardModel{
		authCh:     make(chan authChangeMsg, 8),
		authInputs: newAuthInputs(),
		formInputs: newFormInputs("", ""),
		state:      stateAuth,
	}

	m.unsubscribe = store.OnAuthChange(func(event store.AuthEvent, user *models.User) {
		select {
		case m.authCh <- authChangeMsg{event: event, user: user}:
		default: // never block the store on a slow UI
		}
	})

	return m
}

// teardown releases the identity subscription. Called on every exit path.
func (m *DashboardModel) teardown() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func newAuthInputs() []textinput.Model {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[0].Placeholder = "email"
	inputs[0].CharLimit = 100
	inputs[0].Focus()

	inputs[1].Placeholder = "password"
	inputs[1].CharLimit = 100
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '•'

	return inputs
}

func newFormInputs(checkIn, checkOut string) []textinput.Model {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 30
		inputs[i].CharLimit = 25
		inputs[i].Placeholder = "2025-09-23T18:30"
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}
	inputs[0].SetValue(checkIn)
	inputs[0].Focus()
	inputs[1].SetValue(checkOut)
	return inputs
}

// Init restores a persisted identity if one exists and starts listening for
// identity changes
func (m *DashboardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForAuthChange(m.authCh), textinput.Blink}

	if user, err := store.CurrentUser(); err == nil {
		m.user = user
		m.state = stateIdle
		cmds = append(cmds, fetchSessionsCmd(user.ID))
	}

	return tea.Batch(cmds...)
}

// Commands — every store round trip runs as a tea.Cmd goroutine so the
// render loop never blocks on the database

func waitForAuthChange(ch chan authChangeMsg) tea.Cmd {
	return func() tea.Msg { return <-ch }
}

func fetchSessionsCmd(userID string) tea.Cmd {
	return func() tea.Msg {
		sessions, err := store.ListSessions(userID, store.OrderAsc)
		return sessionsLoadedMsg{sessions: sessions, err: err}
	}
}

func authCmd(signup bool, email, password string) tea.Cmd {
	return func() tea.Msg {
		var user *models.User
		var err error
		if signup {
			user, err = store.SignUp(email, password)
		} else {
			user, err = store.SignIn(email, password)
		}
		return authResultMsg{user: user, signup: signup, err: err}
	}
}

func startSessionCmd(userID string) tea.Cmd {
	return func() tea.Msg {
		session, err := store.StartSession(userID)
		return sessionStartedMsg{session: session, err: err}
	}
}

func endSessionCmd(id uint, checkOut time.Time, hours float64) tea.Cmd {
	return func() tea.Msg {
		err := store.UpdateSession(id, store.SessionPatch{CheckOut: &checkOut, TotalHours: &hours})
		return sessionEndedMsg{err: err}
	}
}

func insertSessionCmd(userID string, checkIn, checkOut time.Time, hours float64) tea.Cmd {
	return func() tea.Msg {
		session := models.WorkSession{
			UserID:     userID,
			CheckIn:    checkIn,
			CheckOut:   &checkOut,
			TotalHours: &hours,
		}
		return sessionSavedMsg{err: store.InsertSession(&session)}
	}
}

func updateSessionCmd(id uint, checkIn, checkOut time.Time, hours float64) tea.Cmd {
	return func() tea.Msg {
		err := store.UpdateSession(id, store.SessionPatch{
			CheckIn:    &checkIn,
			CheckOut:   &checkOut,
			TotalHours: &hours,
		})
		return sessionUpdatedMsg{id: id, err: err}
	}
}

func deleteSessionCmd(id uint) tea.Cmd {
	return func() tea.Msg {
		return sessionDeletedMsg{err: store.DeleteSession(id)}
	}
}

func signOutCmd() tea.Cmd {
	return func() tea.Msg {
		return signedOutMsg{err: store.SignOut()}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.state != stateRunning || m.active == nil {
			return m, nil
		}
		m.elapsed = m.active.ElapsedSeconds(time.Now())
		return m, tickCmd()

	case authChangeMsg:
		return m.handleAuthChange(msg)

	case authResultMsg:
		return m.handleAuthResult(msg)

	case sessionsLoadedMsg:
		return m.handleSessionsLoaded(msg)

	case sessionStartedMsg:
		if msg.err != nil {
			m.message = "❌ Error starting session: " + msg.err.Error()
			return m, nil
		}
		m.active = msg.session
		m.elapsed = 0
		m.state = stateRunning
		m.message = ""
		return m, tea.Batch(tickCmd(), fetchSessionsCmd(m.user.ID))

	case sessionEndedMsg:
		if msg.err != nil {
			m.message = "❌ Error ending session: " + msg.err.Error()
		} else {
			m.message = "✅ Session ended."
		}
		if m.user == nil {
			return m, nil
		}
		return m, fetchSessionsCmd(m.user.ID)

	case sessionSavedMsg:
		if msg.err != nil {
			m.message = "❌ Error: " + msg.err.Error()
		} else {
			m.message = "✅ Work session saved successfully!"
		}
		if m.user == nil {
			return m, nil
		}
		return m, fetchSessionsCmd(m.user.ID)

	case sessionUpdatedMsg:
		if m.savingID == msg.id {
			m.savingID = 0
		}
		if msg.err != nil {
			// The optimistic patch stays; the re-fetch reconciles it
			m.message = "❌ Error updating session: " + msg.err.Error()
		} else {
			m.message = "✅ Session updated successfully!"
		}
		if m.user == nil {
			return m, nil
		}
		return m, fetchSessionsCmd(m.user.ID)

	case sessionDeletedMsg:
		if msg.err != nil {
			m.message = "❌ Error deleting session: " + msg.err.Error()
		} else {
			m.message = "✅ Session deleted."
		}
		if m.user == nil {
			return m, nil
		}
		return m, fetchSessionsCmd(m.user.ID)

	case signedOutMsg:
		if msg.err != nil {
			m.message = "❌ Sign out error: " + msg.err.Error()
			return m, nil
		}
		m.clearIdentity()
		m.message = "👋 See you later!"
		return m, textinput.Blink

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *DashboardModel) handleAuthChange(msg authChangeMsg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{waitForAuthChange(m.authCh)}

	if msg.user != nil {
		m.user = msg.user
		if m.state == stateAuth {
			m.state = stateIdle
		}
		cmds = append(cmds, fetchSessionsCmd(msg.user.ID))
	} else {
		m.clearIdentity()
	}

	return m, tea.Batch(cmds...)
}

func (m *DashboardModel) handleAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if msg.signup {
			m.message = "❌ Sign up error: " + msg.err.Error()
		} else {
			m.message = "❌ Sign in error: " + msg.err.Error()
		}
		return m, nil
	}

	m.user = msg.user
	m.state = stateIdle
	m.message = "✅ Signed in as " + msg.user.Email
	return m, fetchSessionsCmd(msg.user.ID)
}

func (m *DashboardModel) handleSessionsLoaded(msg sessionsLoadedMsg) (tea.Model, tea.Cmd) {
	// A fetch may resolve after logout cleared the identity; its result
	// belongs to nobody and must not restart the timer
	if m.user == nil {
		return m, nil
	}
	if msg.err != nil {
		m.message = "❌ Error fetching work sessions: " + msg.err.Error()
		return m, nil
	}

	m.sessions = msg.sessions
	if m.cursor >= len(m.sessions) {
		m.cursor = len(m.sessions) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	// The first row without a check-out is the active session
	var open *models.WorkSession
	for i := range m.sessions {
		if m.sessions[i].IsOpen() {
			s := m.sessions[i]
			open = &s
			break
		}
	}

	if open == nil {
		if m.state == stateRunning {
			m.state = stateIdle
		}
		m.active = nil
		m.elapsed = 0
		return m, nil
	}

	wasRunning := m.state == stateRunning
	m.active = open
	m.elapsed = open.ElapsedSeconds(time.Now())
	m.state = stateRunning
	if !wasRunning {
		return m, tickCmd()
	}
	return m, nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.state == stateAuth {
		return m.handleAuthKey(msg)
	}

	switch m.mode {
	case modeManualAdd, modeEdit:
		return m.handleFormKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m *DashboardModel) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.authInputs[m.authFocus].Blur()
		m.authFocus = (m.authFocus + 1) % len(m.authInputs)
		m.authInputs[m.authFocus].Focus()
		return m, textinput.Blink

	case "ctrl+s":
		m.signupMode = !m.signupMode
		return m, nil

	case "enter":
		email := m.authInputs[0].Value()
		password := m.authInputs[1].Value()
		if email == "" || password == "" {
			m.message = "⚠️ Email and password are required."
			return m, nil
		}
		return m, authCmd(m.signupMode, email, password)

	case "esc":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
	return m, cmd
}

func (m *DashboardModel) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.sessions)-1 {
			m.cursor++
		}
		return m, nil

	case "s":
		if m.state != stateIdle || m.user == nil {
			return m, nil
		}
		m.message = ""
		return m, startSessionCmd(m.user.ID)

	case "e":
		if m.state != stateRunning || m.active == nil {
			return m, nil
		}
		// Timer stops now, whatever the update outcome
		checkOut := time.Now()
		hours := checkOut.Sub(m.active.CheckIn).Hours()
		id := m.active.ID
		m.state = stateIdle
		m.active = nil
		m.elapsed = 0
		return m, endSessionCmd(id, checkOut, hours)

	case "a":
		if m.state != stateIdle {
			m.message = "⚠️ End the running session before adding one manually."
			return m, nil
		}
		m.mode = modeManualAdd
		m.formInputs = newFormInputs("", "")
		m.formFocus = 0
		m.message = ""
		return m, textinput.Blink

	case "enter":
		if len(m.sessions) == 0 {
			return m, nil
		}
		row := m.sessions[m.cursor]
		if row.IsOpen() {
			m.message = "⚠️ The running session cannot be edited."
			return m, nil
		}
		m.mode = modeEdit
		m.editID = row.ID
		m.formInputs = newFormInputs(parser.ToInputValue(&row.CheckIn), parser.ToInputValue(row.CheckOut))
		m.formFocus = 0
		m.message = ""
		return m, textinput.Blink

	case "d", "x":
		if len(m.sessions) == 0 {
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.deleteID = m.sessions[m.cursor].ID
		return m, nil

	case "l":
		return m, signOutCmd()
	}

	return m, nil
}

func (m *DashboardModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel discards the field state without contacting the store
		m.mode = modeBrowse
		m.editID = 0
		return m, nil

	case "tab", "shift+tab", "up", "down":
		m.formInputs[m.formFocus].Blur()
		m.formFocus = (m.formFocus + 1) % len(m.formInputs)
		m.formInputs[m.formFocus].Focus()
		return m, textinput.Blink

	case "enter":
		if m.formFocus == 0 {
			m.formInputs[0].Blur()
			m.formFocus = 1
			m.formInputs[1].Focus()
			return m, textinput.Blink
		}
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

// submitForm validates the form fields and issues the insert or update.
// Validation failures surface a message and issue no request.
func (m *DashboardModel) submitForm() (tea.Model, tea.Cmd) {
	start, errStart := parser.ParseDateTime(m.formInputs[0].Value())
	end, errEnd := parser.ParseDateTime(m.formInputs[1].Value())
	if errStart != nil || errEnd != nil {
		m.message = "⚠️ Invalid dates. Use a format like 2025-09-23T18:30 or 2025-09-23 18:30:00."
		return m, nil
	}
	if !end.After(start) {
		m.message = "⚠️ End time must be later than start time."
		return m, nil
	}

	hours := end.Sub(start).Hours()

	if m.mode == modeEdit {
		// Optimistic update: patch the row locally, mark it saving, and let
		// the re-fetch after the round trip reconcile with the store
		for i := range m.sessions {
			if m.sessions[i].ID == m.editID {
				checkOut := end
				totalHours := hours
				m.sessions[i].CheckIn = start
				m.sessions[i].CheckOut = &checkOut
				m.sessions[i].TotalHours = &totalHours
			}
		}
		m.savingID = m.editID
		m.mode = modeBrowse
		id := m.editID
		m.editID = 0
		return m, updateSessionCmd(id, start, end, hours)
	}

	m.mode = modeBrowse
	return m, insertSessionCmd(m.user.ID, start, end, hours)
}

func (m *DashboardModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.deleteID
		m.deleteID = 0
		m.mode = modeBrowse
		return m, deleteSessionCmd(id)
	default:
		// Declining is not an error; no request is issued
		m.deleteID = 0
		m.mode = modeBrowse
		return m, nil
	}
}

// clearIdentity drops everything owned on behalf of the signed-in user:
// timer, session list, active pointer
func (m *DashboardModel) clearIdentity() {
	m.user = nil
	m.sessions = nil
	m.active = nil
	m.elapsed = 0
	m.cursor = 0
	m.savingID = 0
	m.state = stateAuth
	m.mode = modeBrowse
	m.authInputs = newAuthInputs()
	m.authFocus = 0
	m.signupMode = false
}
