package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"punchcard/internal/models"
	"punchcard/internal/store"
)

func newTestModel(t *testing.T) *DashboardModel {
	t.Helper()
	m := NewDashboardModel()
	t.Cleanup(m.teardown)
	m.user = &models.User{ID: "user-1", Email: "alice@example.com"}
	m.state = stateIdle
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func closedSession(id uint, checkIn time.Time, hours float64) models.WorkSession {
	checkOut := checkIn.Add(time.Duration(hours * float64(time.Hour)))
	return models.WorkSession{
		ID:         id,
		UserID:     "user-1",
		CheckIn:    checkIn,
		CheckOut:   &checkOut,
		TotalHours: &hours,
	}
}

func TestSessionsLoadedMarksActive(t *testing.T) {
	m := newTestModel(t)
	checkIn := time.Now().Add(-30 * time.Minute)

	sessions := []models.WorkSession{
		closedSession(1, checkIn.Add(-24*time.Hour), 8),
		{ID: 2, UserID: "user-1", CheckIn: checkIn}, // open row
	}

	_, cmd := m.Update(sessionsLoadedMsg{sessions: sessions})

	require.Equal(t, stateRunning, m.state)
	require.NotNil(t, m.active)
	require.Equal(t, uint(2), m.active.ID)
	require.Equal(t, checkIn.Unix(), m.active.CheckIn.Unix())
	require.GreaterOrEqual(t, m.elapsed, 29*60)
	require.NotNil(t, cmd, "entering Running must start the tick")
}

func TestSessionsLoadedWithoutOpenRowStopsTimer(t *testing.T) {
	m := newTestModel(t)
	m.state = stateRunning
	open := models.WorkSession{ID: 7, UserID: "user-1", CheckIn: time.Now()}
	m.active = &open
	m.elapsed = 42

	_, _ = m.Update(sessionsLoadedMsg{sessions: []models.WorkSession{closedSession(7, time.Now().Add(-time.Hour), 1)}})

	require.Equal(t, stateIdle, m.state)
	require.Nil(t, m.active)
	require.Zero(t, m.elapsed)
}

func TestTickRecomputesElapsed(t *testing.T) {
	m := newTestModel(t)
	m.state = stateRunning
	open := models.WorkSession{ID: 1, UserID: "user-1", CheckIn: time.Now().Add(-10 * time.Second)}
	m.active = &open

	_, cmd := m.Update(tickMsg(time.Now()))

	require.GreaterOrEqual(t, m.elapsed, 10)
	require.NotNil(t, cmd, "tick must re-arm while running")

	m.state = stateIdle
	m.active = nil
	_, cmd = m.Update(tickMsg(time.Now()))
	require.Nil(t, cmd, "tick chain must stop once idle")
}

func TestManualAddRejectsInvalidDates(t *testing.T) {
	m := newTestModel(t)
	m.mode = modeManualAdd
	m.formInputs = newFormInputs("not-a-date", "2025-01-01T17:00")
	m.formFocus = 1

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Nil(t, cmd, "no request may be issued for invalid input")
	require.NotEmpty(t, m.message)
	require.Equal(t, modeManualAdd, m.mode)
}

func TestManualAddRejectsEndBeforeStart(t *testing.T) {
	m := newTestModel(t)
	m.mode = modeManualAdd
	m.formInputs = newFormInputs("2025-01-01T10:00", "2025-01-01T09:00")
	m.formFocus = 1

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Nil(t, cmd)
	require.Contains(t, m.message, "later than start")
}

func TestInlineEditAppliesOptimisticPatch(t *testing.T) {
	m := newTestModel(t)
	m.sessions = []models.WorkSession{
		closedSession(1, time.Date(2025, 1, 1, 9, 0, 0, 0, time.Local), 8),
		closedSession(2, time.Date(2025, 1, 2, 9, 0, 0, 0, time.Local), 8),
	}
	m.mode = modeEdit
	m.editID = 2
	m.formInputs = newFormInputs("2025-01-02T10:00", "2025-01-02T14:30")
	m.formFocus = 1

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// The in-memory row reflects the new values before the request resolves
	require.NotNil(t, cmd, "the update request must be issued")
	require.Equal(t, modeBrowse, m.mode)
	require.Equal(t, uint(2), m.savingID)

	patched := m.sessions[1]
	require.Equal(t, time.Date(2025, 1, 2, 10, 0, 0, 0, time.Local), patched.CheckIn)
	require.NotNil(t, patched.CheckOut)
	require.Equal(t, time.Date(2025, 1, 2, 14, 30, 0, 0, time.Local), *patched.CheckOut)
	require.NotNil(t, patched.TotalHours)
	require.InDelta(t, 4.5, *patched.TotalHours, 1e-9)

	// The other row is untouched
	require.InDelta(t, 8, *m.sessions[0].TotalHours, 1e-9)

	// Completion clears the saving mark and triggers the reconciling re-fetch
	_, cmd = m.Update(sessionUpdatedMsg{id: 2})
	require.Zero(t, m.savingID)
	require.NotNil(t, cmd)
}

func TestOpenRowIsNotEditable(t *testing.T) {
	m := newTestModel(t)
	m.state = stateRunning
	m.sessions = []models.WorkSession{{ID: 1, UserID: "user-1", CheckIn: time.Now()}}
	m.cursor = 0

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Nil(t, cmd)
	require.Equal(t, modeBrowse, m.mode)
	require.NotEmpty(t, m.message)
}

func TestEditSeedsFieldsFromRow(t *testing.T) {
	m := newTestModel(t)
	m.sessions = []models.WorkSession{closedSession(1, time.Date(2025, 1, 1, 9, 0, 0, 0, time.Local), 8.5)}
	m.cursor = 0

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, modeEdit, m.mode)
	require.Equal(t, uint(1), m.editID)
	require.Equal(t, "2025-01-01T09:00", m.formInputs[0].Value())
	require.Equal(t, "2025-01-01T17:30", m.formInputs[1].Value())
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m := newTestModel(t)
	m.sessions = []models.WorkSession{closedSession(3, time.Date(2025, 1, 1, 9, 0, 0, 0, time.Local), 8)}
	m.cursor = 0

	_, cmd := m.Update(keyRune('d'))
	require.Nil(t, cmd)
	require.Equal(t, modeConfirmDelete, m.mode)
	require.Equal(t, uint(3), m.deleteID)

	t.Run("decline issues no request", func(t *testing.T) {
		_, cmd := m.Update(keyRune('n'))
		require.Nil(t, cmd)
		require.Equal(t, modeBrowse, m.mode)
		require.Zero(t, m.deleteID)
	})

	t.Run("confirm issues the delete", func(t *testing.T) {
		_, _ = m.Update(keyRune('d'))
		_, cmd := m.Update(keyRune('y'))
		require.NotNil(t, cmd)
		require.Equal(t, modeBrowse, m.mode)
	})
}

func TestEndSessionStopsTimerImmediately(t *testing.T) {
	m := newTestModel(t)
	m.state = stateRunning
	open := models.WorkSession{ID: 5, UserID: "user-1", CheckIn: time.Now().Add(-time.Hour)}
	m.active = &open
	m.elapsed = 3600

	_, cmd := m.Update(keyRune('e'))

	require.NotNil(t, cmd, "the update request must be issued")
	require.Equal(t, stateIdle, m.state)
	require.Nil(t, m.active)
	require.Zero(t, m.elapsed)
}

func TestManualAddOnlyFromIdle(t *testing.T) {
	m := newTestModel(t)
	m.state = stateRunning
	m.active = &models.WorkSession{ID: 1, UserID: "user-1", CheckIn: time.Now()}

	_, cmd := m.Update(keyRune('a'))

	require.Nil(t, cmd)
	require.Equal(t, modeBrowse, m.mode)
	require.NotEmpty(t, m.message)
}

func TestSignedOutClearsIdentity(t *testing.T) {
	m := newTestModel(t)
	m.state = stateRunning
	m.sessions = []models.WorkSession{{ID: 1, UserID: "user-1", CheckIn: time.Now()}}
	m.active = &m.sessions[0]

	_, _ = m.Update(signedOutMsg{})

	require.Equal(t, stateAuth, m.state)
	require.Nil(t, m.user)
	require.Empty(t, m.sessions)
	require.Nil(t, m.active)
	require.Zero(t, m.elapsed)
}

func TestStaleFetchAfterLogoutIsIgnored(t *testing.T) {
	m := newTestModel(t)
	m.sessions = []models.WorkSession{closedSession(1, time.Date(2025, 1, 1, 9, 0, 0, 0, time.Local), 8)}

	// Logout completes while a fetch is still in flight
	_, _ = m.Update(signedOutMsg{})
	require.Equal(t, stateAuth, m.state)

	stale := []models.WorkSession{
		closedSession(1, time.Date(2025, 1, 1, 9, 0, 0, 0, time.Local), 8),
		{ID: 2, UserID: "user-1", CheckIn: time.Now()}, // open row
	}
	_, cmd := m.Update(sessionsLoadedMsg{sessions: stale})

	// The stale result belongs to nobody: no timer, no state change
	require.Nil(t, cmd)
	require.Equal(t, stateAuth, m.state)
	require.Nil(t, m.active)
	require.Empty(t, m.sessions)

	// Keys that need an identity stay inert instead of crashing
	m.state = stateIdle
	_, cmd = m.Update(keyRune('s'))
	require.Nil(t, cmd)
}

func TestAuthChangeDeliversIdentity(t *testing.T) {
	m := NewDashboardModel()
	t.Cleanup(m.teardown)

	user := &models.User{ID: "user-9", Email: "bob@example.com"}
	_, cmd := m.Update(authChangeMsg{event: store.AuthSignedIn, user: user})

	require.Equal(t, stateIdle, m.state)
	require.Equal(t, user, m.user)
	require.NotNil(t, cmd, "must re-arm the listener and fetch")

	_, _ = m.Update(authChangeMsg{event: store.AuthSignedOut})
	require.Equal(t, stateAuth, m.state)
	require.Nil(t, m.user)
}

func TestSessionTableShowsTotalHours(t *testing.T) {
	m := newTestModel(t)
	m.width = 80
	m.height = 24
	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)
	m.sessions = []models.WorkSession{
		closedSession(2, base.Add(24*time.Hour), 3.25),
		closedSession(1, base, 8),
	}

	table := m.renderSessionTable()
	require.Contains(t, table, "Total: 11.25 hours across 2 sessions")
}

func TestEmptySessionTableHasNoTotals(t *testing.T) {
	m := newTestModel(t)
	m.width = 80

	require.NotContains(t, m.renderSessionTable(), "Total:")
}
