package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"punchcard/internal/models"
)

// View renders the dashboard
func (m *DashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.state == stateAuth {
		return m.renderAuthForm()
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderTimerPanel())

	switch m.mode {
	case modeManualAdd:
		sections = append(sections, m.renderForm("ADD WORK SESSION"))
	case modeEdit:
		sections = append(sections, m.renderForm(fmt.Sprintf("EDIT SESSION #%d", m.editID)))
	case modeConfirmDelete:
		sections = append(sections, m.renderDeleteConfirm())
	}

	sections = append(sections, m.renderSessionTable())

	if m.message != "" {
		messageStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Width(m.width)
		sections = append(sections, messageStyle.Render(m.message))
	}

	sections = append(sections, m.renderHelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *DashboardModel) renderAuthForm() string {
	title := "Sign in"
	action := "sign up"
	if m.signupMode {
		title = "Sign up"
		action = "sign in"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))

	var b strings.Builder
	b.WriteString(titleStyle.Render("⏱  PUNCHCARD — " + title))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.authInputs[0].View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.authInputs[1].View())
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Italic(true)
	b.WriteString(helpStyle.Render(fmt.Sprintf("enter submit · tab switch field · ctrl+s %s instead · esc quit", action)))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *DashboardModel) renderHeader() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	userStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))

	email := ""
	if m.user != nil {
		email = m.user.Email
	}

	return headerStyle.Render("⏱  WORK DASHBOARD") + "  " + userStyle.Render(email)
}

func (m *DashboardModel) renderTimerPanel() string {
	if m.state == stateRunning && m.active != nil {
		clockStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentBright)).
			Bold(true)

		infoStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true)

		return fmt.Sprintf("\n%s  %s\n%s\n",
			clockStyle.Render("⏳ "+formatClock(m.elapsed)),
			infoStyle.Render("session running"),
			infoStyle.Render("Checked in at "+m.active.CheckIn.Local().Format("15:04:05")))
	}

	idleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText)).
		Italic(true)

	return "\n" + idleStyle.Render("No active session. Press s to start one.") + "\n"
}

func (m *DashboardModel) renderForm(title string) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Check-in"))
	b.WriteString("   ")
	b.WriteString(m.formInputs[0].View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Check-out"))
	b.WriteString("  ")
	b.WriteString(m.formInputs[1].View())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(0, 1).
		Render(b.String())
}

func (m *DashboardModel) renderDeleteConfirm() string {
	confirmStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorError)).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Padding(0, 1)

	return confirmStyle.Render(fmt.Sprintf("Are you sure you want to delete session #%d? (y/n)", m.deleteID))
}

func (m *DashboardModel) renderSessionTable() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
		return emptyStyle.Render("No work sessions yet.")
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Bold(true)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s %-22s %-22s %-9s %s", "ID", "CHECK-IN", "CHECK-OUT", "HOURS", "")))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder)).Render(strings.Repeat("─", min(m.width, 70))))
	b.WriteString("\n")

	var total float64
	for i, session := range m.sessions {
		total += session.Hours()
		b.WriteString(m.renderSessionRow(i, session))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder)).Render(strings.Repeat("─", min(m.width, 70))))
	b.WriteString("\n")
	totalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Bold(true)
	b.WriteString(totalStyle.Render(fmt.Sprintf("Total: %.2f hours across %d sessions", total, len(m.sessions))))

	return b.String()
}

func (m *DashboardModel) renderSessionRow(i int, session models.WorkSession) string {
	checkOut := "⏳ ongoing"
	hours := "⏳"
	if session.CheckOut != nil {
		checkOut = formatDateTime(session.CheckOut)
		hours = fmt.Sprintf("%.2f", session.Hours())
	}

	note := ""
	if session.ID == m.savingID {
		note = "(saving…)"
	}

	line := fmt.Sprintf("%-5d %-22s %-22s %-9s %s",
		session.ID, formatDateTime(&session.CheckIn), checkOut, hours, note)

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	if session.IsOpen() {
		style = style.Foreground(lipgloss.Color(ColorWarning))
	}
	if i == m.cursor {
		style = style.Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
		line = "› " + line
	} else {
		line = "  " + line
	}

	return style.Render(line)
}

func (m *DashboardModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Width(m.width)

	var help string
	switch {
	case m.mode == modeManualAdd || m.mode == modeEdit:
		help = "enter next/save · tab switch field · esc cancel"
	case m.mode == modeConfirmDelete:
		help = "y delete · n keep"
	case m.state == stateRunning:
		help = "e end session · ↑/↓ select · enter edit · d delete · l logout · q quit"
	default:
		help = "s start session · a add manually · ↑/↓ select · enter edit · d delete · l logout · q quit"
	}

	return "\n" + helpStyle.Render(help)
}
