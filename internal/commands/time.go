package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"punchcard/internal/store"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Check in and start tracking time",
	Long: `Check in and start a new work session.

Examples:
  punchcard start            # Check in now
  punchcard dashboard        # Watch the running timer interactively`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		user := requireUser()
		if user == nil {
			return
		}

		session, err := store.StartSession(user.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("⏱️  Checked in. Session #%d started.\n", session.ID)
		fmt.Printf("Started at: %s\n", session.CheckIn.Format("15:04:05"))
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Check out and stop tracking time",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		user := requireUser()
		if user == nil {
			return
		}

		session, err := store.StopOpenSession(user.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		duration := session.CheckOut.Sub(session.CheckIn)
		fmt.Printf("⏹️  Checked out. Session #%d closed.\n", session.ID)
		fmt.Printf("Session duration: %s (%.2f hours)\n", formatDuration(duration), session.Hours())
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current time tracking status",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		user := requireUser()
		if user == nil {
			return
		}

		session, err := store.FindOpenSession(user.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if session == nil {
			fmt.Println("No active work session")
			return
		}

		elapsed := time.Since(session.CheckIn)
		fmt.Printf("⏱️  Session #%d running\n", session.ID)
		fmt.Printf("Checked in at: %s\n", session.CheckIn.Format("15:04:05"))
		fmt.Printf("Elapsed time: %s\n", formatDuration(elapsed))
	}),
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}
