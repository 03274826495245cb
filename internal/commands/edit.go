package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"punchcard/internal/parser"
	"punchcard/internal/store"
)

var editCmd = &cobra.Command{
	Use:   "edit <id> <check-in> <check-out>",
	Short: "Edit a closed work session",
	Long: `Rewrite the timestamps of a closed session and recompute its hours.

The running session cannot be edited; check out first. Timestamps accept the
same formats as 'punchcard add'.

Usage:
  punchcard edit 42 2025-09-23T09:00 2025-09-23T17:30`,
	Args: cobra.ExactArgs(3),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		user := requireUser()
		if user == nil {
			return
		}

		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}

		session, err := store.GetSession(uint(id))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session.UserID != user.ID {
			fmt.Printf("Error: session #%d not found\n", id)
			return
		}
		if session.IsOpen() {
			fmt.Println("⚠️  The running session cannot be edited. Stop it first with 'punchcard stop'.")
			return
		}

		checkIn, err := parser.ParseDateTime(args[1])
		if err != nil {
			fmt.Printf("⚠️  %v\n", err)
			return
		}
		checkOut, err := parser.ParseDateTime(args[2])
		if err != nil {
			fmt.Printf("⚠️  %v\n", err)
			return
		}
		if !checkOut.After(checkIn) {
			fmt.Println("⚠️  End time must be later than start time.")
			return
		}

		hours := checkOut.Sub(checkIn).Hours()
		patch := store.SessionPatch{CheckIn: &checkIn, CheckOut: &checkOut, TotalHours: &hours}
		if err := store.UpdateSession(uint(id), patch); err != nil {
			fmt.Printf("❌ Error updating session: %v\n", err)
			return
		}

		fmt.Printf("✅ Session #%d updated (%.2f hours)\n", id, hours)
	}),
}
