package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"punchcard/internal/models"
	"punchcard/internal/parser"
	"punchcard/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add <check-in> <check-out>",
	Short: "Add a completed work session manually",
	Long: `Add a work session with both timestamps supplied.

Timestamps accept "YYYY-MM-DDTHH:mm[:ss]" or "YYYY-MM-DD HH:mm[:ss]"
(quote the argument when using a space). The check-out must be after the
check-in or the session is rejected.

Examples:
  punchcard add 2025-09-23T09:00 2025-09-23T17:30
  punchcard add "2025-09-23 09:00" "2025-09-23 17:30:00"`,
	Args: cobra.ExactArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		user := requireUser()
		if user == nil {
			return
		}

		checkIn, err := parser.ParseDateTime(args[0])
		if err != nil {
			fmt.Printf("⚠️  %v\n", err)
			return
		}
		checkOut, err := parser.ParseDateTime(args[1])
		if err != nil {
			fmt.Printf("⚠️  %v\n", err)
			return
		}
		if !checkOut.After(checkIn) {
			fmt.Println("⚠️  End time must be later than start time.")
			return
		}

		hours := checkOut.Sub(checkIn).Hours()
		session := models.WorkSession{
			UserID:     user.ID,
			CheckIn:    checkIn,
			CheckOut:   &checkOut,
			TotalHours: &hours,
		}
		if err := store.InsertSession(&session); err != nil {
			fmt.Printf("❌ Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Work session #%d saved (%.2f hours)\n", session.ID, hours)
	}),
}
