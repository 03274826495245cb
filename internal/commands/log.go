package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"punchcard/internal/store"
)

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"ls", "sessions"},
	Short:   "List your work sessions",
	Long:    "List your work sessions ordered by check-in time, oldest first. Use --desc for newest first.",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		user := requireUser()
		if user == nil {
			return
		}

		order := store.OrderAsc
		if desc, _ := cmd.Flags().GetBool("desc"); desc {
			order = store.OrderDesc
		}

		sessions, err := store.ListSessions(user.ID, order)
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		if len(sessions) == 0 {
			fmt.Println("No work sessions found. Use 'punchcard start' to check in.")
			return
		}

		// Print table header
		fmt.Printf("%-5s %-22s %-22s %s\n", "ID", "CHECK-IN", "CHECK-OUT", "HOURS")
		fmt.Println(strings.Repeat("-", 60))

		var total float64
		for _, session := range sessions {
			checkOut := "⏳ ongoing"
			hours := "⏳"
			if session.CheckOut != nil {
				checkOut = session.CheckOut.Local().Format("Jan 02, 2006 15:04")
				hours = fmt.Sprintf("%.2f", session.Hours())
			}
			total += session.Hours()

			fmt.Printf("%-5d %-22s %-22s %s\n",
				session.ID,
				session.CheckIn.Local().Format("Jan 02, 2006 15:04"),
				checkOut,
				hours)
		}

		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("Total: %.2f hours across %d sessions\n", total, len(sessions))
	}),
}

func init() {
	logCmd.Flags().Bool("desc", false, "Newest sessions first")
}
