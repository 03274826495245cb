package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"punchcard/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"ui"},
	Short:   "Open the interactive work dashboard",
	Long: `Open the interactive dashboard: sign in, start and stop the timer,
and browse, edit or delete your session history.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if err := tui.RunDashboard(); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}
