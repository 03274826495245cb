package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"punchcard/internal/store"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a work session",
	Long: `Delete a work session by ID. Asks for confirmation unless --yes is set.

Usage:
  punchcard rm 42
  punchcard rm 42 --yes`,
	Args: cobra.ExactArgs(1),
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

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Printf("Are you sure you want to delete session #%d? [y/N] ", id)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return
			}
		}

		if err := store.DeleteSession(uint(id)); err != nil {
			fmt.Printf("❌ Error deleting session: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Session #%d deleted\n", id)
	}),
}

func init() {
	rmCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
