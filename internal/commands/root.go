package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"punchcard/internal/logging"
	"punchcard/internal/models"
	"punchcard/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "punchcard",
	Short: "A CLI work-time tracker",
	Long: `punchcard tracks your work sessions from the terminal.
Check in, check out, and review or edit your session history.`,
}

// initDB initializes logging and the database and panics on error
func initDB() {
	if dir, err := store.DataDir(); err == nil {
		_ = logging.Setup(dir) // diagnostics only, never fatal
	}
	if err := store.Initialize(); err != nil {
		panic(err) // For now, panic on DB init failure
	}
}

// withDB wraps a command function to initialize the database first
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initDB()
		fn(cmd, args)
	}
}

// requireUser returns the signed-in user, or prints a hint and returns nil
func requireUser() *models.User {
	user, err := store.CurrentUser()
	if err != nil {
		fmt.Println("⚠️  Not signed in. Use 'punchcard login' or 'punchcard signup' first.")
		return nil
	}
	return user
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
