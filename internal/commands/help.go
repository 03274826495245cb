package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for punchcard",
	Long:  `Display detailed help for all punchcard commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("punchcard %s (commit %s, built %s)\n", version, commit, date)
	},
}

func showCustomHelp() {
	fmt.Print(`
██████╗ ██╗   ██╗███╗   ██╗ ██████╗██╗  ██╗
██╔══██╗██║   ██║████╗  ██║██╔════╝██║  ██║
██████╔╝██║   ██║██╔██╗ ██║██║     ███████║
██╔═══╝ ██║   ██║██║╚██╗██║██║     ██╔══██║
██║     ╚██████╔╝██║ ╚████║╚██████╗██║  ██║
╚═╝      ╚═════╝ ╚═╝  ╚═══╝ ╚═════╝╚═╝  ╚═╝

punchcard - CLI Work-Time Tracker

ACCOUNT:

  signup <email>          Create an account (prompts for password)
  login <email>           Sign in (prompts for password)
  logout                  Sign out
  whoami                  Show the signed-in account

TRACKING:

  start                   Check in and start the timer
  stop                    Check out and close the running session
  status                  Show the running session, if any

HISTORY:

  log                     List your work sessions
    --desc                Newest first

  add <in> <out>          Add a completed session manually
  edit <id> <in> <out>    Rewrite a closed session's timestamps
  rm <id>                 Delete a session
    -y, --yes             Skip the confirmation prompt

DASHBOARD:

  dashboard               Interactive TUI: live timer, inline edit, delete

    Quick actions:
      ↑/↓           Navigate sessions
      s / e         Start / end the session
      a             Add a session manually
      enter         Edit the selected session
      d             Delete the selected session
      l             Logout
      q             Quit

Timestamps accept "2025-09-23T18:30", "2025-09-23 18:30" or the same with
seconds. Data lives in ~/.punchcard (override with PUNCHCARD_HOME).
`)
}
