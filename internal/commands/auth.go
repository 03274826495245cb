package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"punchcard/internal/store"
)

var signupCmd = &cobra.Command{
	Use:   "signup <email>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		password, err := readPassword("Password: ")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		confirm, err := readPassword("Confirm password: ")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if password != confirm {
			fmt.Println("❌ Passwords do not match.")
			return
		}

		user, err := store.SignUp(args[0], password)
		if err != nil {
			fmt.Printf("❌ Sign up error: %v\n", err)
			return
		}
		fmt.Printf("✅ Account created. Signed in as %s\n", user.Email)
	}),
}

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		password, err := readPassword("Password: ")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		user, err := store.SignIn(args[0], password)
		if err != nil {
			fmt.Printf("❌ Sign in error: %v\n", err)
			return
		}
		fmt.Printf("✅ Signed in as %s\n", user.Email)
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if err := store.SignOut(); err != nil {
			fmt.Printf("❌ Sign out error: %v\n", err)
			return
		}
		fmt.Println("👋 See you later!")
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		user := requireUser()
		if user == nil {
			return
		}
		fmt.Println(user.Email)
	}),
}

// readPassword prompts for a password without echoing it. Falls back to a
// plain line read when stdin is not a terminal (tests, pipes).
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		bytes, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(bytes), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
