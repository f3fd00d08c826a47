package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/cricbid/auctionctl/internal/session"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication credentials",
	Long: `Manage authentication credentials for the auction platform.

Tokens are stored in the auctionctl config directory with owner-only
permissions. An expired access token is refreshed transparently on the next
request; when the refresh token has also expired you are asked to login again.

Subcommands:
  login     Login with email and password
  logout    Logout and remove stored tokens
  register  Register a new bidder account
  status    Show current authentication status

Examples:
  auctionctl auth login --email owner@example.com
  auctionctl auth status
  auctionctl auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// authLoginCmd handles user login
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to the auction platform",
	Long: `Login to the auction platform with your email and password.

Credentials not supplied as flags are prompted for interactively.

Examples:
  auctionctl auth login
  auctionctl auth login --email owner@example.com --password mypass`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Value(&email),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&password),
			))
			if err := form.RunWithContext(cmd.Context()); err != nil {
				return err
			}
		}

		state, err := consoleSess.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		user := consoleSess.User()
		fmt.Printf("Logged in as %s (%s)\n", user.Email, state)
		if state == session.StateUser && user.TeamID != "" {
			fmt.Printf("Bidding for team %s\n", user.TeamID)
		}
		return nil
	},
}

// authLogoutCmd handles user logout
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and remove stored tokens",
	Long: `Logout and remove the locally stored token pair.

Logout is purely client-side: the platform has no logout endpoint and the
tokens simply age out on the server.

Examples:
  auctionctl auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !apiClient.HasSession() {
			fmt.Println("Not logged in.")
			return nil
		}
		if err := consoleSess.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out successfully.")
		return nil
	},
}

// authRegisterCmd creates a new bidder account
var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new bidder account",
	Long: `Register a new bidder account on the auction platform.

Examples:
  auctionctl auth register --email owner@example.com --name "Team Owner"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		name, _ := cmd.Flags().GetString("name")

		if email == "" || password == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Value(&email),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&password),
				huh.NewInput().
					Title("Name").
					Value(&name),
			))
			if err := form.RunWithContext(cmd.Context()); err != nil {
				return err
			}
		}

		if err := apiClient.RegisterAccount(cmd.Context(), email, password, name); err != nil {
			return err
		}
		fmt.Println("Account created. Use 'auctionctl auth login' to sign in.")
		return nil
	},
}

// authStatusCmd shows the current authentication state
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current authentication status",
	Long: `Show the current authentication status.

Reports who is logged in, their role, and when the stored access token
expires. The expiry is read from the token locally without contacting
the platform; the whoami lookup goes through the authenticated pipeline
and so also proves the session is still usable.

Examples:
  auctionctl auth status`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state := consoleSess.Bootstrap(cmd.Context())
		if state == session.StateAnonymous {
			fmt.Println("Not logged in.")
			fmt.Println()
			fmt.Println("Use 'auctionctl auth login' to sign in.")
			return nil
		}

		user := consoleSess.User()
		fmt.Printf("Logged in as:  %s\n", user.Email)
		fmt.Printf("Role:          %s\n", state)
		if user.TeamID != "" {
			fmt.Printf("Team:          %s\n", user.TeamID)
		}
		if exp, ok := tokenExpiry(credStore.Access()); ok {
			fmt.Printf("Token expires: %s (%s)\n", exp.Format(time.RFC1123), time.Until(exp).Round(time.Second))
		}
		return nil
	},
}

// tokenExpiry reads the exp claim from a JWT without verifying the signature.
// Display-only: the server remains the authority on token validity.
func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func init() {
	authLoginCmd.Flags().String("email", "", "account email")
	authLoginCmd.Flags().String("password", "", "account password")

	authRegisterCmd.Flags().String("email", "", "account email")
	authRegisterCmd.Flags().String("password", "", "account password")
	authRegisterCmd.Flags().String("name", "", "display name")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}
