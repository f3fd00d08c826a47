package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/cricbid/auctionctl/internal/auction"
)

// registerPlayerCmd submits a public player registration
var registerPlayerCmd = &cobra.Command{
	Use:   "register-player",
	Short: "Register yourself as an auction player",
	Long: `Register as a player in the auction pool. Open to any logged-in user.

The registration goes to the admin queue; the player enters the auction once
an admin assigns a base price. Fields not supplied as flags are prompted for
interactively.

Examples:
  auctionctl register-player
  auctionctl register-player --name "A. Khan" --category Bowler --age 24`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := auction.PlayerRegistration{}
		reg.FullName, _ = cmd.Flags().GetString("name")
		reg.Category, _ = cmd.Flags().GetString("category")
		reg.Role, _ = cmd.Flags().GetString("role")
		reg.BattingStyle, _ = cmd.Flags().GetString("batting-style")
		reg.BowlingStyle, _ = cmd.Flags().GetString("bowling-style")
		reg.Bio, _ = cmd.Flags().GetString("bio")
		reg.Age, _ = cmd.Flags().GetInt("age")

		if reg.FullName == "" || reg.Role == "" || reg.Category == "" {
			var ageStr string
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Full name").
						Value(&reg.FullName),
					huh.NewSelect[string]().
						Title("Affiliation").
						Options(
							huh.NewOption("Faculty", "Faculty"),
							huh.NewOption("Student", "Student"),
							huh.NewOption("Alumni", "Alumni"),
						).
						Value(&reg.Role),
					huh.NewSelect[string]().
						Title("Category").
						Options(
							huh.NewOption("Batsman", "Batsman"),
							huh.NewOption("Bowler", "Bowler"),
							huh.NewOption("All-rounder", "All-rounder"),
							huh.NewOption("Wicket-keeper", "Wicket-keeper"),
						).
						Value(&reg.Category),
					huh.NewInput().
						Title("Age").
						Value(&ageStr),
				),
				huh.NewGroup(
					huh.NewInput().
						Title("Batting style").
						Value(&reg.BattingStyle),
					huh.NewInput().
						Title("Bowling style").
						Value(&reg.BowlingStyle),
					huh.NewText().
						Title("Bio").
						Value(&reg.Bio),
				),
			)
			if err := form.RunWithContext(cmd.Context()); err != nil {
				return err
			}
			if ageStr != "" {
				age, err := strconv.Atoi(ageStr)
				if err != nil {
					return fmt.Errorf("invalid age %q", ageStr)
				}
				reg.Age = age
			}
		}

		if err := apiClient.RegisterPlayer(cmd.Context(), reg); err != nil {
			return err
		}
		fmt.Println("Registration submitted. An admin will assign your base price.")
		return nil
	},
}

func init() {
	registerPlayerCmd.Flags().String("name", "", "player full name")
	registerPlayerCmd.Flags().String("category", "", "player category")
	registerPlayerCmd.Flags().String("role", "", "affiliation role: Faculty, Student, or Alumni")
	registerPlayerCmd.Flags().String("batting-style", "", "batting style")
	registerPlayerCmd.Flags().String("bowling-style", "", "bowling style")
	registerPlayerCmd.Flags().String("bio", "", "short bio")
	registerPlayerCmd.Flags().Int("age", 0, "player age")

	rootCmd.AddCommand(registerPlayerCmd)
}
