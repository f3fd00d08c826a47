package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/cricbid/auctionctl/internal/errors"
	"github.com/cricbid/auctionctl/internal/session"
)

// bidCmd submits a bid for the player on the block
var bidCmd = &cobra.Command{
	Use:   "bid <player-id> <amount>",
	Short: "Place a bid on a player",
	Long: `Place a bid on a player on behalf of your team.

Bidders bound to a team always bid for that team; the --team flag is only
honored for accounts without a team binding. The amount is validated locally
before anything is sent, but the platform has the final say on budgets and
auction state. After an accepted bid the auction status, team budgets, and
player list are refreshed and the new budget is printed.

Examples:
  auctionctl bid 665f1c2ab90d3c2f68a11a01 500
  auctionctl bid 665f1c2ab90d3c2f68a11a01 500 --team 665f1c2ab90d3c2f68a11b07`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		playerID := args[0]
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[1])
		}
		teamID, _ := cmd.Flags().GetString("team")

		if state := consoleSess.Bootstrap(cmd.Context()); state == session.StateAnonymous {
			return errors.New(errors.ErrCodeNotLoggedIn, "Please login first").
				WithSuggestion("run 'auctionctl auth login'")
		}

		// Team-bound bidders are locked to their own team.
		if locked, editable := consoleSess.TeamSelection(); !editable {
			teamID = locked
		}

		refetch, err := consoleSess.PlaceBid(cmd.Context(), playerID, teamID, amount)
		if err != nil {
			return err
		}

		fmt.Printf("Bid accepted: %.0f\n", amount)
		for _, t := range refetch.Teams {
			if t.ID == teamID || (teamID == "" && consoleSess.User() != nil && t.ID == consoleSess.User().TeamID) {
				fmt.Printf("Remaining budget for %s: %.0f\n", t.Name, t.Budget)
			}
		}
		return nil
	},
}

// soldCmd finalizes a sale at the current highest bid
var soldCmd = &cobra.Command{
	Use:   "sold <player-id>",
	Short: "Mark a player as sold (admin)",
	Long: `Mark a player as sold at the current highest bid.

Asks for confirmation before sending anything; pass --yes to skip the
prompt in scripts.

Examples:
  auctionctl sold 665f1c2ab90d3c2f68a11a01
  auctionctl sold 665f1c2ab90d3c2f68a11a01 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		playerID := args[0]
		skipConfirm, _ := cmd.Flags().GetBool("yes")

		consoleSess.Bootstrap(cmd.Context())

		confirm := func() bool {
			if skipConfirm {
				return true
			}
			var ok bool
			form := huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title("Mark this player as sold at the current highest bid?").
					Value(&ok),
			))
			if err := form.RunWithContext(cmd.Context()); err != nil {
				return false
			}
			return ok
		}

		players, sold, err := consoleSess.MarkSold(cmd.Context(), playerID, confirm)
		if err != nil {
			return err
		}
		if !sold {
			fmt.Println("Cancelled.")
			return nil
		}

		for _, p := range players {
			if p.ID == playerID {
				if p.FinalBid != nil {
					fmt.Printf("%s sold to %s for %.0f\n", p.Name, p.TeamName, *p.FinalBid)
				} else {
					fmt.Printf("%s sold\n", p.Name)
				}
				return nil
			}
		}
		fmt.Println("Player sold.")
		return nil
	},
}

func init() {
	bidCmd.Flags().String("team", "", "team to bid for (ignored for team-bound accounts)")
	soldCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	rootCmd.AddCommand(bidCmd)
	rootCmd.AddCommand(soldCmd)
}
