package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// playersCmd lists the auction player pool
var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List players and their auction outcomes",
	Long: `List all players in the auction pool with category, status, and the
winning team for sold players.

Examples:
  auctionctl players
  auctionctl players --status sold`,
	RunE: func(cmd *cobra.Command, args []string) error {
		statusFilter, _ := cmd.Flags().GetString("status")

		players, err := apiClient.Players(cmd.Context())
		if err != nil {
			return err
		}

		shown := 0
		for _, p := range players {
			if statusFilter != "" && p.Status != statusFilter {
				continue
			}
			shown++
			outcome := "-"
			switch {
			case p.FinalBid != nil:
				outcome = fmt.Sprintf("%.0f to %s", *p.FinalBid, p.TeamName)
			case p.BasePrice != nil:
				outcome = fmt.Sprintf("base %.0f", *p.BasePrice)
			}
			fmt.Printf("%-26s %-22s %-12s %-12s %s\n", p.ID, p.Name, p.Category, p.Status, outcome)
		}
		if shown == 0 {
			fmt.Println("No players found.")
		}
		return nil
	},
}

// teamsCmd lists teams and budgets
var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List teams and remaining budgets",
	RunE: func(cmd *cobra.Command, args []string) error {
		teams, err := apiClient.Teams(cmd.Context())
		if err != nil {
			return err
		}
		for _, t := range teams {
			fmt.Printf("%-26s %-22s %.0f\n", t.ID, t.Name, t.Budget)
		}
		return nil
	},
}

// statusCmd shows whether the auction is live and who is on the block
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the auction state and current player",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := apiClient.AuctionStatus(cmd.Context())
		if err != nil {
			return err
		}
		if !st.Active {
			fmt.Println("Auction is not running.")
			return nil
		}

		fmt.Println("Auction is live.")
		player, err := apiClient.CurrentPlayer(cmd.Context())
		if err != nil {
			return err
		}
		if player == nil {
			fmt.Println("No player on the block.")
			return nil
		}

		fmt.Printf("On the block: %s (%s)\n", player.Name, player.Category)
		if player.BasePrice != nil {
			fmt.Printf("Base price:   %.0f\n", *player.BasePrice)
		}
		return nil
	},
}

func init() {
	playersCmd.Flags().String("status", "", "filter by status: available, in_auction, sold")

	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(statusCmd)
}
