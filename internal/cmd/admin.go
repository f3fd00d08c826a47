package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var auctionCmd = &cobra.Command{
	Use:   "auction",
	Short: "Control the auction lifecycle (admin)",
	Long: `Control the auction lifecycle. All subcommands require an admin account.

Subcommands:
  start        Open the auction
  stop         Close the auction
  next         Advance to the next available player
  set-current  Put a specific player on the block

Examples:
  auctionctl auction start
  auctionctl auction next`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var auctionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the auction",
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := apiClient.StartAuction(cmd.Context())
		if err != nil {
			return err
		}
		if msg == "" {
			msg = "Auction started."
		}
		fmt.Println(msg)
		return nil
	},
}

var auctionStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Close the auction",
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := apiClient.StopAuction(cmd.Context())
		if err != nil {
			return err
		}
		if msg == "" {
			msg = "Auction stopped."
		}
		fmt.Println(msg)
		return nil
	},
}

var auctionNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Advance to the next available player",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := apiClient.NextPlayer(cmd.Context())
		if err != nil {
			return err
		}
		if name == "" {
			fmt.Println("No players remaining.")
			return nil
		}
		fmt.Printf("Now on the block: %s\n", name)
		return nil
	},
}

var auctionSetCurrentCmd = &cobra.Command{
	Use:   "set-current <player-id>",
	Short: "Put a specific player on the block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := apiClient.SetCurrentPlayer(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Current player set.")
		return nil
	},
}

// pendingCmd lists players still waiting for a base price
var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List players awaiting a base price (admin)",
	Long: `List publicly registered players that have no base price yet.

A player enters the auction pool only after an admin assigns a base price
with 'auctionctl set-base-price'.

Examples:
  auctionctl pending`,
	RunE: func(cmd *cobra.Command, args []string) error {
		players, err := apiClient.PendingPlayers(cmd.Context())
		if err != nil {
			return err
		}
		if len(players) == 0 {
			fmt.Println("No pending players.")
			return nil
		}
		for _, p := range players {
			fmt.Printf("%-26s %-14s %s\n", p.ID, p.Category, p.Name)
		}
		return nil
	},
}

// setBasePriceCmd assigns a base price to a pending player
var setBasePriceCmd = &cobra.Command{
	Use:   "set-base-price <player-id> <price>",
	Short: "Assign a base price to a pending player (admin)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil || price <= 0 {
			return fmt.Errorf("invalid price %q", args[1])
		}
		if err := apiClient.SetBasePrice(cmd.Context(), args[0], price); err != nil {
			return err
		}
		fmt.Printf("Base price set to %.0f\n", price)
		return nil
	},
}

func init() {
	auctionCmd.AddCommand(auctionStartCmd)
	auctionCmd.AddCommand(auctionStopCmd)
	auctionCmd.AddCommand(auctionNextCmd)
	auctionCmd.AddCommand(auctionSetCurrentCmd)
	rootCmd.AddCommand(auctionCmd)
	rootCmd.AddCommand(pendingCmd)
	rootCmd.AddCommand(setBasePriceCmd)
}
