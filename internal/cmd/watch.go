package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cricbid/auctionctl/internal/tui"
)

// watchCmd runs the read-only auction viewer
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the auction read-only",
	Long: `Follow the auction in a read-only terminal viewer.

Team budgets refresh automatically on the configured poll period (3 seconds
by default); the player list and player details load on demand. No login is
required and no bid controls are shown.

Examples:
  auctionctl watch
  auctionctl watch --interval 5s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, _ := cmd.Flags().GetDuration("interval")
		if interval <= 0 {
			interval = runtimeConfig.PollInterval()
		}

		consoleSess.SetWatchMode(true)
		defer consoleSess.SetWatchMode(false)

		return tui.RunWatch(cmd.Context(), apiClient, interval)
	},
}

func init() {
	watchCmd.Flags().Duration("interval", 0, "team refresh period (default from config)")

	rootCmd.AddCommand(watchCmd)
}
