package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cricbid/auctionctl/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage auctionctl configuration",
	Long: `Inspect and manage the auctionctl configuration file.

Configuration lives at $XDG_CONFIG_HOME/auctionctl/config.yaml (or
~/.config/auctionctl/config.yaml). The AUCTIONCTL_API_URL environment
variable and the --api-url flag override the configured API URL.

Subcommands:
  view  Show the effective configuration
  path  Print the configuration file path
  init  Write the default configuration file

Examples:
  auctionctl config view
  auctionctl config init`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("api_url:         %s\n", runtimeConfig.APIURL)
		fmt.Printf("timeout_seconds: %d\n", runtimeConfig.TimeoutSeconds)
		fmt.Printf("poll_seconds:    %d\n", runtimeConfig.PollSeconds)
		fmt.Printf("log_level:       %s\n", runtimeConfig.LogLevel)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(config.Path())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Default().Save(); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", config.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
