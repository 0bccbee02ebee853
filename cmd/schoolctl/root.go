package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the operator CLI.
var rootCmd = &cobra.Command{
	Use:   "schoolctl",
	Short: "Operator commands for the school site backend",
	Long: `schoolctl bundles the one-shot operator procedures that live outside
the HTTP surface, such as creating the administrator account.`,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file (default: $CONFIG_PATH or ./config/config.yaml)")
}

func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "./config/config.yaml"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
