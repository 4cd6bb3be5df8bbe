package cmd

import (
	"github.com/spf13/cobra"
)

func showHelp(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kizami",
		Short: "Access statistics by hour, day and month for timestamp-only web server logs",
		Args:  cobra.NoArgs,
		RunE:  showHelp,
	}
	rootCmd.AddCommand(
		analyzeCmd(),
		generateCmd(),
		grepCmd(),
		listCmd(),
	)
	return rootCmd
}
