package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taoky/kizami/pkg/analyze"
	"github.com/taoky/kizami/pkg/source"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <item>",
		Short: "List various items",
		Args:  cobra.NoArgs,
		RunE:  showHelp,
	}
	cmd.AddCommand(listPoliciesCmd(), listFormatsCmd())
	return cmd
}

func listPoliciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List ingestion policies for unreadable logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := analyze.NewTable(cmd.OutOrStdout())
			table.Header("Name", "Description")
			for _, p := range source.Policies() {
				if err := table.Append([]string{p.Policy.String(), p.Description}); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}

func listFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range analyze.ListFormats() {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}
