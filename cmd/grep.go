package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/taoky/kizami/pkg/grep"
	"github.com/taoky/kizami/pkg/source"
)

func filenameFromArgs(args []string) string {
	if len(args) == 0 {
		return source.DefaultResource
	}
	return args[0]
}

func grepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grep [filename]",
		Short: "Print records matching the filter, sorted by time",
		Args:  cobra.MaximumNArgs(1),
	}
	config := grep.DefaultConfig()
	config.InstallFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		filename := filenameFromArgs(args)
		fmt.Fprintln(cmd.ErrOrStderr(), "Using log file:", filename)
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
		g := grep.New(config, cmd.OutOrStdout(), logger)
		_, err := g.GrepFile(filename)
		return err
	}
	return cmd
}
