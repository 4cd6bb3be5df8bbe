package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taoky/kizami/pkg/analyze"
	"github.com/taoky/kizami/pkg/grep"
	"github.com/taoky/kizami/pkg/source"
	"github.com/taoky/kizami/pkg/util"
)

type profileConfig struct {
	CPUProfile string
	MemProfile string
}

func (p *profileConfig) run(fn func() error) error {
	if p.CPUProfile != "" {
		if err := util.RunCPUProfile(p.CPUProfile, fn); err != nil {
			return err
		}
	} else if err := fn(); err != nil {
		return err
	}
	if p.MemProfile != "" {
		return util.WriteProfile(p.MemProfile, "allocs")
	}
	return nil
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "analyze [filename]",
		Aliases: []string{"analyse"},
		Short:   "Print hourly, daily and monthly access statistics",
		Long: "Print hourly, daily and monthly access statistics.\n\n" +
			"Each line of the log holds one access as \"" + source.RecordFormat + "\".\n" +
			"The log is looked up in the search path, and synthetic data is used\n" +
			"when it cannot be read unless --policy=strict is given.",
		Args: cobra.MaximumNArgs(1),
	}
	config := analyze.DefaultConfig()
	config.InstallFlags(cmd.Flags())
	srcConfig := source.DefaultConfig()
	srcConfig.InstallFlags(cmd.Flags())
	filter := &grep.Filter{}
	filter.InstallFlags(cmd.Flags())

	var profile profileConfig
	cmd.Flags().StringVar(&profile.CPUProfile, "cpuprofile", "", "Write CPU profile to file")
	cmd.Flags().StringVar(&profile.MemProfile, "memprofile", "", "Write allocation profile to file")
	cmd.Flags().MarkHidden("cpuprofile")
	cmd.Flags().MarkHidden("memprofile")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			srcConfig.Resource = args[0]
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Using log file:", srcConfig.Resource)
		cmd.SilenceUsage = true

		logger, err := config.NewLogger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		return profile.run(func() error {
			entries, err := source.New(srcConfig, logger).Load()
			if err != nil {
				return fmt.Errorf("failed to load log: %w", err)
			}
			if !filter.IsEmpty() {
				entries = entries.Filter(filter.Keep)
			}
			return analyze.NewAnalyzer(config, entries).Print(cmd.OutOrStdout())
		})
	}
	return cmd
}
