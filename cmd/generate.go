package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/taoky/kizami/pkg/synth"
	"github.com/taoky/kizami/pkg/util"
)

type generateConfig struct {
	FromYear int
	ToYear   int
	PerYear  int
	Seed     uint64
	Quiet    bool
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <filename>",
		Short: "Write a log file of random accesses (\"-\" for stdout)",
		Args:  cobra.ExactArgs(1),
	}
	c := generateConfig{
		FromYear: 2018,
		ToYear:   time.Now().Year(),
		PerYear:  100,
	}
	flags := cmd.Flags()
	flags.IntVar(&c.FromYear, "from", c.FromYear, "First year to generate")
	flags.IntVar(&c.ToYear, "to", c.ToYear, "Last year to generate")
	flags.IntVarP(&c.PerYear, "count", "n", c.PerYear, "Number of entries per year")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "Random seed (0 for random)")
	flags.BoolVarP(&c.Quiet, "quiet", "q", c.Quiet, "Do not show progress")

	cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
		if c.PerYear <= 0 {
			return synth.ErrNoEntries
		}
		if c.FromYear > c.ToYear {
			return fmt.Errorf("--from (%d) is after --to (%d)", c.FromYear, c.ToYear)
		}
		cmd.SilenceUsage = true

		filename := args[0]
		var w io.Writer
		if filename == util.Stdin {
			w = cmd.OutOrStdout()
			c.Quiet = true
		} else {
			f, err := os.Create(filename)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, f.Close())
			}()
			w = f
		}

		total := (c.ToYear - c.FromYear + 1) * c.PerYear
		bar := progressbar.NewOptions(total,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("Generating"),
			progressbar.OptionSetVisibility(!c.Quiet),
			progressbar.OptionShowCount(),
		)
		if err := synth.New(c.Seed).WriteFile(w, c.FromYear, c.ToYear, c.PerYear, bar); err != nil {
			return fmt.Errorf("there was a problem writing to %s: %w", filename, err)
		}
		if err := bar.Finish(); err != nil {
			return err
		}
		if !c.Quiet {
			fmt.Fprintln(cmd.ErrOrStderr())
		}
		return nil
	}
	return cmd
}
