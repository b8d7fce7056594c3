package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/numx/foundation/core/log"
	"github.com/msto63/numx/foundation/utils/numx"
)

func (a *app) timesCmd() *cobra.Command {
	var echo string

	cmd := &cobra.Command{
		Use:   "times <n>",
		Short: "invoke a callback n times and print n",
		Long: `times invokes a callback n times in sequence and prints n.
With --echo the callback prints the given text on each invocation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseNumbers(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			calls := 0
			n, err := numx.Number(values[0]).Times(func() {
				calls++
				if echo != "" {
					fmt.Fprintln(out, echo)
				}
			})
			if err != nil {
				a.logger.LogError(err)
				return err
			}

			a.logger.Debug("times finished", mdwlog.Int("calls", calls))
			_, err = fmt.Fprintln(out, n)
			return err
		},
	}

	cmd.Flags().StringVar(&echo, "echo", "", "text printed on every invocation")
	return cmd
}
