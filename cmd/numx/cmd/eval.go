package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/numx/foundation/core/errors"
	mdwlog "github.com/msto63/numx/foundation/core/log"
	"github.com/msto63/numx/foundation/utils/numx"
	"github.com/msto63/numx/internal/harness"
)

// evalCmds returns one command per registered operation except times,
// which has its own command
func (a *app) evalCmds() []*cobra.Command {
	var cmds []*cobra.Command
	for _, op := range harness.Operations() {
		if op.Name == "times" {
			continue
		}
		cmds = append(cmds, a.evalCmd(op))
	}
	return cmds
}

func (a *app) evalCmd(op harness.Operation) *cobra.Command {
	use := op.Name + " <x>"
	if op.Arity == 2 {
		use = op.Name + " <x> <base>"
	}

	return &cobra.Command{
		Use:   use,
		Short: op.Usage,
		Args:  cobra.ExactArgs(op.Arity),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseNumbers(args)
			if err != nil {
				return err
			}

			var arg float64
			if op.Arity == 2 {
				arg = values[1]
			}

			result, _, err := op.Apply(values[0], arg)
			if err != nil {
				a.logger.LogError(err)
				return err
			}

			a.logger.Debug("evaluated",
				mdwlog.String("op", op.Name),
				mdwlog.Float64("x", values[0]),
				mdwlog.Float64("result", result))

			if op.Name == "sign" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), int(result))
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), numx.Number(result))
			return err
		},
	}
}

func parseNumbers(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleNumx, s, "number")
		}
		values[i] = v
	}
	return values, nil
}
