package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/numx/foundation/core/errors"
	mdwlog "github.com/msto63/numx/foundation/core/log"
	"github.com/msto63/numx/internal/harness"
)

func (a *app) checkCmd() *cobra.Command {
	var (
		report  string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "run case files and report the results",
		Long: `check loads YAML or TOML case files and evaluates every case.
Without arguments the files listed under [check] in the config are used.
The command fails when any case fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				files = a.cfg.Check.Files
			}
			if len(files) == 0 {
				return mdwerrors.InvalidInput(mdwerrors.ModuleHarness, "check", "", "at least one case file")
			}

			format := strings.ToLower(a.cfg.Check.Report)
			if cmd.Flags().Changed("report") {
				format = strings.ToLower(report)
			}
			if format != "text" && format != "json" {
				return mdwerrors.InvalidFormat(mdwerrors.ModuleHarness, report, "text or json")
			}
			color := a.cfg.Check.ColorEnabled() && !noColor

			runner := harness.NewRunner(a.logger)
			out := cmd.OutOrStdout()
			passed, failed := 0, 0

			for _, file := range files {
				suite, err := harness.LoadFile(file)
				if err != nil {
					return err
				}

				res, err := runner.Run(cmd.Context(), suite)
				if err != nil {
					return err
				}
				passed += res.Passed
				failed += res.Failed

				if format == "json" {
					err = res.WriteJSON(out)
				} else {
					err = res.WriteText(out, color)
				}
				if err != nil {
					return err
				}
			}

			a.logger.Info("check finished",
				mdwlog.Int("files", len(files)),
				mdwlog.Int("passed", passed),
				mdwlog.Int("failed", failed))

			if failed > 0 {
				return fmt.Errorf("%d of %d cases failed", failed, passed+failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&report, "report", "text", "report format (text|json)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}
