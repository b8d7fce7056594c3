package cmd

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/numx/foundation/core/log"
	"github.com/msto63/numx/pkg/core/config"
)

// app carries the state shared by all commands of one invocation
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *mdwlog.Logger
}

// NewRootCmd builds the numx command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "numx",
		Short: "numx - numeric extensions",
		Long: `numx evaluates the numeric extension helpers from the command line
and runs named case files against them.

Operations:
  abs, ceil, floor, round, sign <x>
  mod <x> <base>
  times <n>

Negative numbers may be passed directly, e.g. "numx mod -3 8".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(a.evalCmds()...)
	rootCmd.AddCommand(a.timesCmd())
	rootCmd.AddCommand(a.checkCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// Execute runs the command tree with the process arguments
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(protectNegatives(os.Args[1:]))
	return rootCmd.ExecuteContext(ctx)
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = cfg.Logger().WithOutput(cmd.ErrOrStderr())
	if a.verbose {
		a.logger = a.logger.WithLevel(mdwlog.LevelDebug)
	}
	a.logger.Debug("config loaded", mdwlog.String("command", cmd.Name()), mdwlog.String("config", a.cfgFile))
	return nil
}

// protectNegatives inserts "--" before the first argument that is a negative
// number, so "-3" reaches the command as a value instead of a shorthand flag.
// Flags given after such an argument are treated as positional.
func protectNegatives(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if isNegativeNumber(arg) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

func isNegativeNumber(arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}
