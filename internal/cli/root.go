package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/primecore/internal/infrastructure/config"
	"github.com/GriffinCanCode/primecore/internal/infrastructure/logging"
)

// Version is set at build time
var Version = "0.3.0"

// options holds the persistent flags and what they build
type options struct {
	output  string
	remote  string
	verbose bool
	timeout time.Duration

	logger *logging.Logger
	runner Runner
}

// NewRootCommand builds primectl. Results go to the command's output,
// logs to stderr.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "primectl",
		Short: "primectl - primality, factorization and number predicates",
		Long: `primectl answers number theory queries for integers of any size.

It runs the engine in-process by default, configured from the same ENGINE_*
environment variables as the server. With --remote it sends every query to a
primecore server instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validFormat(opts.output); err != nil {
				return err
			}

			logger, err := logging.New(logging.CLIConfig(opts.verbose))
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger

			if opts.remote != "" {
				logger.Debug("Using remote server", zap.String("url", opts.remote))
				opts.runner = newRemoteRunner(opts.remote, logger.Component("client").Logger)
				return nil
			}

			// the same environment the server would reject is an error here too
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			runner, err := newLocalRunner(cfg.Engine, logger.Component("math").Logger)
			if err != nil {
				return fmt.Errorf("invalid engine config: %w", err)
			}
			opts.runner = runner
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.output, "output", "o", FormatText, "output format (text, json, yaml, toml)")
	flags.StringVar(&opts.remote, "remote", "", "primecore server URL; runs locally when empty")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	flags.DurationVar(&opts.timeout, "timeout", 0, "overall deadline for the command (0 means none)")

	root.AddCommand(toolCommands(opts)...)
	root.AddCommand(
		newToolsCommand(opts),
		newExecCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs primectl and prints any error as "Error: msg". It returns
// the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// Main is the primectl entry point
func Main() {
	os.Exit(Execute(os.Args[1:], os.Stdout, os.Stderr))
}

// deadline returns the command context bounded by --timeout
func (o *options) deadline(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if o.timeout > 0 {
		return context.WithTimeout(ctx, o.timeout)
	}
	return context.WithCancel(ctx)
}
