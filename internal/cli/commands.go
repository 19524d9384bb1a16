package cli

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/primecore/internal/shared/types"
)

// toolCommand maps positional arguments onto a tool's parameters
type toolCommand struct {
	use    string
	short  string
	tool   string
	params []string
	text   func(map[string]interface{}) string
}

var shortcuts = []toolCommand{
	{use: "is-prime N", short: "Test whether N is prime", tool: "math.isPrime", params: []string{"n"}},
	{use: "factor N", short: "Prime factorization of N", tool: "math.primeFactors", params: []string{"n"}, text: factorText},
	{use: "primes LIMIT", short: "All primes up to LIMIT", tool: "math.primeList", params: []string{"limit"}},
	{use: "emirps LIMIT", short: "All emirps up to LIMIT", tool: "math.emirpList", params: []string{"limit"}},
	{use: "twins LIMIT", short: "All twin primes up to LIMIT", tool: "math.twinPrimeList", params: []string{"limit"}},
	{use: "gcpd A B", short: "Greatest prime dividing both A and B", tool: "math.greatestCommonPrimeDivisor", params: []string{"a", "b"}},
	{use: "classify N", short: "Perfect, abundant or deficient", tool: "math.classify", params: []string{"n"}},
}

func toolCommands(opts *options) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(shortcuts))
	for _, tc := range shortcuts {
		cmds = append(cmds, &cobra.Command{
			Use:   tc.use,
			Short: tc.short,
			Long:  fmt.Sprintf("%s.\n\nRuns the %s tool.", tc.short, tc.tool),
			Args:  cobra.ExactArgs(len(tc.params)),
			RunE: func(cmd *cobra.Command, args []string) error {
				params := make(map[string]interface{}, len(args))
				for i, name := range tc.params {
					// decimal strings keep every digit on both paths
					params[name] = args[i]
				}
				return opts.run(cmd, tc.tool, params, tc.text)
			},
		})
	}
	return cmds
}

func newExecCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "exec TOOL [key=value...]",
		Short: "Execute any tool with named parameters",
		Long: `Execute any tool with named parameters.

Values are read as JSON when they parse (numbers, booleans, arrays) and as
strings otherwise:

  primectl exec math.gcd numbers=[12,18,24]
  primectl exec math.sumOfDivisors n=28 proper=false`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}
			return opts.run(cmd, args[0], params, nil)
		},
	}
}

func newToolsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the available tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.deadline(cmd)
			defer cancel()

			services, err := opts.runner.Services(ctx)
			if err != nil {
				return err
			}

			if opts.output != FormatText {
				return writeData(cmd.OutOrStdout(), opts.output, map[string]interface{}{"services": services}, nil)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, svc := range services {
				for _, tool := range svc.Tools {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", tool.ID, paramList(tool), tool.Description)
				}
			}
			return tw.Flush()
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "primectl %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}

// run executes a tool and writes its data. A failed result becomes the
// command's error.
func (o *options) run(cmd *cobra.Command, toolID string, params map[string]interface{}, text func(map[string]interface{}) string) error {
	ctx, cancel := o.deadline(cmd)
	defer cancel()

	result, err := o.runner.Execute(ctx, toolID, params)
	if err != nil {
		return err
	}
	if !result.Success {
		if result.Error != nil {
			return errors.New(*result.Error)
		}
		return fmt.Errorf("%s failed", toolID)
	}
	return writeData(cmd.OutOrStdout(), o.output, result.Data, text)
}

// parseParams reads key=value pairs
func parseParams(pairs []string) (map[string]interface{}, error) {
	params := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q (want key=value)", pair)
		}
		var v interface{}
		if err := numberAPI.UnmarshalFromString(raw, &v); err != nil {
			v = raw
		}
		params[key] = v
	}
	return params, nil
}

func paramList(tool types.Tool) string {
	names := make([]string, 0, len(tool.Parameters))
	for _, p := range tool.Parameters {
		if p.Required {
			names = append(names, p.Name)
		} else {
			names = append(names, "["+p.Name+"]")
		}
	}
	return strings.Join(names, " ")
}
