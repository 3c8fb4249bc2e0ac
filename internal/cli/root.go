// Package cli provides the cardmask command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/changhyeonkim/cardmask/internal/shared/logger"
	"github.com/spf13/cobra"
)

// CLI holds the application state for the CLI.
type CLI struct {
	rootCmd *cobra.Command

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Flags
	presetFileFlag string
	verboseFlag    bool
	outputFlag     string
}

// New creates a CLI bound to the process's standard streams.
func New() *CLI {
	return NewWithIO(os.Stdin, os.Stdout, os.Stderr)
}

// NewWithIO creates a CLI reading from in and writing to out and errOut.
func NewWithIO(in io.Reader, out, errOut io.Writer) *CLI {
	cli := &CLI{
		stdin:  in,
		stdout: out,
		stderr: errOut,
	}

	cli.rootCmd = &cobra.Command{
		Use:   "cardmask [command]",
		Short: "cardmask - mask payment card numbers for display",
		Long: `cardmask masks payment card numbers, keeping a configurable number of
leading and trailing digits visible and replacing the rest.

Card numbers are read from arguments or, one per line, from stdin.
Masked output goes to stdout; diagnostics go to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.initialize()
		},
	}

	cli.rootCmd.SetIn(in)
	cli.rootCmd.SetOut(out)
	cli.rootCmd.SetErr(errOut)

	// Global flags
	cli.rootCmd.PersistentFlags().StringVar(&cli.presetFileFlag, "preset-file", "", "YAML file with named presets")
	cli.rootCmd.PersistentFlags().BoolVarP(&cli.verboseFlag, "verbose", "v", false, "Enable verbose logging on stderr")
	cli.rootCmd.PersistentFlags().StringVarP(&cli.outputFlag, "output", "o", "text", "Output format (text, json)")

	cli.addCommands()

	return cli
}

// addCommands adds all subcommands to the root command.
func (cli *CLI) addCommands() {
	cli.rootCmd.AddCommand(
		cli.newMaskCmd(),
		cli.newPresetsCmd(),
		cli.newExamplesCmd(),
		cli.newVersionCmd(),
	)
}

// initialize sets up logging. Logs go to stderr so stdout stays pipeable.
func (cli *CLI) initialize() error {
	env := "quiet"
	if cli.verboseFlag {
		env = "local"
	}
	logger.SetupWithWriter(env, cli.stderr)
	return nil
}

// Execute runs the CLI with the process arguments.
func (cli *CLI) Execute(ctx context.Context) error {
	return cli.Run(ctx, os.Args[1:])
}

// Run runs the CLI with the given arguments.
func (cli *CLI) Run(ctx context.Context, args []string) error {
	cli.rootCmd.SetArgs(args)
	return cli.rootCmd.ExecuteContext(ctx)
}

// output returns a writer for the selected --output format.
func (cli *CLI) output() (*OutputWriter, error) {
	format, err := ParseOutputFormat(cli.outputFlag)
	if err != nil {
		return nil, err
	}
	return NewOutputWriter(format, cli.stdout), nil
}
