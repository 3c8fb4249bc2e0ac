package cli

import (
	"fmt"
	"io"

	"github.com/changhyeonkim/cardmask/pkg/cardmask"
	"github.com/spf13/cobra"
)

// usageExample is one entry of the examples catalogue.
type usageExample struct {
	Title   string
	Flags   string
	Input   any
	Options cardmask.Options
}

// ExampleOutput is one entry of the examples command's JSON output.
type ExampleOutput struct {
	Title  string `json:"title"`
	Flags  string `json:"flags,omitempty"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

var usageExamples = []usageExample{
	{
		Title:   "Default masking",
		Input:   "4532123456789012",
		Options: cardmask.DefaultOptions(),
	},
	{
		Title:   "Show first 4 and last 4",
		Flags:   "--start 4",
		Input:   "4532123456789012",
		Options: cardmask.NewOptions(cardmask.WithUnmaskedStart(4)),
	},
	{
		Title:   "Custom mask character",
		Flags:   "--mask-char •",
		Input:   "4532123456789012",
		Options: cardmask.NewOptions(cardmask.WithMaskChar('•')),
	},
	{
		Title:   "Grouped format",
		Flags:   "--group 4",
		Input:   "4532123456789012",
		Options: cardmask.NewOptions(cardmask.WithGrouping(cardmask.GroupEvery(4))),
	},
	{
		Title:   "Preserve spacing",
		Flags:   "--preserve-spacing",
		Input:   "4532 1234 5678 9012",
		Options: cardmask.NewOptions(cardmask.WithPreserveSpacing(true)),
	},
	{
		Title:   "Show last 6 digits",
		Flags:   "--end 6",
		Input:   "4532123456789012",
		Options: cardmask.NewOptions(cardmask.WithUnmaskedEnd(6)),
	},
	{
		Title:   "Complete masking",
		Flags:   "--start 0 --end 0",
		Input:   "4532123456789012",
		Options: cardmask.NewOptions(cardmask.WithUnmaskedStart(0), cardmask.WithUnmaskedEnd(0)),
	},
	{
		Title:   "Amex-style grouping",
		Flags:   "--groups 4,6,5",
		Input:   "378282246310005",
		Options: cardmask.NewOptions(cardmask.WithGrouping(cardmask.GroupSizes(4, 6, 5))),
	},
	{
		Title: "Dots and grouping",
		Flags: "--mask-char • --group 4 --start 4",
		Input: "4532123456789012",
		Options: cardmask.NewOptions(
			cardmask.WithMaskChar('•'),
			cardmask.WithGrouping(cardmask.GroupEvery(4)),
			cardmask.WithUnmaskedStart(4),
		),
	},
	{
		Title:   "Number input",
		Input:   int64(4532123456789012),
		Options: cardmask.DefaultOptions(),
	},
	{
		Title:   "Auto-strip formatting",
		Input:   "4532-1234-5678-9012",
		Options: cardmask.DefaultOptions(),
	},
	{
		Title:   "Shortened mask",
		Flags:   "--hide-length",
		Input:   "4532123456789012",
		Options: cardmask.NewOptions(cardmask.WithShowLength(false)),
	},
}

// renderExamples masks every catalogue entry.
func renderExamples() ([]ExampleOutput, error) {
	outputs := make([]ExampleOutput, 0, len(usageExamples))
	for _, ex := range usageExamples {
		input, _ := cardmask.Stringify(ex.Input)
		masked, err := cardmask.MaskValue(ex.Input, ex.Options)
		if err != nil {
			return nil, fmt.Errorf("example %q: %w", ex.Title, err)
		}
		outputs = append(outputs, ExampleOutput{
			Title:  ex.Title,
			Flags:  ex.Flags,
			Input:  input,
			Output: masked,
		})
	}
	return outputs, nil
}

// newExamplesCmd creates the examples command.
func (cli *CLI) newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show common masking configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := cli.output()
			if err != nil {
				return err
			}

			outputs, err := renderExamples()
			if err != nil {
				return err
			}

			return out.Write(outputs, func(w io.Writer) {
				for i, ex := range outputs {
					fmt.Fprintf(w, "%d. %s\n", i+1, ex.Title)
					if ex.Flags != "" {
						fmt.Fprintf(w, "   Flags:  %s\n", ex.Flags)
					}
					fmt.Fprintf(w, "   Input:  %s\n", ex.Input)
					fmt.Fprintf(w, "   Output: %s\n\n", ex.Output)
				}
			})
		},
	}
}
