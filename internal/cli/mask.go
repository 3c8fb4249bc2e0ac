package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/changhyeonkim/cardmask/internal/shared/logger"
	"github.com/changhyeonkim/cardmask/internal/shared/validator"
	"github.com/changhyeonkim/cardmask/pkg/cardmask"
	"github.com/spf13/cobra"
)

// maskFlags holds the mask command's option flags. Only flags the user sets
// override the selected preset.
type maskFlags struct {
	preset          string
	maskChar        string
	start           int
	end             int
	preserveSpacing bool
	group           int
	groups          string
	hideLength      bool
	validate        bool
}

// MaskResult is one entry of the mask command's JSON output.
type MaskResult struct {
	Masked *string `json:"masked,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// newMaskCmd creates the mask command.
func (cli *CLI) newMaskCmd() *cobra.Command {
	flags := &maskFlags{}

	cmd := &cobra.Command{
		Use:   "mask [number...]",
		Short: "Mask card numbers from arguments or stdin",
		Long: `Mask card numbers given as arguments, or read one per line from stdin
when no arguments are given.

Options are taken from the "default" preset, then --preset, then any
option flag set explicitly.`,
		Example: `  cardmask mask 4532123456789012
  cardmask mask --start 4 --group 4 "4532 1234 5678 9012"
  cardmask mask --preset amex < cards.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cli.resolveMaskOptions(cmd, flags)
			if err != nil {
				return err
			}

			inputs := args
			if len(inputs) == 0 {
				inputs, err = readLines(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
			}

			return cli.maskAll(cmd, inputs, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.preset, "preset", "", "Named preset (see 'cardmask presets')")
	f.StringVar(&flags.maskChar, "mask-char", string(cardmask.DefaultMaskChar), "Mask character (one non-digit character)")
	f.IntVar(&flags.start, "start", 0, "Leading digits to leave visible")
	f.IntVar(&flags.end, "end", cardmask.DefaultUnmaskedEnd, "Trailing digits to leave visible")
	f.BoolVar(&flags.preserveSpacing, "preserve-spacing", false, "Keep the input's separators in place")
	f.IntVar(&flags.group, "group", 0, "Group output into chunks of N (0 disables grouping)")
	f.StringVar(&flags.groups, "groups", "", "Group output by explicit sizes, e.g. 4,6,5")
	f.BoolVar(&flags.hideLength, "hide-length", false, "Shorten the masked run so the length is hidden")
	f.BoolVar(&flags.validate, "validate", false, "Reject inputs that are not 13-19 digits")
	cmd.MarkFlagsMutuallyExclusive("group", "groups")

	return cmd
}

// resolveMaskOptions layers the preset and the explicitly set flags.
func (cli *CLI) resolveMaskOptions(cmd *cobra.Command, flags *maskFlags) (cardmask.Options, error) {
	opts := cardmask.DefaultOptions()

	if flags.preset != "" {
		catalog, err := cli.presets()
		if err != nil {
			return cardmask.Options{}, err
		}
		spec, ok := catalog[flags.preset]
		if !ok {
			return cardmask.Options{}, fmt.Errorf("unknown preset %q", flags.preset)
		}
		opts = spec.Options()
	}

	f := cmd.Flags()
	if f.Changed("mask-char") {
		v, err := validator.New()
		if err != nil {
			return cardmask.Options{}, err
		}
		if err := v.Var(flags.maskChar, "maskchar"); err != nil {
			return cardmask.Options{}, fmt.Errorf("invalid --mask-char %q: must be one non-digit character", flags.maskChar)
		}
		opts.MaskChar, _ = utf8.DecodeRuneInString(flags.maskChar)
	}
	if f.Changed("start") {
		opts.UnmaskedStart = flags.start
	}
	if f.Changed("end") {
		opts.UnmaskedEnd = flags.end
	}
	if f.Changed("preserve-spacing") {
		opts.PreserveSpacing = flags.preserveSpacing
	}
	if f.Changed("group") {
		opts.Grouping = cardmask.GroupEvery(flags.group)
	}
	if f.Changed("groups") {
		grouping, err := cardmask.ParseGroupSizes(flags.groups)
		if err != nil {
			return cardmask.Options{}, fmt.Errorf("invalid --groups: %w", err)
		}
		opts.Grouping = grouping
	}
	if f.Changed("hide-length") {
		opts.ShowLength = !flags.hideLength
	}
	if f.Changed("validate") {
		opts.ValidateInput = flags.validate
	}

	if err := opts.Validate(); err != nil {
		return cardmask.Options{}, err
	}
	return opts, nil
}

// maskAll masks every input. Failed inputs are reported and counted; the
// rest are still printed.
func (cli *CLI) maskAll(cmd *cobra.Command, inputs []string, opts cardmask.Options) error {
	out, err := cli.output()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	results := make([]MaskResult, 0, len(inputs))
	failed := 0

	for i, input := range inputs {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		masked, err := cardmask.Mask(input, opts)
		if err != nil {
			failed++
			slog.Warn("카드 마스킹 실패", "index", i, "card", logger.MaskCard(input), "error", err)
			results = append(results, MaskResult{Error: err.Error()})
			continue
		}
		results = append(results, MaskResult{Masked: &masked})
	}

	err = out.Write(results, func(w io.Writer) {
		for i, r := range results {
			if r.Masked == nil {
				fmt.Fprintf(cli.stderr, "input %d: %s\n", i+1, r.Error)
				continue
			}
			fmt.Fprintln(w, *r.Masked)
		}
	})
	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d input(s) failed validation", failed, len(inputs))
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}
