package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/changhyeonkim/cardmask/internal/shared/validator"
	"github.com/changhyeonkim/cardmask/pkg/cardmask"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// PresetSpec is one named preset in a preset file. Unset fields keep the
// library defaults.
type PresetSpec struct {
	Description     string `yaml:"description,omitempty" json:"description,omitempty"`
	MaskChar        string `yaml:"mask_char,omitempty" json:"mask_char,omitempty" validate:"omitempty,maskchar"`
	UnmaskedStart   *int   `yaml:"unmasked_start,omitempty" json:"unmasked_start,omitempty" validate:"omitempty,gte=0"`
	UnmaskedEnd     *int   `yaml:"unmasked_end,omitempty" json:"unmasked_end,omitempty" validate:"omitempty,gte=0"`
	PreserveSpacing bool   `yaml:"preserve_spacing,omitempty" json:"preserve_spacing,omitempty"`
	GroupEvery      int    `yaml:"group_every,omitempty" json:"group_every,omitempty" validate:"omitempty,gt=0,excluded_with=GroupSizes"`
	GroupSizes      []int  `yaml:"group_sizes,omitempty" json:"group_sizes,omitempty" validate:"omitempty,dive,gt=0"`
	ShowLength      *bool  `yaml:"show_length,omitempty" json:"show_length,omitempty"`
	ValidateInput   bool   `yaml:"validate_input,omitempty" json:"validate_input,omitempty"`
}

// PresetFile is the on-disk layout of --preset-file.
//
//	presets:
//	  amex:
//	    group_sizes: [4, 6, 5]
//	    validate_input: true
type PresetFile struct {
	Presets map[string]PresetSpec `yaml:"presets" validate:"dive,keys,presetname,endkeys"`
}

// Options converts the entry into masking options.
func (p PresetSpec) Options() cardmask.Options {
	opts := cardmask.DefaultOptions()
	if p.MaskChar != "" {
		opts.MaskChar = []rune(p.MaskChar)[0]
	}
	if p.UnmaskedStart != nil {
		opts.UnmaskedStart = *p.UnmaskedStart
	}
	if p.UnmaskedEnd != nil {
		opts.UnmaskedEnd = *p.UnmaskedEnd
	}
	opts.PreserveSpacing = p.PreserveSpacing
	switch {
	case p.GroupEvery > 0:
		opts.Grouping = cardmask.GroupEvery(p.GroupEvery)
	case len(p.GroupSizes) > 0:
		opts.Grouping = cardmask.GroupSizes(p.GroupSizes...)
	}
	if p.ShowLength != nil {
		opts.ShowLength = *p.ShowLength
	}
	opts.ValidateInput = p.ValidateInput
	return opts
}

// Summary describes the effective options in one line.
func (p PresetSpec) Summary() string {
	opts := p.Options()

	parts := []string{
		"char=" + string(opts.MaskChar),
		"start=" + strconv.Itoa(opts.UnmaskedStart),
		"end=" + strconv.Itoa(opts.UnmaskedEnd),
	}
	if !opts.Grouping.IsZero() {
		parts = append(parts, "groups="+opts.Grouping.String())
	}
	if opts.PreserveSpacing {
		parts = append(parts, "preserve-spacing")
	}
	if !opts.ShowLength {
		parts = append(parts, "hide-length")
	}
	if opts.ValidateInput {
		parts = append(parts, "validate")
	}
	return strings.Join(parts, " ")
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

// builtinPresets are always available; a preset file may override them.
var builtinPresets = map[string]PresetSpec{
	"default": {
		Description: "Last 4 digits visible",
	},
	"first4-last4": {
		Description:   "First and last 4 digits visible",
		UnmaskedStart: intPtr(4),
	},
	"bin": {
		Description:   "Issuer BIN and last 4 visible, grouped by 4",
		UnmaskedStart: intPtr(6),
		GroupEvery:    4,
	},
	"amex": {
		Description:   "American Express 4-6-5 layout",
		GroupSizes:    []int{4, 6, 5},
		ValidateInput: true,
	},
	"receipt": {
		Description: "Dotted mask grouped by 4",
		MaskChar:    "•",
		GroupEvery:  4,
	},
	"compact": {
		Description: "Short mask that hides the card length",
		ShowLength:  boolPtr(false),
	},
}

// LoadPresetFile reads and validates a preset file. Unknown keys are rejected.
func LoadPresetFile(path string) (map[string]PresetSpec, error) {
	// #nosec G304 - path is supplied by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var file PresetFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse preset file: %w", err)
	}

	v, err := validator.New()
	if err != nil {
		return nil, err
	}
	if err := v.Struct(file); err != nil {
		return nil, fmt.Errorf("invalid preset file %s: %w", path, err)
	}

	for name, spec := range file.Presets {
		// map values are not descended into by the file-level tags
		if err := v.Struct(spec); err != nil {
			return nil, fmt.Errorf("invalid preset %q: %w", name, err)
		}
		if err := spec.Options().Validate(); err != nil {
			return nil, fmt.Errorf("invalid preset %q: %w", name, err)
		}
	}

	return file.Presets, nil
}

// presets returns the built-in presets merged with --preset-file.
func (cli *CLI) presets() (map[string]PresetSpec, error) {
	catalog := make(map[string]PresetSpec, len(builtinPresets))
	for name, spec := range builtinPresets {
		catalog[name] = spec
	}

	if cli.presetFileFlag == "" {
		return catalog, nil
	}

	loaded, err := LoadPresetFile(cli.presetFileFlag)
	if err != nil {
		return nil, err
	}
	for name, spec := range loaded {
		catalog[name] = spec
	}
	return catalog, nil
}

// PresetListEntry is one row of the presets command's JSON output.
type PresetListEntry struct {
	Name string `json:"name"`
	PresetSpec
}

// newPresetsCmd creates the presets command.
func (cli *CLI) newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in presets and those in --preset-file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := cli.output()
			if err != nil {
				return err
			}

			catalog, err := cli.presets()
			if err != nil {
				return err
			}

			names := make([]string, 0, len(catalog))
			for name := range catalog {
				names = append(names, name)
			}
			sort.Strings(names)

			entries := make([]PresetListEntry, 0, len(names))
			for _, name := range names {
				entries = append(entries, PresetListEntry{Name: name, PresetSpec: catalog[name]})
			}

			return out.Write(entries, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tOPTIONS\tDESCRIPTION")
				for _, e := range entries {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Summary(), e.Description)
				}
				tw.Flush()
			})
		},
	}
}
