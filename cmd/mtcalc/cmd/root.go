package cmd

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/config"
	"github.com/abstratium-informatique-sarl/mtypes/pkg/env"
	"github.com/abstratium-informatique-sarl/mtypes/pkg/logging"
	"github.com/abstratium-informatique-sarl/mtypes/pkg/mtypes"
)

// settings holds the persistent flags and the formatter options resolved from them.
type settings struct {
	cfgFile   string
	verbose   bool
	aligned   bool
	notation  string
	precision int

	options []mtypes.Option
}

func newRootCmd() *cobra.Command {
	s := &settings{}
	rootCmd := &cobra.Command{
		Use:   "mtcalc",
		Short: "Evaluate and format numeric values",
		Long: `mtcalc applies the mtypes operators and functions to literals and prints the
results with the mtypes formatter.

Literals:
  true, false     booleans
  42              integers
  3//4            rationals
  2.5, 1e-3, Inf  reals
  1+2i            complex numbers

Formatter defaults come from the flags, then the --config file, then the
MTYPES_ALIGNED, MTYPES_FORMAT and MTYPES_PRECISION environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if s.verbose {
				os.Setenv(logging.LOG_LEVEL_ENV_NAME, "debug")
				logging.Reset()
			}
			return s.resolve(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&s.cfgFile, "config", "", "config file with a [format] section (.toml, .yaml or .yml)")
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "log at debug level")
	flags.BoolVarP(&s.aligned, "aligned", "a", false, "pad non-negative values so they line up with negative ones")
	flags.StringVarP(&s.notation, "notation", "n", string(mtypes.DefaultNotation), "E or e for scientific notation, anything else for fixed-point")
	flags.IntVarP(&s.precision, "precision", "p", mtypes.DefaultPrecision, fmt.Sprintf("significant figures of reals, %d to %d", mtypes.MinPrecision, mtypes.MaxPrecision))

	rootCmd.AddCommand(newEvalCmd(s), newFnCmd(s), newFormatCmd(s), newServeCmd())
	return rootCmd
}

// resolve collects the formatter options, lowest precedence first so that later ones win.
func (s *settings) resolve(cmd *cobra.Command) error {
	log := logging.GetLog("mtcalc")

	env.Setup()
	opts, err := env.FormatOptions()
	if err != nil {
		return err
	}

	if s.cfgFile != "" {
		cfg, err := config.Load(s.cfgFile)
		if err != nil {
			return err
		}
		opts = append(opts, cfg.Format.Options()...)
	}

	flags := cmd.Flags()
	if flags.Changed("aligned") {
		opts = append(opts, mtypes.Aligned(s.aligned))
	}
	if flags.Changed("notation") {
		if utf8.RuneCountInString(s.notation) != 1 {
			return fmt.Errorf("%w: --notation %q must be a single character", mtypes.ErrInvalidArgument, s.notation)
		}
		r, _ := utf8.DecodeRuneInString(s.notation)
		opts = append(opts, mtypes.Notation(r))
	}
	if flags.Changed("precision") {
		if err := mtypes.ValidatePrecision(s.precision); err != nil {
			return err
		}
		opts = append(opts, mtypes.Precision(s.precision))
	}

	log.Debug().Int("options", len(opts)).Msg("resolved formatter options")
	s.options = opts
	return nil
}

func (s *settings) print(cmd *cobra.Command, v any) error {
	out, err := mtypes.ToString(v, s.options...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func parseArgs(args []string) ([]any, error) {
	values := make([]any, len(args))
	for i, a := range args {
		v, err := mtypes.Parse(a)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// Execute runs mtcalc with the process arguments.
func Execute() error {
	return newRootCmd().Execute()
}
