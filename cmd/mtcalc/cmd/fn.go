package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/mtypes"
)

func newFnCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "fn <name> <arg> [arg]",
		Short: "Apply a named function",
		Long: fmt.Sprintf(`Apply a named function to one literal, or a two-argument function such as
atan2 to two literals, and print the result.

Functions: %s`, strings.Join(mtypes.UnaryNames(), " ")),
		Example: `  mtcalc fn sqrt -- -4+0i
  mtcalc fn numerator 6//4
  mtcalc fn atan2 1 1`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			operands, err := parseArgs(args[1:])
			if err != nil {
				return err
			}

			var result any
			if len(operands) == 1 {
				f, ok := mtypes.LookupUnary(name)
				if !ok {
					return fmt.Errorf("%w: unknown function %q", mtypes.ErrInvalidArgument, name)
				}
				result, err = f(operands[0])
			} else {
				f, ok := mtypes.LookupBinary(name)
				if !ok {
					return fmt.Errorf("%w: unknown two-argument function %q", mtypes.ErrInvalidArgument, name)
				}
				result, err = f(operands[0], operands[1])
			}
			if err != nil {
				return err
			}
			return s.print(cmd, result)
		},
	}
}
