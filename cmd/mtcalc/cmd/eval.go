package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/mtypes"
)

func newEvalCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <lhs> <op> <rhs>",
		Short: "Apply a binary operator to two literals",
		Long: fmt.Sprintf(`Apply a binary operator to two literals and print the result.

Operators: %s`, strings.Join(mtypes.BinarySymbols(), " ")),
		Example: `  mtcalc eval 1//2 + 0.25
  mtcalc eval 7 div 2
  mtcalc eval 1.0000001 ≈ 1.0000002`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := mtypes.LookupBinary(args[1])
			if !ok {
				return fmt.Errorf("%w: unknown operator %q", mtypes.ErrInvalidArgument, args[1])
			}
			operands, err := parseArgs([]string{args[0], args[2]})
			if err != nil {
				return err
			}
			result, err := f(operands[0], operands[1])
			if err != nil {
				return err
			}
			return s.print(cmd, result)
		},
	}
}
