package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/mtypes"
)

var columnStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#6B7280")).
	Padding(0, 1).
	Align(lipgloss.Right)

func newFormatCmd(s *settings) *cobra.Command {
	var column bool

	cmd := &cobra.Command{
		Use:   "format [--column] <value>...",
		Short: "Format literals",
		Example: `  mtcalc format --precision 3 --notation f 3.14159 1+2i
  mtcalc format --column --aligned -- 1 -20 1//3 true`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args)
			if err != nil {
				return err
			}
			if !column {
				for _, v := range values {
					if err := s.print(cmd, v); err != nil {
						return err
					}
				}
				return nil
			}
			v, err := mtypes.NewVectorFrom(values...)
			if err != nil {
				return err
			}
			lines, err := v.Strings(s.options...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), columnStyle.Render(strings.Join(lines, "\n")))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&column, "column", "c", false, "print the values as a right-aligned column in a box")
	return cmd
}
