package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/idle"
)

type binaryOp func(x, y idle.Number) idle.Number

var ops = map[string]binaryOp{
	"+":   idle.Number.Add,
	"add": idle.Number.Add,
	"-":   idle.Number.Sub,
	"sub": idle.Number.Sub,
	"*":   idle.Number.Mul,
	"x":   idle.Number.Mul,
	"mul": idle.Number.Mul,
	"/":   idle.Number.Quo,
	"div": idle.Number.Quo,
	"max": idle.Number.Max,
	"min": idle.Number.Min,
}

func lookupOp(name string) (binaryOp, error) {
	op, ok := ops[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown operator %q", name)
	}
	return op, nil
}

func evalCmd() *cobra.Command {
	var precision int

	c := &cobra.Command{
		Use:   "eval <x> <op> <y>",
		Short: "Evaluate a binary operation on two numbers (e.g. 1.5a + 500)",
		Long: "Evaluate a binary operation on two numbers written in display form,\n" +
			"such as 999, 1.50a or 2.5e3c. Operators: + - * x / add sub mul div min max cmp.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := idle.ParseNumber(args[0])
			if err != nil {
				return err
			}
			y, err := idle.ParseNumber(args[2])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if strings.EqualFold(args[1], "cmp") {
				_, err = fmt.Fprintln(out, x.Cmp(y))
				return err
			}

			op, err := lookupOp(args[1])
			if err != nil {
				return err
			}
			z := op(x, y)

			idle.Logger().Debug("eval",
				"x", x.String(),
				"op", args[1],
				"y", y.String(),
				"mant", z.Mant(),
				"tier", uint64(z.Tier()),
			)

			if precision >= 0 {
				_, err = fmt.Fprintf(out, "%.*v\n", precision, z)
				return err
			}
			_, err = fmt.Fprintln(out, z)
			return err
		},
	}

	c.Flags().IntVarP(&precision, "precision", "p", -1, "Fractional digits of the mantissa (optional; defaults to 0 at tier 0 and 2 otherwise)")
	return c
}
