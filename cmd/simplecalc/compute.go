package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"simplecalc/internal/calculator"
)

func newComputeCmd() *cobra.Command {
	var opName string

	cmd := &cobra.Command{
		Use:   "compute OPERAND_ONE OPERAND_TWO",
		Short: "Compute one result and print it",
		Long: `Compute applies --op to the two operands and prints the result the way
the calculator displays it ("6.0"). On failure it prints "Computation error",
reports the reason on stderr and exits non-zero.`,
		Example: `  simplecalc compute --op add 4 2
  simplecalc compute --op / -- -9 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := calculator.ParseOperator(opName)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), calculator.ComputationError)
				return err
			}

			res := calculator.Run(cmd.Context(), "cli", op, args[0], args[1])
			fmt.Fprintln(cmd.OutOrStdout(), res.Display())

			return res.Err
		},
	}

	cmd.Flags().StringVarP(&opName, "op", "o", "add", "operator: add, subtract, multiply, divide (or + - * /)")

	return cmd
}

func newOperatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operators",
		Short: "List supported operators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, op := range calculator.ListOperators() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s %s\n", op.Name, op.Symbol)
			}
			return nil
		},
	}
}
