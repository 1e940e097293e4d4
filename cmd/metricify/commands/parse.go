package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riverfjs/metricify-go/internal/fraction"
	"github.com/riverfjs/metricify-go/internal/metric"
)

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [component...]",
		Short: "Show how dimension components are read",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, arg := range args {
				tok, ok := fraction.Tokenize(arg)
				if !ok {
					fmt.Fprintf(w, "%q\tinvalid\n", arg)
					continue
				}
				inches, ok := fraction.Parse(arg)
				if !ok {
					fmt.Fprintf(w, "%q\t%s\tout of range\n", arg, tok.Kind)
					continue
				}
				fmt.Fprintf(w, "%q\t%s\t%s\t%v in\t%s cm\n",
					arg, tok.Kind, tok, inches, metric.Centimeters(inches))
			}
			return nil
		},
	}
}
