package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	metricify "github.com/riverfjs/metricify-go"
)

func convertCmd() *cobra.Command {
	var (
		format      string
		targetClass string
		all         bool
		fragment    bool
		count       bool
	)
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert inch dimensions in a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := metricify.ParseFormat(format)
			if err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			}
			in, err := openInput(cmd, path)
			if err != nil {
				return err
			}
			defer in.Close()

			out, err := openOutput(cmd)
			if err != nil {
				return err
			}

			opts := []metricify.Option{
				metricify.WithAllElements(all),
				metricify.WithFragment(fragment),
			}
			if targetClass != "" {
				opts = append(opts, metricify.WithTargetClass(targetClass))
			}

			n, err := metricify.Metricify(cmd.Context(), in, out, f, opts...)
			if cerr := out.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			if count {
				fmt.Fprintf(cmd.ErrOrStderr(), "converted %d dimension group(s)\n", n)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "input format: text, html or markdown")
	cmd.Flags().StringVar(&targetClass, "class", "", "HTML class of elements to convert")
	cmd.Flags().BoolVar(&all, "all", false, "convert text anywhere in the HTML body")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "treat HTML input as a fragment")
	cmd.Flags().BoolVarP(&count, "count", "c", false, "report the number of converted groups on stderr")
	return cmd
}
