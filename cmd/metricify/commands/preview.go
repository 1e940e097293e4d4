package commands

import (
	"strings"

	"github.com/spf13/cobra"

	metricify "github.com/riverfjs/metricify-go"
)

func previewCmd() *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "preview [dimensions]",
		Short: "Draw a dimension group as a PNG wireframe",
		Long: `Draw a dimension group as a PNG wireframe.

The argument is either converted metric text such as "79.06x12.70x5.08 cm"
or an inch group such as '31 1/8 x 5½ x 2"', which is converted first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			if dims := metricify.ScanDimensions(text); len(dims) == 1 && !strings.Contains(text, "cm") {
				text = dims[0].Metric
			}

			opts := metricify.DefaultPreviewOptions()
			opts.Width, opts.Height = width, height

			out, err := openOutput(cmd)
			if err != nil {
				return err
			}
			err = metricify.RenderPreview(text, out, opts)
			if cerr := out.Close(); err == nil {
				err = cerr
			}
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 320, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 240, "image height in pixels")
	return cmd
}
