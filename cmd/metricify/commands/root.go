package commands

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	metricify "github.com/riverfjs/metricify-go"
)

var (
	quiet   bool
	outPath string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "metricify",
		Short:        "Convert inch dimensions to centimeters",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if quiet {
				metricify.SetLogger(log.New(io.Discard, "", 0))
			} else {
				metricify.SetLogger(log.New(cmd.ErrOrStderr(), "[metricify] ", log.LstdFlags))
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress diagnostics")
	root.PersistentFlags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	root.AddCommand(convertCmd(), parseCmd(), previewCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}

// openInput returns stdin for "" or "-".
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func openOutput(cmd *cobra.Command) (io.WriteCloser, error) {
	if outPath == "" || outPath == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	return os.Create(outPath)
}
