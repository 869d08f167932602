// Package cli implements the vcard2qr command-line interface: an HTTP server
// mode, a spreadsheet batch converter, and a QR decode helper.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the vcard2qr CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "vcard2qr",
		Short:        "vcard2qr renders contact cards as styled QR codes",
		Long:         `vcard2qr builds vCard 3.0 payloads from contact data and renders them as styled QR codes, either per request over HTTP or in bulk from a spreadsheet.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newServeCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newDecodeCmd())

	return root.ExecuteContext(context.Background())
}
