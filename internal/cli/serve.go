package cli

import (
	"github.com/spf13/cobra"

	"github.com/jayempx/vcard2qr/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  `Start an HTTP server exposing the vCard and styled-QR endpoints.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			listen := server.Addr(addr)
			loggerFromContext(cmd.Context()).Info("vcard2qr listening", "addr", listen)
			return server.New(server.Config{Addr: listen}).Start()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :$PORT or :8080)")
	return cmd
}
