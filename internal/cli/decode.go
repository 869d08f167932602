package cli

import (
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/jayempx/vcard2qr/internal/render"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <image>",
		Short: "Scan a QR image and print its vCard payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := imaging.Open(args[0])
			if err != nil {
				return fmt.Errorf("open image: %w", err)
			}
			payload, err := render.Decode(img)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), payload)
			return nil
		},
	}
}
