package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/codegen/internal/model"
	"github.com/ytget/codegen/internal/scan"
)

func newScanCmd(opts *cliOptions) *cobra.Command {
	var kindFlag string

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Decode a QR code or Code128 barcode from a PNG or JPEG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := opts.loadConfig(cmd); err != nil {
				return err
			}

			var kind model.CodeKind
			if kindFlag != "" {
				var err error
				if kind, err = model.ParseCodeKind(kindFlag); err != nil {
					return err
				}
			}

			value, err := scan.DecodeFile(args[0], kind)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", dimStyle.Render(args[0]))
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", dimStyle.Render("-"), valueStyle.Render(value))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "code kind: qr or barcode (auto-detect when empty)")
	return cmd
}
