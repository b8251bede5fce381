package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/codegen/internal/encode"
	"github.com/ytget/codegen/internal/model"
	"github.com/ytget/codegen/internal/platform"
	"github.com/ytget/codegen/internal/session"
	"github.com/ytget/codegen/internal/storage"
)

func newGenerateCmd(opts *cliOptions) *cobra.Command {
	var (
		kindFlag string
		outDir   string
		openFile bool
	)

	cmd := &cobra.Command{
		Use:   "generate <id>",
		Short: "Encode an identifier and save it as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			kind := cfg.Kind
			if kindFlag != "" {
				if kind, err = model.ParseCodeKind(kindFlag); err != nil {
					return err
				}
			}
			if outDir == "" {
				outDir = cfg.OutputDir
			}

			encoder := encode.NewService(encode.DefaultOptions())
			store := storage.NewStore(outDir)
			sess := session.New(encoder, store, kind)

			code, err := sess.Generate(args[0])
			if err != nil {
				var verr *encode.ValidationError
				if errors.As(err, &verr) {
					return err
				}
				return fmt.Errorf("Error generating code: %w", err)
			}

			path, err := sess.Save()
			if err != nil {
				return err
			}

			size := code.Size()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				successStyle.Render(fmt.Sprintf("%s code saved:", code.Kind.Label())),
				valueStyle.Render(path),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", dimStyle.Render(fmt.Sprintf("%dx%d px", size.X, size.Y)))
			if opts.isVerbose(cfg) {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", dimStyle.Render(describeGeometry(code.Kind, encoder.Options())))
			}

			if openFile {
				if err := platform.OpenFileWithDefaultApp(path); err != nil {
					return fmt.Errorf("Error opening file: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "code kind: qr or barcode (default from config)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().BoolVar(&openFile, "open", false, "open the saved image with the default application")
	return cmd
}

// describeGeometry summarises the render settings used for kind
func describeGeometry(kind model.CodeKind, o encode.Options) string {
	if kind == model.KindBarcode {
		return fmt.Sprintf("module %dpx, bars %dpx, quiet zone %dpx, caption %.0fpt at %dpx",
			o.BarModuleWidth, o.BarHeight, o.BarQuietZone, o.BarFontSize, o.BarTextDistance)
	}
	return fmt.Sprintf("module %dpx, border %d modules, ECC medium", o.QRModuleSize, encode.QRBorderModules)
}
