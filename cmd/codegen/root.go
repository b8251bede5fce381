package main

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/ytget/codegen/internal/config"
)

// cliOptions holds flags shared by all subcommands
type cliOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:           "codegen",
		Short:         "codegen - generate and read QR codes and Code128 barcodes",
		Long:          "codegen encodes a short identifier as a QR code or a Code128 barcode, saves it as PNG and decodes saved images.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "codegen.yaml", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "log diagnostics to stderr")

	rootCmd.AddCommand(newGenerateCmd(opts), newScanCmd(opts))
	return rootCmd
}

// loadConfig reads the config file and environment, then sets up logging
func (o *cliOptions) loadConfig(cmd *cobra.Command) (*config.FileConfig, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	log.SetOutput(cmd.ErrOrStderr())
	if !o.isVerbose(cfg) {
		log.SetOutput(io.Discard)
	}
	return cfg, nil
}

func (o *cliOptions) isVerbose(cfg *config.FileConfig) bool {
	return o.verbose || cfg.Verbose
}
