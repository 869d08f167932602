package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jayempx/vcard2qr/internal/batch"
	"github.com/jayempx/vcard2qr/internal/render"
)

func newBatchCmd() *cobra.Command {
	var (
		inPath      string
		outDir      string
		configPath  string
		moduleSize  int
		radius      float64
		fg          string
		bg          string
		transparent bool
		format      string
		size        int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Convert a spreadsheet of contacts into QR images",
		Long: `Read contact rows from a CSV or XLSX file and write one styled QR image
per row. Rows without any usable contact data are skipped and reported; a bad
row never aborts the rest of the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			style, err := cfg.Style.style()
			if err != nil {
				return err
			}

			// Explicit flags override the config file.
			flags := cmd.Flags()
			if flags.Changed("module-size") {
				style.ModuleSize = moduleSize
			}
			if flags.Changed("radius") {
				style.CornerRadius = radius
			}
			if flags.Changed("fg") {
				c, err := render.ParseHexColor(fg)
				if err != nil {
					return err
				}
				style.Foreground = c
			}
			if flags.Changed("bg") {
				c, err := render.ParseHexColor(bg)
				if err != nil {
					return err
				}
				style.Background = c
			}
			if flags.Changed("transparent") {
				style.Transparent = transparent
			}

			if cfg.Batch.OutDir != "" && !flags.Changed("out") {
				outDir = cfg.Batch.OutDir
			}
			if cfg.Batch.Format != "" && !flags.Changed("format") {
				format = cfg.Batch.Format
			}
			if cfg.Batch.Size > 0 && !flags.Changed("size") {
				size = cfg.Batch.Size
			}

			format = strings.ToLower(format)
			if format != "png" && format != "svg" {
				return fmt.Errorf("unsupported output format %q", format)
			}

			mapping := batch.DefaultMapping()
			for col, field := range cfg.Batch.Columns {
				mapping[strings.ToLower(col)] = field
			}

			table, err := batch.ReadFile(inPath)
			if err != nil {
				return err
			}

			conv := &batch.Converter{
				Style:   style,
				Mapping: mapping,
				OutDir:  outDir,
				Format:  format,
				FitSide: size,
				Logger:  logger,
			}

			start := time.Now()
			report, err := conv.Run(table)
			if err != nil {
				return err
			}

			logger.Info("batch finished",
				"written", len(report.Written),
				"skipped", len(report.Skips),
				"elapsed", time.Since(start).Round(time.Millisecond))
			for _, s := range report.Skips {
				logger.Warn("skipped row", "row", s.Row, "reason", s.Reason)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "input spreadsheet (.csv or .xlsx)")
	cmd.Flags().StringVar(&outDir, "out", "qr-out", "output directory")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file with style defaults")
	cmd.Flags().IntVar(&moduleSize, "module-size", render.DefaultModuleSize, "module edge length in pixels")
	cmd.Flags().Float64Var(&radius, "radius", 0, "corner radius as a fraction of module size (0..0.5)")
	cmd.Flags().StringVar(&fg, "fg", "#000000", "foreground color")
	cmd.Flags().StringVar(&bg, "bg", "#FFFFFF", "background color")
	cmd.Flags().BoolVar(&transparent, "transparent", false, "transparent background (overrides --bg)")
	cmd.Flags().StringVar(&format, "format", "png", "output format: png or svg")
	cmd.Flags().IntVar(&size, "size", 0, "exact output side in pixels (0 = native)")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
