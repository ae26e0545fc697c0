package main

import (
	"fmt"

	"zoop-converter/internal/app"
	"zoop-converter/internal/controllers"
	"zoop-converter/internal/models"
	"zoop-converter/internal/report"
	"zoop-converter/internal/services"

	"github.com/spf13/cobra"
)

type convertOptions struct {
	selection []int
	exclude   []int
}

func newConvertCmd(root *rootOptions) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert FILE...",
		Short: "Convert files without opening the window",
		Long: `Adds every FILE to the list in order, drops the positions given with
--exclude, then converts either the whole list or the positions given with
--select. Positions are zero based and count only the accepted files, in the
order they were listed.`,
		Example: `  zoop convert -f .png -o out photos/*.jpg
  zoop convert --select 0,2 a.jpg b.jpg c.jpg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := root.load(cmd)
			if err != nil {
				return err
			}

			imageCodec, err := app.NewCodec(cfg)
			if err != nil {
				return err
			}

			options := models.NewOutputOptions(cfg.OutputDirectory, cfg.OutputFormat, imageCodec.EncodableExtensions())
			if err := options.SetFormat(cfg.OutputFormat); err != nil {
				return fmt.Errorf("codec %s: %w", imageCodec.Name(), err)
			}

			out := cmd.OutOrStdout()
			emitter := report.Multi{report.NewConsole(out), report.NewLogging(log)}
			state := models.NewConversionStateRepository()
			registry := models.NewFileRegistry(cfg.SupportedExtensions)
			runner := services.NewConversionRunner(imageCodec, emitter, state, log)
			controller := controllers.NewMainController(registry, runner, state, options, emitter, log)

			added := controller.AddFiles(args)
			if added.Unsupported > 0 {
				emitter.Log(report.ColorInfo, fmt.Sprintf("INFO : %d non supported file(s) selected", added.Unsupported))
			}
			for _, dup := range added.Duplicates {
				emitter.Log(report.ColorInfo, fmt.Sprintf("INFO : %s listed twice, keeping the first", dup))
			}

			if len(opts.exclude) > 0 {
				controller.RemoveSelected(opts.exclude)
			}

			var summary models.Summary
			if cmd.Flags().Changed("select") {
				summary, err = controller.ConvertSelected(opts.selection)
			} else {
				summary, err = controller.ConvertAll()
			}
			if err != nil {
				return err
			}

			if summary.Aborted > 0 {
				return fmt.Errorf("%d file(s) aborted", summary.Aborted)
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&opts.selection, "select", nil, "convert only these positions")
	cmd.Flags().IntSliceVar(&opts.exclude, "exclude", nil, "remove these positions before converting")
	return cmd
}
