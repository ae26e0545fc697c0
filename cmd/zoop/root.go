package main

import (
	"zoop-converter/internal/app"
	"zoop-converter/internal/config"
	"zoop-converter/internal/logger"

	"github.com/spf13/cobra"
)

// set at build time with -ldflags
var version = "dev"

type rootOptions struct {
	cfgFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "zoop",
		Short: "Batch image format converter",
		Long: `zoop converts batches of images between formats.

Without a subcommand it opens the desktop window. The convert subcommand
runs the same conversion headless.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load(cmd)
			if err != nil {
				return err
			}

			application, err := app.NewApplication(cfg, log)
			if err != nil {
				log.Error("Main", err, nil)
				return err
			}
			return application.Run()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default ./zoop.yaml or $HOME/.config/zoop/zoop.yaml)")
	flags.String("codec", config.CodecImaging, `conversion backend ("imaging" or "opencv")`)
	flags.StringP("format", "f", ".jpg", "output extension, for example .png")
	flags.StringP("output", "o", "", "output directory (default ./converted)")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.Bool("log-json", false, "write logs as JSON lines")

	cmd.AddCommand(newConvertCmd(opts))
	return cmd
}

// load reads the configuration and builds the logger. An explicit
// --log-level wins over LOG_LEVEL and DEBUG.
func (o *rootOptions) load(cmd *cobra.Command) (config.Config, logger.Logger, error) {
	cfg, err := config.Load(o.cfgFile, cmd.Flags())
	if err != nil {
		return config.Config{}, nil, err
	}

	level := cfg.LogLevel
	if !cmd.Flags().Changed("log-level") {
		level = logger.LevelFromEnv(level)
	}
	log := logger.New(cmd.ErrOrStderr(), level, cfg.LogJSON)

	log.Debug("Main", "configuration loaded", map[string]interface{}{
		"file":   cfg.ConfigFileUsed,
		"codec":  cfg.Codec,
		"output": cfg.OutputDirectory,
		"format": cfg.OutputFormat,
	})
	return cfg, log, nil
}
