package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"unitconv/internal/convert"
	xlog "unitconv/internal/log"
)

const (
	envPrefix     = "UNITCONV"
	defaultConfig = "data.json"
)

// errReported is returned by commands that already printed their failure.
var errReported = errors.New("reported")

// app is the state shared by every command of one invocation.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "unitconv",
		Short: "unitconv - convert measurements between configured units",
		Long: `unitconv converts a value from one unit to another using a graph of
scale and offset conversions loaded from a JSON or YAML file.

Units that are not directly related are converted through intermediate
units, e.g. Celsius -> _C1 (x1.8) -> Fahrenheit (+32).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogger()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", defaultConfig, "Path to the units file (JSON, or YAML by extension)")
	flags.String("log-level", xlog.DefaultConfig().Level, "Log level (debug, info, warn, error)")
	flags.String("log-format", xlog.DefaultConfig().Encoding, "Log format (console, json)")

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlags(flags)

	root.AddCommand(
		newConvertCmd(a),
		newListCmd(a),
		newPathCmd(a),
		newValidateCmd(a),
		newFmtCmd(a),
		newReplCmd(a),
		newVersionCmd(),
	)

	return root
}

func (a *app) setupLogger() error {
	cfg := xlog.DefaultConfig()
	cfg.Level = a.v.GetString("log-level")
	cfg.Encoding = a.v.GetString("log-format")

	logger, err := xlog.New(cfg)
	if err != nil {
		return err
	}

	a.logger = logger

	return nil
}

func (a *app) configPath() string {
	return a.v.GetString("config")
}

func (a *app) loadConverter() (*convert.Converter, error) {
	path := a.configPath()
	a.logger.Debug("loading units", zap.String("path", path))

	return convert.Load(path, convert.WithLogger(a.logger))
}
