package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-values/engine"
	"github.com/wippyai/wasm-values/literal"
	"github.com/wippyai/wasm-values/value"
)

type app struct {
	v      *viper.Viper
	cfg    *Config
	logger *zap.Logger
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v}
	setupViper(v)

	root := &cobra.Command{
		Use:           "wasmval",
		Short:         "Render, encode and call wasm numeric values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml, toml or json)")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.String("script-name", "", "script filename reported by script-name")
	pf.Bool("interpreter", false, "use the wazero interpreter instead of the compiler")
	pf.Uint32("memory-limit-pages", 0, "memory limit per instance in 64KiB pages")
	pf.Bool("preserve-i64", false, "return i64 results as Long (call --raw)")
	pf.Bool("strict-i64", false, "fail on i64 results a host number cannot hold (call --raw)")
	pf.Bool("no-color", false, "disable colored output")
	_ = v.BindPFlags(pf)

	root.AddCommand(
		a.renderCmd(),
		a.sigCmd(),
		a.callCmd(),
		a.exportsCmd(),
		a.scriptNameCmd(),
	)
	return root
}

func (a *app) init() error {
	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	value.SetLogger(logger.Named("value"))
	literal.SetLogger(logger.Named("literal"))
	engine.SetLogger(logger.Named("engine"))

	a.cfg = cfg
	a.logger = logger
	return nil
}
