package main

import (
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/wasm-values/engine"
	"github.com/wippyai/wasm-values/errors"
)

// Config is the resolved CLI configuration: flags, then WASMVAL_*
// environment variables, then the config file.
type Config struct {
	LogLevel         string
	LogFormat        string
	Script           string
	Interpreter      bool
	MemoryLimitPages uint32
	PreserveI64      bool
	StrictI64        bool
	NoColor          bool
}

func setupViper(v *viper.Viper) {
	v.SetEnvPrefix("WASMVAL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-format", "console")
}

func loadConfig(v *viper.Viper) (*Config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(errors.ClassRuntime, errors.PhaseConfig, errors.KindInvalidData, err,
				"read config file "+path)
		}
	}
	return &Config{
		LogLevel:         v.GetString("log-level"),
		LogFormat:        v.GetString("log-format"),
		Script:           v.GetString("script-name"),
		Interpreter:      v.GetBool("interpreter"),
		MemoryLimitPages: v.GetUint32("memory-limit-pages"),
		PreserveI64:      v.GetBool("preserve-i64"),
		StrictI64:        v.GetBool("strict-i64"),
		NoColor:          v.GetBool("no-color"),
	}, nil
}

// ScriptName returns the script filename the host was started with.
func (c *Config) ScriptName() (string, error) {
	if c.Script == "" {
		return "", errors.New(errors.ClassRuntime, errors.PhaseConfig, errors.KindNotFound).
			Detail("could not determine script filename").
			Build()
	}
	return c.Script, nil
}

func (c *Config) Engine() *engine.Config {
	return &engine.Config{
		MemoryLimitPages: c.MemoryLimitPages,
		Interpreter:      c.Interpreter,
		PreserveI64:      c.PreserveI64,
		StrictI64:        c.StrictI64,
	}
}

// Logger builds a zap logger writing to stderr.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(errors.ClassRuntime, errors.PhaseConfig, errors.KindInvalidData, err,
			"log-level")
	}

	var zc zap.Config
	switch c.LogFormat {
	case "json":
		zc = zap.NewProductionConfig()
	case "console", "":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, errors.New(errors.ClassRuntime, errors.PhaseConfig, errors.KindInvalidData).
			Detail("unknown log-format %q", c.LogFormat).
			Build()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
