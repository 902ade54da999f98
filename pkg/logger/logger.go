package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/noah-isme/anycanvas/pkg/config"
)

const timeLayout = "2006-01-02 15:04:05"

// ParseLevel maps the accepted level names (DEBUG, INFO, WARNING, ERROR) onto zap levels,
// ignoring case. Anything unrecognised falls back to info.
func ParseLevel(raw string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARNING", "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds the process logger. The threshold is passed in explicitly so the caller decides
// between the flag and the environment setting.
func New(cfg *config.Config, level zapcore.Level) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg != nil && cfg.Env == config.EnvProduction {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	format := ""
	if cfg != nil {
		format = cfg.Log.Format
	}
	switch format {
	case "json":
		zapCfg.Encoding = "json"
	default:
		zapCfg.Encoding = "console"
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return zapCfg.Build()
}
