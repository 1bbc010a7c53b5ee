package log

import (
	"io"
	"os"

	"github.com/StakeportTeam/stakeport-go-node/config"
	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func InitLog(cfg *config.Config) {
	var dest io.Writer = os.Stdout

	if cfg.LogPath != "stdout" {
		file, err := os.OpenFile(cfg.LogPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			panic(err)
		}

		dest = file
	}

	if cfg.LogFormat == config.LogFormatPlain {
		dest = zerolog.ConsoleWriter{Out: dest}
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		panic(err)
	}

	SetLogger(zerolog.New(dest).Level(level).With().Timestamp().Logger())
}

func SetLogger(l zerolog.Logger) {
	logger = l
}

func Info(msg string, ctx ...interface{}) {
	logger.Info().Fields(ctx).Msg(msg)
}

func Error(msg string, ctx ...interface{}) {
	logger.Error().Fields(ctx).Msg(msg)
}

func Fatal(msg string, ctx ...interface{}) {
	logger.Fatal().Fields(ctx).Msg(msg)
}

func With(ctx ...interface{}) zerolog.Logger {
	return logger.With().Fields(ctx).Logger()
}
