package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var log = newConsoleLogger(os.Stdout)

func newConsoleLogger(w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    !isTerminal(w),
	}
	output.FormatLevel = func(i interface{}) string {
		return fmt.Sprintf("[%s]", i)
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Init points the logger at stdout and picks the level.
// CRYPTFOLIO_LOG_LEVEL names a level (debug, info, warn, error); DEBUG forces debug.
func Init() {
	log = newConsoleLogger(os.Stdout)

	level := zerolog.InfoLevel
	var invalid string
	if v := os.Getenv("CRYPTFOLIO_LOG_LEVEL"); v != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(v)))
		if err != nil || parsed == zerolog.NoLevel {
			invalid = v
		} else {
			level = parsed
		}
	}

	if _, exists := os.LookupEnv("DEBUG"); exists {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)

	if invalid != "" {
		Warn("Unknown log level %q, using %s", invalid, level)
	}
}

// SetOutput redirects the logger, keeping the current level.
func SetOutput(w io.Writer) {
	log = newConsoleLogger(w)
}

func Debug(msg string, args ...interface{}) {
	log.Debug().Msgf(msg, args...)
}

func Info(msg string, args ...interface{}) {
	log.Info().Msgf(msg, args...)
}

// Success logs a completed step at info level with a check mark.
func Success(msg string, args ...interface{}) {
	log.Info().Msgf("✅ "+msg, args...)
}

func Warn(msg string, args ...interface{}) {
	log.Warn().Msgf(msg, args...)
}

func Error(msg string, args ...interface{}) {
	log.Error().Msgf(msg, args...)
}

// Fatal logs and exits with status 1.
func Fatal(msg string, args ...interface{}) {
	log.Fatal().Msgf(msg, args...)
}
