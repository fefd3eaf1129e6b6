package bramble

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level is a logging verbosity threshold.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", l)
}

// ParseLevel parses one of trace, debug, info, warn (or warning) and error.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return LevelWarn, nil
	}
	for i, n := range levelNames {
		if n == s {
			return Level(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("bramble: unknown log level %q", s)
}

// Logger receives all bramble log output. Replace it or call SetupLogging to
// redirect; it writes to stderr by default.
var Logger = log.New(os.Stderr, "", log.LstdFlags)

var logLevel = LevelInfo

// SetLogLevel sets the minimum level that is written to Logger.
func SetLogLevel(l Level) { logLevel = l }

// SetupLogging points Logger at w using the level and timestamp settings from
// cfg. A nil writer discards output.
func SetupLogging(cfg LoggingConfig, w io.Writer) error {
	lvl, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if w == nil {
		w = io.Discard
	}
	flags := 0
	if cfg.UseTimestamps {
		flags = log.LstdFlags | log.Lmicroseconds
	}
	Logger = log.New(w, "", flags)
	logLevel = lvl
	return nil
}

func logf(l Level, format string, args ...any) {
	if l < logLevel {
		return
	}
	Logger.Printf("[%s] "+format, append([]any{l.String()}, args...)...)
}

func logTracef(format string, args ...any) { logf(LevelTrace, format, args...) }
func logDebugf(format string, args ...any) { logf(LevelDebug, format, args...) }
func logInfof(format string, args ...any)  { logf(LevelInfo, format, args...) }
func logWarnf(format string, args ...any)  { logf(LevelWarn, format, args...) }
func logErrorf(format string, args ...any) { logf(LevelError, format, args...) }

// Logf writes a message at level l through the bramble logger, for
// applications that want their output filtered the same way.
func Logf(l Level, format string, args ...any) { logf(l, format, args...) }
