package logger

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

var std = log.New()

// fatalOut receives fatal entries when logging is switched off.
var fatalOut io.Writer = os.Stderr

// Init configures the logger. Supported levels are debug, info, warn,
// error and off; format is text or json.
func Init(level, format string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		std.SetLevel(log.DebugLevel)
	case "warn", "warning":
		std.SetLevel(log.WarnLevel)
	case "error":
		std.SetLevel(log.ErrorLevel)
	case "off", "none", "0":
		std.SetOutput(io.Discard)
	default:
		std.SetLevel(log.InfoLevel)
	}
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		std.SetFormatter(&log.JSONFormatter{})
	}
}

// L returns the underlying logger.
func L() *log.Logger { return std }

func Enabled() bool { return std.Out != io.Discard }

func Debugf(format string, v ...any) { std.Debugf(format, v...) }

func Infof(format string, v ...any) { std.Infof(format, v...) }

func Warnf(format string, v ...any) { std.Warnf(format, v...) }

func Errorf(format string, v ...any) { std.Errorf(format, v...) }

// Fatalf logs and exits. It writes to stderr even when the level is "off".
func Fatalf(format string, v ...any) {
	if !Enabled() {
		std.SetOutput(fatalOut)
	}
	std.Fatalf(format, v...)
}

func WithError(err error) *log.Entry { return std.WithError(err) }

func WithFields(fields log.Fields) *log.Entry { return std.WithFields(fields) }
