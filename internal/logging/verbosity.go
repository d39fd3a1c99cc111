package logging

import (
	log "github.com/sirupsen/logrus"
)

// Verbosity converts the number of `-v` flags into a log level. Without any flags only warnings and
// errors are shown, so that encoded output on the terminal is not drowned in log lines.
func Verbosity(count int) log.Level {
	verbosity := log.WarnLevel + log.Level(count)
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	return verbosity
}

func VerbosityName(level log.Level) string {
	switch level {
	case log.PanicLevel:
		return "PANIC"
	case log.FatalLevel:
		return "FATAL"
	case log.ErrorLevel:
		return "ERROR"
	case log.WarnLevel:
		return "WARN"
	case log.InfoLevel:
		return "INFO"
	case log.DebugLevel:
		return "DEBUG"
	default:
		return "TRACE"
	}
}
