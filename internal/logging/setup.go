package logging

import (
	"github.com/bokysan/radixace/internal/args"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"strings"
)

// SetupLogging configures the standard logrus logger from the general options
func SetupLogging() {
	if err := Configure(log.StandardLogger(), &args.General); err != nil {
		log.WithError(err).Errorf("Could not open log file: %v", err)
	}
}

// Configure applies the given options to the logger. It fails only if the log file can not be opened;
// the rest of the configuration is applied regardless.
func Configure(logger *log.Logger, opts *args.GeneralOptions) error {
	logger.SetLevel(Verbosity(len(opts.Verbose)))

	// Configure may run more than once per process, so the caller hook is swapped rather than stacked
	hooks := make(log.LevelHooks)
	for _, level := range log.AllLevels {
		for _, hook := range logger.Hooks[level] {
			if !isContextHook(hook) {
				hooks[level] = append(hooks[level], hook)
			}
		}
	}
	if opts.LogReportCaller {
		hooks.Add(&ContextHook{})
	}
	logger.ReplaceHooks(hooks)

	if opts.LogFormat == "json" {
		logger.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		})
	} else {
		color := strings.TrimSpace(strings.ToLower(opts.LogColor))
		logger.SetFormatter(&log.TextFormatter{
			ForceColors:   color == "yes" || color == "true" || color == "1",
			DisableColors: color == "no" || color == "false" || color == "0",
			FullTimestamp: opts.LogFullTimestamp,
		})
	}
	logger.SetReportCaller(opts.LogReportCaller)
	logger.Debugf("Verbosity level: %v", VerbosityName(logger.GetLevel()))

	if opts.LogFile != nil && len(*opts.LogFile) > 0 && *opts.LogFile != "-" {
		f, err := os.OpenFile(*opts.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return errors.WithStack(err)
		}
		logger.SetOutput(f)
	}

	return nil
}

func isContextHook(hook log.Hook) bool {
	switch hook.(type) {
	case ContextHook, *ContextHook:
		return true
	}
	return false
}
