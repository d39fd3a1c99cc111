package util

import (
	"github.com/bokysan/radixace/internal/radix"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrGeneric is the exit code for errors which are neither flags nor codec errors
	ErrGeneric = 99

	// ErrCodecBase is added to the radix.Kind of a codec error to get the exit code, e.g. an invalid
	// symbol exits with 65
	ErrCodecBase = 64
)

// ExitCode maps the error to the process exit code. Error code is unwrapped from `flags.Error` or
// `radix.Error`. If it's a different kind of error, a generic error code - 99 - is returned.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	}

	if kind := radix.KindOf(err); kind != radix.KindUnknown {
		return ErrCodecBase + int(kind)
	}

	return ErrGeneric
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code provided
// by ExitCode.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
