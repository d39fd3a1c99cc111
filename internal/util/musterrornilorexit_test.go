package util

import (
	"bou.ke/monkey"
	"github.com/bokysan/radixace/internal/radix"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"os"
	"sync"
	"testing"
)

// seqMutex makes sure that we are executing the code sequentially, as we are monkey-patching the code in-memory.
// This is not thread safe or safe in any kind of way
var seqMutex sync.Mutex

// patchExit replaces os.Exit with a function recording the exit code. The returned function restores it.
func patchExit(exitCode *int, exited *bool) func() {
	seqMutex.Lock()
	patch := monkey.Patch(os.Exit, func(i int) {
		*exited = true
		*exitCode = i
	})
	return func() {
		patch.Unpatch()
		seqMutex.Unlock()
	}
}

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	var exitCode int
	var exited bool
	defer patchExit(&exitCode, &exited)()

	MustErrorNilOrExit(nil)

	require.False(t, exited, "MustErrorNilOrExit existed the program and it shouldn't have done so.")
}

func Test_MustErrorNilOrExit_FlagsError(t *testing.T) {
	var exitCode int
	var exited bool
	defer patchExit(&exitCode, &exited)()

	err := &flags.Error{
		Type:    flags.ErrShortNameTooLong,
		Message: "Short name too long",
	}

	MustErrorNilOrExit(errors.WithStack(err))

	require.True(t, exited)
	require.Equal(t, int(flags.ErrShortNameTooLong), exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_Help(t *testing.T) {
	var exitCode int
	var exited bool
	defer patchExit(&exitCode, &exited)()

	MustErrorNilOrExit(&flags.Error{Type: flags.ErrHelp})

	require.True(t, exited)
	require.Equal(t, 0, exitCode)
}

func Test_MustErrorNilOrExit_CodecError(t *testing.T) {
	var exitCode int
	var exited bool
	defer patchExit(&exitCode, &exited)()

	_, err := radix.Default().DecodeNumberBase("G", 16)
	MustErrorNilOrExit(errors.Wrap(err, "could not decode"))

	require.True(t, exited)
	require.Equal(t, ErrCodecBase+int(radix.KindDigitOutOfRange), exitCode)
}

func Test_MustErrorNilOrExit_GenericError(t *testing.T) {
	var exitCode int
	var exited bool
	defer patchExit(&exitCode, &exited)()

	err := errors.New("demo")

	MustErrorNilOrExit(err)

	require.Equal(t, ErrGeneric, exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_ExitCode(t *testing.T) {
	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, 65, ExitCode(radix.ErrInvalidSymbol))
	require.Equal(t, 68, ExitCode(errors.WithStack(radix.ErrTruncatedInput)))
	require.Equal(t, ErrGeneric, ExitCode(errors.New("boom")))
}
