package version

import (
	"fmt"
	"github.com/bokysan/radixace/internal/commands"
	"github.com/bokysan/radixace/internal/version"
	"github.com/k0kubun/go-ansi"
	"io"
	"os"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the build details
type Command struct {
	Plain bool `long:"plain" description:"Print only the version, without colors"`
}

func (i *Command) String() string {
	return "Version details"
}

func (i *Command) Execute(_ []string) error {
	if i.Plain {
		return commands.Println(version.AppVersion())
	}
	out := commands.Output
	if out == os.Stdout {
		// translates the escape sequences on terminals which don't understand them
		out = ansi.NewAnsiStdout()
	}
	PrintVersion(out)
	for _, line := range [][2]string{
		{"Git tag     ", version.GitTag},
		{"Git branch  ", version.GitBranch},
		{"Git state   ", version.GitState},
		{"Go version  ", version.GoVersion},
	} {
		if line[1] != "" {
			fmt.Fprintf(out, DarkGray+" "+line[0]+White+"%+v"+Reset+"\n", line[1])
		}
	}
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion(out io.Writer) {
	v := version.Version
	if v == "" {
		v = version.GitTag
	}

	fmt.Fprintf(out, Bold+BackgroundBlue+
		LightGray+" RADIXACE - Arbitrary-precision radix codecs "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		v, version.BuildDate, version.GitCommit)
}
