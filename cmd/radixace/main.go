package main

import (
	"fmt"
	"github.com/bokysan/radixace/internal/args"
	"github.com/bokysan/radixace/internal/commands/alphabet"
	"github.com/bokysan/radixace/internal/commands/armor"
	"github.com/bokysan/radixace/internal/commands/number"
	"github.com/bokysan/radixace/internal/commands/serve"
	"github.com/bokysan/radixace/internal/commands/text"
	"github.com/bokysan/radixace/internal/commands/version"
	raFlags "github.com/bokysan/radixace/internal/flags"
	"github.com/bokysan/radixace/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// RadixAce is the main executable
type RadixAce struct {
	parser *flags.Parser
}

// NewRadixAce will create a new instance of RadixAce and initialize the parser
func NewRadixAce() *RadixAce {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	ra := &RadixAce{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	ra.setupGroups()
	ra.addCommand("version", "Print the version", "Print the application version and exit", &version.Command{})
	ra.addCommand("number", "Encode and decode numbers", "Convert arbitrary-size non-negative decimal numbers to and from symbol strings", number.NewCommand())
	ra.addCommand("text", "Encode and decode text", "Convert text to and from self-delimiting, fixed-width symbol streams", text.NewCommand())
	ra.addCommand("armor", "Armor binary data", "Encode binary data from stdin with one of the byte encoders", armor.NewCommand())
	ra.addCommand("alphabet", "Show the alphabet", "Print the details of the selected alphabet", alphabet.NewCommand())
	ra.addCommand("serve", "Run the HTTP API", "Expose the codecs over a JSON HTTP API", serve.NewCommand())

	return ra
}

// setupGroups will configure the general and alphabet options. The short descriptions double as the
// section names in the configuration file.
func (ra *RadixAce) setupGroups() {
	if _, err := ra.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
	if _, err := ra.parser.AddGroup("Alphabet", "Alphabet options", &args.Alphabet); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

func (ra *RadixAce) addCommand(name, short, long string, cmd interface{}) {
	_, err := ra.parser.AddCommand(name, short, long, cmd)
	util.MustErrorNilOrExit(err)
}

// main starts radixace and reads the configuration file
func main() {

	radixAce := NewRadixAce()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := raFlags.NewYamlParser(radixAce.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := radixAce.parser.Parse()
	util.MustErrorNilOrExit(err)

}
