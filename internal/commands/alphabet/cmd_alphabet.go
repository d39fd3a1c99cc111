package alphabet

import (
	"fmt"
	"github.com/bokysan/radixace/internal/args"
	"github.com/bokysan/radixace/internal/commands"
	"github.com/bokysan/radixace/internal/logging"
	"github.com/bokysan/radixace/internal/radix"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
)

// Command prints the alphabet selected by the alphabet options
type Command struct {
	List bool `long:"list" description:"List the names of the preset alphabets instead"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) Execute(_ []string) error {
	logging.SetupLogging()

	if c.List {
		for _, name := range radix.PresetNames() {
			a, err := radix.Preset(name)
			if err != nil {
				return err
			}
			if err := commands.Println(a.String()); err != nil {
				return err
			}
		}
		return nil
	}

	a, err := args.Alphabet.Build()
	if err != nil {
		return err
	}
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Alphabet options:\n%s", spew.Sdump(args.Alphabet))
	}

	pad := "none"
	if p, ok := a.Pad(); ok {
		pad = fmt.Sprintf("%q", p)
	}
	sentinel := "none"
	if codec, err := radix.NewTextCodec(a); err == nil {
		sentinel = codec.Sentinel()
	}

	for _, line := range [][2]interface{}{
		{"Name", a.Name()},
		{"Radix", a.Radix()},
		{"Symbols", string(a.Symbols())},
		{"Pad", pad},
		{"Zero", a.Zero()},
		{"Chunk width", a.ChunkWidth()},
		{"Sentinel", sentinel},
	} {
		if err := commands.Println(fmt.Sprintf("%-12s %v", line[0], line[1])); err != nil {
			return err
		}
	}
	return nil
}
