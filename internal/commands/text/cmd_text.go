package text

import (
	"github.com/bokysan/radixace/internal/args"
	"github.com/bokysan/radixace/internal/commands"
	"github.com/bokysan/radixace/internal/logging"
	"github.com/bokysan/radixace/internal/radix"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"strings"
)

// Command groups the text codec subcommands
type Command struct {
	Encode EncodeCommand `command:"encode" description:"Encode text (arguments or stdin lines, kept verbatim) into self-delimiting symbol streams"`
	Decode DecodeCommand `command:"decode" description:"Decode symbol streams (arguments or stdin lines) back into text"`
}

func NewCommand() *Command {
	return &Command{}
}

type EncodeCommand struct {
	Join bool `short:"j" long:"join" description:"Write all streams on one line. They can be split again with 'decode --all'."`
}

type DecodeCommand struct {
	All bool `short:"a" long:"all" description:"Each input holds several concatenated streams; decode all of them"`
}

func textCodec() (*radix.TextCodec, error) {
	a, err := args.Alphabet.Build()
	if err != nil {
		return nil, err
	}
	return radix.NewTextCodec(a)
}

func (c *EncodeCommand) Execute(values []string) error {
	logging.SetupLogging()

	codec, err := textCodec()
	if err != nil {
		return err
	}
	values, err = commands.Lines(values)
	if err != nil {
		return err
	}

	var joined strings.Builder
	for _, s := range values {
		encoded := codec.EncodeString(s)
		log.Debugf("%q -> %q", s, encoded)
		if c.Join {
			joined.WriteString(encoded)
		} else if err := commands.Println(encoded); err != nil {
			return err
		}
	}
	if c.Join {
		return commands.Println(joined.String())
	}
	return nil
}

func (c *DecodeCommand) Execute(values []string) error {
	logging.SetupLogging()

	codec, err := textCodec()
	if err != nil {
		return err
	}
	values, err = commands.Values(values)
	if err != nil {
		return err
	}

	for _, s := range values {
		var texts []string
		if c.All {
			texts, err = codec.DecodeAll(s)
		} else {
			var text string
			text, err = codec.DecodeString(s)
			texts = []string{text}
		}
		if err != nil {
			return errors.Wrapf(err, "Could not decode %q", s)
		}
		for _, text := range texts {
			if err := commands.Println(text); err != nil {
				return err
			}
		}
	}
	return nil
}
