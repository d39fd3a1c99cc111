package armor

import (
	"github.com/bokysan/radixace/internal/commands"
	"github.com/bokysan/radixace/internal/logging"
	"github.com/bokysan/radixace/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io/ioutil"
	"strings"
)

// Command groups the byte armor subcommands. Both read everything from stdin and write to stdout.
type Command struct {
	Encode EncodeCommand `command:"encode" description:"Armor binary data from stdin into text"`
	Decode DecodeCommand `command:"decode" description:"Turn armored text from stdin back into binary data"`
}

func NewCommand() *Command {
	return &Command{}
}

type codecOption struct {
	Codec string `short:"e" long:"codec" env:"RADIX_CODEC" description:"Encoder: raw, base128, base91, base85, radix, base64, base64u or base32. The base64 family uses the unpadded DNS-safe alphabet a-zA-Z-0-9 with + or _ as the last symbol, not RFC 4648." default:"base64u"`
}

type EncodeCommand struct {
	codecOption
}

type DecodeCommand struct {
	codecOption
}

func (c *EncodeCommand) Execute(_ []string) error {
	logging.SetupLogging()

	encoder, err := enc.Find(c.Codec)
	if err != nil {
		return err
	}
	data, err := ioutil.ReadAll(commands.Input)
	if err != nil {
		return errors.WithStack(err)
	}
	encoded := encoder.Encode(data)
	log.Debugf("%v: %d bytes -> %d characters", encoder.Name(), len(data), len(encoded))
	return commands.Println(encoded)
}

func (c *DecodeCommand) Execute(_ []string) error {
	logging.SetupLogging()

	encoder, err := enc.Find(c.Codec)
	if err != nil {
		return err
	}
	data, err := ioutil.ReadAll(commands.Input)
	if err != nil {
		return errors.WithStack(err)
	}
	decoded, err := encoder.Decode(strings.TrimRight(string(data), "\r\n"))
	if err != nil {
		return errors.Wrapf(err, "Could not decode %v input", encoder.Name())
	}
	log.Debugf("%v: %d characters -> %d bytes", encoder.Name(), len(data), len(decoded))
	_, err = commands.Output.Write(decoded)
	return errors.WithStack(err)
}
