package number

import (
	"github.com/bokysan/radixace/internal/args"
	"github.com/bokysan/radixace/internal/commands"
	"github.com/bokysan/radixace/internal/logging"
	"github.com/bokysan/radixace/internal/radix"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command groups the integer codec subcommands
type Command struct {
	Encode EncodeCommand `command:"encode" description:"Encode decimal numbers (arguments or stdin lines) into symbols"`
	Decode DecodeCommand `command:"decode" description:"Decode symbols (arguments or stdin lines) into decimal numbers"`
}

func NewCommand() *Command {
	return &Command{}
}

type EncodeCommand struct {
	Base int `short:"b" long:"base" env:"RADIX_BASE" description:"Use only the first <base> symbols of the alphabet. Defaults to the full radix."`
}

type DecodeCommand struct {
	Base int `short:"b" long:"base" env:"RADIX_BASE" description:"Use only the first <base> symbols of the alphabet. Defaults to the full radix."`
}

func baseOrRadix(base int, a *radix.Alphabet) int {
	if base == 0 {
		return a.Radix()
	}
	return base
}

func (c *EncodeCommand) Execute(values []string) error {
	logging.SetupLogging()

	a, err := args.Alphabet.Build()
	if err != nil {
		return err
	}
	base := baseOrRadix(c.Base, a)

	values, err = commands.Values(values)
	if err != nil {
		return err
	}
	for _, s := range values {
		v, err := radix.ParseNumber(s)
		if err != nil {
			return err
		}
		encoded, err := a.EncodeNumberBase(v, base)
		if err != nil {
			return errors.WithStack(err)
		}
		log.Debugf("%v -> %q (base %d, %v)", v, encoded, base, a)
		if err := commands.Println(encoded); err != nil {
			return err
		}
	}
	return nil
}

func (c *DecodeCommand) Execute(values []string) error {
	logging.SetupLogging()

	a, err := args.Alphabet.Build()
	if err != nil {
		return err
	}
	base := baseOrRadix(c.Base, a)

	values, err = commands.Values(values)
	if err != nil {
		return err
	}
	for _, s := range values {
		v, err := a.DecodeNumberBase(s, base)
		if err != nil {
			return errors.Wrapf(err, "Could not decode %q", s)
		}
		log.Debugf("%q -> %v (base %d, %v)", s, v, base, a)
		if err := commands.Println(v.String()); err != nil {
			return err
		}
	}
	return nil
}
