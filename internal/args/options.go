package args

import (
	"github.com/bokysan/radixace/internal/radix"
	"github.com/pkg/errors"
)

type CallbackOption func(string) error

// GeneralOptions are shared by all commands
type GeneralOptions struct {
	Verbose               []bool         `yaml:"verbose"            short:"v" long:"verbose"             env:"VERBOSITY"            description:"Show verbose debug information"`
	ConfigurationFile     CallbackOption `yaml:"-"                  short:"c" long:"config"              env:"CONFIG"               description:"Configuration file (yaml-formatted)" no-ini:"true"`
	ConfigurationFilePath string         `yaml:"-"`
	LogFile               *string        `yaml:"log-file"           short:"l" long:"log-file"            env:"LOG_FILE"             description:"Log file (file will be appended). If not set, defaults to stderr." default:"-"`
	LogFormat             string         `yaml:"log-format"         short:"f" long:"log-format"          env:"LOG_FORMAT"           description:"Log file format (json or text)." choice:"text" choice:"json" default:"text"`
	LogColor              string         `yaml:"log-color"          short:"C" long:"log-color"           env:"LOG_COLOR"            description:"Should the log output be colored? true, false or auto" choice:"yes" choice:"no" choice:"true" choice:"false" choice:"auto" default:"auto"`
	LogFullTimestamp      bool           `yaml:"log-full-timestamp"           long:"log-full-timestamp"  env:"LOG_FULL_TIMESTAMP"   description:"Display full timestamp in logs."`
	LogReportCaller       bool           `yaml:"log-report-caller"            long:"log-report-caller"   env:"LOG_REPORT_CALLER"    description:"If you wish to add the calling method as a field."`
}

// AlphabetOptions select the symbol table used by the codecs. Either pick one of the presets or
// provide your own symbols. Pad and zero override whatever the preset defines.
type AlphabetOptions struct {
	Preset  string `yaml:"preset"  short:"p" long:"preset"  env:"RADIX_PRESET"  description:"Built-in alphabet (url64, web64 or tilde64)" default:"url64"`
	Symbols string `yaml:"symbols" short:"s" long:"symbols" env:"RADIX_SYMBOLS" description:"Custom digit symbols, in order. Overrides the preset."`
	Pad     string `yaml:"pad"               long:"pad"     env:"RADIX_PAD"     description:"Pad / end-of-text sentinel symbol"`
	Zero    string `yaml:"zero"    short:"z" long:"zero"    env:"RADIX_ZERO"    description:"How to spell zero" choice:"digit" choice:"pad"`
}

var General GeneralOptions

var Alphabet AlphabetOptions

// Build creates the alphabet described by the options
func (o *AlphabetOptions) Build() (*radix.Alphabet, error) {
	preset := o.Preset
	if preset == "" {
		preset = radix.DefaultPreset
	}

	base, err := radix.Preset(preset)
	if err != nil {
		return nil, err
	}
	if o.Symbols == "" && o.Pad == "" && o.Zero == "" {
		return base, nil
	}

	name := base.Name()
	symbols := base.Symbols()
	if o.Symbols != "" {
		name = "custom"
		symbols = o.Symbols
	}
	opts := []radix.Option{radix.WithName(name), radix.WithZero(base.Zero())}
	if pad, ok := base.Pad(); ok {
		opts = append(opts, radix.WithPad(pad))
	}

	if o.Pad != "" {
		pad := []rune(o.Pad)
		if len(pad) != 1 {
			return nil, errors.Errorf("Pad must be exactly one character, got %q", o.Pad)
		}
		opts = append(opts, radix.WithPad(pad[0]))
	}
	if o.Zero != "" {
		zero, err := radix.ParseZeroStyle(o.Zero)
		if err != nil {
			return nil, err
		}
		opts = append(opts, radix.WithZero(zero))
	}

	a, err := radix.NewAlphabet(symbols, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid alphabet configuration")
	}
	return a, nil
}
