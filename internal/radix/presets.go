package radix

import (
	"github.com/pkg/errors"
	"sort"
)

const (
	digits = "0123456789"
	upper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lower  = "abcdefghijklmnopqrstuvwxyz"
)

// Names of the built-in alphabets
const (
	URL64   = "url64"
	Web64   = "web64"
	Tilde64 = "tilde64"
)

// DefaultPreset is used when nothing else is configured
const DefaultPreset = URL64

// All three built-in alphabets only use characters which are safe in an URL query string.
var presets = map[string]*Alphabet{
	// 0-9A-Za-z-_ with a separate '.' as pad. Zero is "0".
	URL64: MustNewAlphabet(digits+upper+lower+"-_", WithName(URL64), WithPad('.'), WithZero(ZeroDigit)),

	// A-Za-z0-9-_ with a separate '~' as pad. Zero is spelled as the pad, "~".
	Web64: MustNewAlphabet(upper+lower+digits+"-_", WithName(Web64), WithPad('~'), WithZero(ZeroPad)),

	// 0-9a-zA-Z_~ where '~' is both digit 63 and the pad. Zero is "0".
	Tilde64: MustNewAlphabet(digits+lower+upper+"_~", WithName(Tilde64), WithPad('~')),
}

// Preset returns one of the built-in alphabets by name
func Preset(name string) (*Alphabet, error) {
	if a, ok := presets[name]; ok {
		return a, nil
	}
	return nil, errors.WithStack(invalidAlphabet("unknown preset %q, available: %v", name, PresetNames()))
}

// PresetNames lists the names of the built-in alphabets, sorted
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Default returns the default alphabet
func Default() *Alphabet {
	return presets[DefaultPreset]
}
