package radix

import (
	"fmt"
	"github.com/hashicorp/go-multierror"
	"strings"
)

// maxCodeUnit is the largest value a single UTF-16 code unit can hold
const maxCodeUnit = 0xFFFF

// ZeroStyle defines how the number zero is spelled by an alphabet
type ZeroStyle int

const (
	// ZeroDigit spells zero as the first symbol of the alphabet, e.g. "0"
	ZeroDigit ZeroStyle = iota
	// ZeroPad spells zero as the pad symbol. The pad must live outside the alphabet.
	ZeroPad
)

var zeroStyleNames = []string{"digit", "pad"}

func (z ZeroStyle) String() string {
	if z >= 0 && int(z) < len(zeroStyleNames) {
		return zeroStyleNames[z]
	}
	return fmt.Sprintf("ZeroStyle(%d)", int(z))
}

// ParseZeroStyle converts the textual name ("digit" or "pad") into a ZeroStyle
func ParseZeroStyle(s string) (ZeroStyle, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for i, n := range zeroStyleNames {
		if n == s {
			return ZeroStyle(i), nil
		}
	}
	return ZeroDigit, invalidAlphabet("unknown zero style %q, expected one of %v", s, zeroStyleNames)
}

// Alphabet is an ordered, duplicate-free table of digit symbols with an optional pad symbol.
// It is immutable once created and can be shared freely between goroutines.
type Alphabet struct {
	name      string
	symbols   []rune
	index     map[rune]int
	pad       rune
	hasPad    bool
	padInside bool
	zero      ZeroStyle
	width     int
}

// Option configures an Alphabet while it is being created
type Option func(a *Alphabet)

// WithPad sets the pad / sentinel symbol. It may be one of the digit symbols or a separate character.
func WithPad(pad rune) Option {
	return func(a *Alphabet) {
		a.pad = pad
		a.hasPad = true
	}
}

// WithZero sets the zero convention
func WithZero(z ZeroStyle) Option {
	return func(a *Alphabet) {
		a.zero = z
	}
}

// WithName gives the alphabet a user-friendly name
func WithName(name string) Option {
	return func(a *Alphabet) {
		a.name = name
	}
}

// NewAlphabet creates a new alphabet from the given symbols. All configuration problems are
// collected and returned together; every one of them is of KindInvalidAlphabet.
func NewAlphabet(symbols string, opts ...Option) (*Alphabet, error) {
	a := &Alphabet{
		symbols: []rune(symbols),
		index:   make(map[rune]int),
	}
	for _, o := range opts {
		o(a)
	}

	var errs *multierror.Error

	if len(a.symbols) < 2 {
		errs = multierror.Append(errs, invalidAlphabet("need at least 2 symbols, got %d", len(a.symbols)))
	}
	for i, r := range a.symbols {
		if prev, ok := a.index[r]; ok {
			errs = multierror.Append(errs, invalidAlphabet("symbol %q repeated at positions %d and %d", r, prev, i))
			continue
		}
		a.index[r] = i
	}
	a.width = chunkWidth(len(a.symbols))

	if a.hasPad {
		_, a.padInside = a.index[a.pad]
	}

	switch a.zero {
	case ZeroDigit:
	case ZeroPad:
		if !a.hasPad {
			errs = multierror.Append(errs, invalidAlphabet("zero style %v requires a pad symbol", a.zero))
		} else if a.padInside {
			errs = multierror.Append(errs, invalidAlphabet("zero style %v requires the pad %q to be outside the alphabet", a.zero, a.pad))
		}
	default:
		errs = multierror.Append(errs, invalidAlphabet("unknown zero style %v", a.zero))
	}

	// A pad that is also a digit forms a sentinel chunk that reads as a number. That number must not be
	// a valid code unit, otherwise the end of a text stream can not be told apart from real data.
	if a.hasPad && a.padInside && len(a.symbols) >= 2 {
		if v := a.sentinelValue(); v <= maxCodeUnit {
			errs = multierror.Append(errs, invalidAlphabet("pad %q forms sentinel value %d which collides with code units", a.pad, v))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return a, nil
}

// MustNewAlphabet is like NewAlphabet but panics on configuration errors.
func MustNewAlphabet(symbols string, opts ...Option) *Alphabet {
	a, err := NewAlphabet(symbols, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// chunkWidth returns the smallest w such that radix^w covers all 65536 code units
func chunkWidth(radix int) int {
	if radix < 2 {
		return 0
	}
	w, p := 1, uint64(radix)
	for p <= maxCodeUnit {
		p *= uint64(radix)
		w++
	}
	return w
}

func (a *Alphabet) sentinelValue() uint64 {
	d := uint64(a.index[a.pad])
	var v uint64
	for i := 0; i < a.width; i++ {
		v = v*uint64(len(a.symbols)) + d
	}
	return v
}

// Name returns the user-friendly name of this alphabet, if any
func (a *Alphabet) Name() string {
	return a.name
}

// Radix is the number of digit symbols
func (a *Alphabet) Radix() int {
	return len(a.symbols)
}

// Symbols returns the digit symbols in order
func (a *Alphabet) Symbols() string {
	return string(a.symbols)
}

// Pad returns the pad symbol and true, or false if this alphabet has no pad
func (a *Alphabet) Pad() (rune, bool) {
	return a.pad, a.hasPad
}

// Zero returns the zero convention
func (a *Alphabet) Zero() ZeroStyle {
	return a.zero
}

// ChunkWidth is the number of symbols one UTF-16 code unit occupies in a text stream
func (a *Alphabet) ChunkWidth() int {
	return a.width
}

// ValueOf returns the digit value of the symbol
func (a *Alphabet) ValueOf(symbol rune) (int, error) {
	if v, ok := a.index[symbol]; ok {
		return v, nil
	}
	return 0, &Error{Kind: KindInvalidSymbol, Symbol: symbol, Pos: -1}
}

// SymbolOf returns the symbol for the given digit value. The caller guarantees 0 <= index < Radix();
// anything else is a programming error and panics.
func (a *Alphabet) SymbolOf(index int) rune {
	if index < 0 || index >= len(a.symbols) {
		panic(fmt.Sprintf("radix: digit %d out of range [0, %d)", index, len(a.symbols)))
	}
	return a.symbols[index]
}

// zeroString is the spelling of zero under the configured convention
func (a *Alphabet) zeroString() string {
	switch a.zero {
	case ZeroPad:
		return string(a.pad)
	default:
		return string(a.symbols[0])
	}
}

func (a *Alphabet) checkBase(base int) error {
	if base < 2 || base > len(a.symbols) {
		return &Error{Kind: KindInvalidBase, Base: base, Pos: -1, Msg: fmt.Sprintf("expected 2..%d", len(a.symbols))}
	}
	return nil
}

func (a *Alphabet) String() string {
	name := a.name
	if name == "" {
		name = "custom"
	}
	if a.hasPad {
		return fmt.Sprintf("%s(radix=%d, pad=%q, zero=%v)", name, len(a.symbols), a.pad, a.zero)
	}
	return fmt.Sprintf("%s(radix=%d, zero=%v)", name, len(a.symbols), a.zero)
}
