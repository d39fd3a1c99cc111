package radix

import (
	"fmt"
	"github.com/pkg/errors"
)

// Kind classifies codec failures
type Kind int

const (
	KindUnknown Kind = iota
	// KindInvalidSymbol: character is not part of the alphabet
	KindInvalidSymbol
	// KindDigitOutOfRange: character is in the alphabet but not a legal digit for the requested base
	KindDigitOutOfRange
	// KindInvalidBase: requested base is outside [2, radix]
	KindInvalidBase
	// KindTruncatedInput: a text stream ends mid-chunk or before its sentinel
	KindTruncatedInput
	// KindCodeUnitOverflow: a text chunk decodes to a value above 0xFFFF
	KindCodeUnitOverflow
	// KindOverflow: a decoded number does not fit the requested native type
	KindOverflow
	// KindInvalidAlphabet: the alphabet configuration is not usable
	KindInvalidAlphabet
)

var kindNames = map[Kind]string{
	KindUnknown:          "Unknown",
	KindInvalidSymbol:    "InvalidSymbol",
	KindDigitOutOfRange:  "DigitOutOfRange",
	KindInvalidBase:      "InvalidBase",
	KindTruncatedInput:   "TruncatedInput",
	KindCodeUnitOverflow: "CodeUnitOverflow",
	KindOverflow:         "Overflow",
	KindInvalidAlphabet:  "InvalidAlphabet",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by every failing codec operation. Pos is the zero-based character (rune)
// position in the input, or -1 if the failure is not tied to a position.
type Error struct {
	Kind   Kind
	Symbol rune
	Pos    int
	Base   int
	Msg    string
}

// Declare the sentinels, usable with errors.Is. Matching is done on Kind only.
var (
	ErrInvalidSymbol    = &Error{Kind: KindInvalidSymbol, Pos: -1}
	ErrDigitOutOfRange  = &Error{Kind: KindDigitOutOfRange, Pos: -1}
	ErrInvalidBase      = &Error{Kind: KindInvalidBase, Pos: -1}
	ErrTruncatedInput   = &Error{Kind: KindTruncatedInput, Pos: -1}
	ErrCodeUnitOverflow = &Error{Kind: KindCodeUnitOverflow, Pos: -1}
	ErrOverflow         = &Error{Kind: KindOverflow, Pos: -1}
	ErrInvalidAlphabet  = &Error{Kind: KindInvalidAlphabet, Pos: -1}
)

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindInvalidSymbol:
		msg = fmt.Sprintf("invalid symbol %q", e.Symbol)
	case KindDigitOutOfRange:
		msg = fmt.Sprintf("symbol %q is not a digit in base %d", e.Symbol, e.Base)
	case KindInvalidBase:
		msg = fmt.Sprintf("invalid base %d", e.Base)
	default:
		msg = e.Kind.String()
	}
	if e.Msg != "" {
		msg = msg + ": " + e.Msg
	}
	if e.Pos >= 0 {
		msg = fmt.Sprintf("%s at position %d", msg, e.Pos)
	}
	return "radix: " + msg
}

// Is makes errors.Is(err, ErrInvalidSymbol) and friends work
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf digs through wrapped errors and returns the Kind of the first *Error found,
// or KindUnknown if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func invalidAlphabet(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidAlphabet, Pos: -1, Msg: fmt.Sprintf(format, args...)}
}
