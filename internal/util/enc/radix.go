package enc

import (
	"fmt"
	"github.com/bokysan/radixace/internal/radix"
	"github.com/pkg/errors"
	"math"
	"math/big"
	"strings"
)

// RadixEncoder treats the payload as one big-endian number and writes it with a radix alphabet.
// Every leading zero byte is written as one zero digit, so the length of the payload survives.
type RadixEncoder struct {
	alphabet *radix.Alphabet
}

// NewRadixEncoder creates an encoder for the given alphabet, or the default alphabet if nil
func NewRadixEncoder(a *radix.Alphabet) (*RadixEncoder, error) {
	if a == nil {
		a = radix.Default()
	}
	return &RadixEncoder{
		alphabet: a,
	}, nil
}

// MustNewRadixEncoder is like NewRadixEncoder but panics on errors
func MustNewRadixEncoder(a *radix.Alphabet) *RadixEncoder {
	e, err := NewRadixEncoder(a)
	if err != nil {
		panic(err)
	}
	return e
}

func (b *RadixEncoder) Name() string {
	return "Radix"
}

func (b *RadixEncoder) String() string {
	return fmt.Sprintf("%v(%v)[%v]", b.Name(), string(b.Code()), b.alphabet)
}

func (b *RadixEncoder) Code() byte {
	return 'N'
}

func (b *RadixEncoder) Encode(data []byte) string {
	zero := b.alphabet.SymbolOf(0)
	zeroes := 0
	for zeroes < len(data) && data[zeroes] == 0 {
		zeroes++
	}

	var sb strings.Builder
	for i := 0; i < zeroes; i++ {
		sb.WriteRune(zero)
	}
	if rest := data[zeroes:]; len(rest) > 0 {
		sb.WriteString(b.alphabet.EncodeNumber(new(big.Int).SetBytes(rest)))
	}
	return sb.String()
}

func (b *RadixEncoder) Decode(data string) ([]byte, error) {
	zero := b.alphabet.SymbolOf(0)
	trimmed := strings.TrimLeftFunc(data, func(r rune) bool {
		return r == zero
	})
	zeroes := len([]rune(data)) - len([]rune(trimmed))

	v, err := b.alphabet.DecodeNumber(trimmed)
	if err != nil {
		// positions are relative to the trimmed string
		var e *radix.Error
		if errors.As(err, &e) && e.Pos >= 0 {
			shifted := *e
			shifted.Pos += zeroes
			err = &shifted
		}
		return nil, errors.WithStack(err)
	}
	if trimmed != "" && v.Sign() == 0 {
		return nil, errors.Errorf("Unexpected zero value %q after leading zero digits", trimmed)
	}

	res := make([]byte, zeroes, zeroes+len(v.Bytes()))
	return append(res, v.Bytes()...), nil
}

func (b *RadixEncoder) Ratio() float64 {
	return 8 / math.Log2(float64(b.alphabet.Radix()))
}
