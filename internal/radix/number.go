package radix

import (
	"github.com/pkg/errors"
	"math/big"
	"strings"
)

// EncodeNumber converts a non-negative integer into a string of symbols, most significant digit
// first. Zero is spelled according to the alphabet's ZeroStyle. v must not be nil or negative.
func (a *Alphabet) EncodeNumber(v *big.Int) string {
	return a.encode(v, len(a.symbols))
}

// EncodeUint64 is a shortcut for EncodeNumber on native integers
func (a *Alphabet) EncodeUint64(v uint64) string {
	return a.encode(new(big.Int).SetUint64(v), len(a.symbols))
}

// DecodeNumber is the reverse of EncodeNumber. Decoding stops at the first character which is not
// part of the alphabet. The empty string decodes to zero.
func (a *Alphabet) DecodeNumber(s string) (*big.Int, error) {
	return a.decode(s, len(a.symbols))
}

// DecodeUint64 is like DecodeNumber, but fails with KindOverflow if the value does not fit into uint64
func (a *Alphabet) DecodeUint64(s string) (uint64, error) {
	v, err := a.decode(s, len(a.symbols))
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, &Error{Kind: KindOverflow, Pos: -1, Msg: "value exceeds 64 bits"}
	}
	return v.Uint64(), nil
}

// EncodeNumberBase encodes v in the given base, using the first base symbols of the alphabet
func (a *Alphabet) EncodeNumberBase(v *big.Int, base int) (string, error) {
	if err := a.checkBase(base); err != nil {
		return "", err
	}
	return a.encode(v, base), nil
}

// DecodeNumberBase decodes s in the given base. Characters outside the alphabet fail with
// KindInvalidSymbol, characters whose digit value is not below base fail with KindDigitOutOfRange.
func (a *Alphabet) DecodeNumberBase(s string, base int) (*big.Int, error) {
	if err := a.checkBase(base); err != nil {
		return nil, err
	}
	return a.decode(s, base)
}

// ParseNumber parses a non-negative decimal integer of any size
func ParseNumber(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("not a decimal integer: %q", s)
	}
	if v.Sign() < 0 {
		return nil, errors.Errorf("negative numbers can not be encoded: %q", s)
	}
	return v, nil
}

func (a *Alphabet) encode(v *big.Int, base int) string {
	if v == nil || v.Sign() < 0 {
		panic("radix: can only encode non-negative integers")
	}
	if v.Sign() == 0 {
		return a.zeroString()
	}

	// Small values don't need to go through big.Int division
	if v.IsUint64() {
		var buf [64]rune
		i := len(buf)
		n, b := v.Uint64(), uint64(base)
		for n > 0 {
			i--
			buf[i] = a.symbols[n%b]
			n /= b
		}
		return string(buf[i:])
	}

	digits := make([]rune, 0, v.BitLen()/2+1)
	n := new(big.Int).Set(v)
	b := big.NewInt(int64(base))
	rem := new(big.Int)
	for n.Sign() > 0 {
		n.QuoRem(n, b, rem)
		digits = append(digits, a.symbols[rem.Int64()])
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

func (a *Alphabet) decode(s string, base int) (*big.Int, error) {
	res := new(big.Int)
	if a.zero == ZeroPad && s == string(a.pad) {
		return res, nil
	}

	b := big.NewInt(int64(base))
	d := new(big.Int)
	pos := 0
	for _, r := range s {
		v, ok := a.index[r]
		if !ok {
			return nil, &Error{Kind: KindInvalidSymbol, Symbol: r, Pos: pos}
		}
		if v >= base {
			return nil, &Error{Kind: KindDigitOutOfRange, Symbol: r, Pos: pos, Base: base}
		}
		res.Mul(res, b)
		res.Add(res, d.SetInt64(int64(v)))
		pos++
	}
	return res, nil
}

// appendFixed appends exactly width symbols representing v, left padded with the zero digit
func (a *Alphabet) appendFixed(dst []rune, v uint64, width int) []rune {
	start := len(dst)
	for i := 0; i < width; i++ {
		dst = append(dst, a.symbols[0])
	}
	r := uint64(len(a.symbols))
	for i := start + width - 1; i >= start && v > 0; i-- {
		dst[i] = a.symbols[v%r]
		v /= r
	}
	return dst
}
