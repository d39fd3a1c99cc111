package radix

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// TextCodec turns text into a self-delimiting stream of symbols. Every UTF-16 code unit is written
// as a chunk of exactly ChunkWidth() digits (left padded with the zero digit) and the stream is
// terminated by a sentinel chunk made of ChunkWidth() pad symbols.
type TextCodec struct {
	alphabet *Alphabet
	width    int
	sentinel string
}

// NewTextCodec creates a text codec on top of the given alphabet. The alphabet must have a pad symbol.
func NewTextCodec(a *Alphabet) (*TextCodec, error) {
	if a == nil {
		return nil, invalidAlphabet("no alphabet given")
	}
	if !a.hasPad {
		return nil, invalidAlphabet("text encoding with %v requires a pad symbol", a)
	}
	return &TextCodec{
		alphabet: a,
		width:    a.width,
		sentinel: strings.Repeat(string(a.pad), a.width),
	}, nil
}

// Alphabet returns the underlying alphabet
func (c *TextCodec) Alphabet() *Alphabet {
	return c.alphabet
}

// Sentinel returns the chunk which marks the end of a stream
func (c *TextCodec) Sentinel() string {
	return c.sentinel
}

// EncodeUnits encodes a sequence of UTF-16 code units
func (c *TextCodec) EncodeUnits(units []uint16) string {
	buf := make([]rune, 0, (len(units)+1)*c.width)
	for _, u := range units {
		buf = c.alphabet.appendFixed(buf, uint64(u), c.width)
	}
	for i := 0; i < c.width; i++ {
		buf = append(buf, c.alphabet.pad)
	}
	return string(buf)
}

// EncodeString encodes a Go string. Characters outside the Basic Multilingual Plane are written as
// two code units (a surrogate pair).
func (c *TextCodec) EncodeString(text string) string {
	return c.EncodeUnits(utf16.Encode([]rune(text)))
}

// DecodeUnits decodes the first stream found in s. It returns the code units and the number of bytes
// of s consumed, sentinel included. Whatever follows the sentinel is left alone.
func (c *TextCodec) DecodeUnits(s string) ([]uint16, int, error) {
	units := make([]uint16, 0, len(s)/c.width)
	off, pos := 0, 0
	for {
		if off == len(s) {
			return nil, off, &Error{Kind: KindTruncatedInput, Pos: pos, Msg: "missing end-of-text sentinel"}
		}

		// Take the next chunk of c.width runes
		end, count := off, 0
		for count < c.width && end < len(s) {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
			count++
		}
		if count < c.width {
			return nil, end, &Error{
				Kind: KindTruncatedInput,
				Pos:  pos,
				Msg:  fmt.Sprintf("incomplete chunk of %d out of %d symbols", count, c.width),
			}
		}

		chunk := s[off:end]
		if chunk == c.sentinel {
			return units, end, nil
		}
		u, err := c.decodeChunk(chunk, pos)
		if err != nil {
			return nil, off, err
		}
		units = append(units, u)

		off = end
		pos += c.width
	}
}

// DecodeString decodes the first stream found in s back into a Go string
func (c *TextCodec) DecodeString(s string) (string, error) {
	units, _, err := c.DecodeUnits(s)
	if err != nil {
		return "", err
	}
	return string(utf16.Decode(units)), nil
}

// DecodeAll decodes a concatenation of streams, e.g. EncodeString("a") + EncodeString("b")
func (c *TextCodec) DecodeAll(s string) ([]string, error) {
	res := make([]string, 0)
	for len(s) > 0 {
		units, n, err := c.DecodeUnits(s)
		if err != nil {
			return nil, err
		}
		res = append(res, string(utf16.Decode(units)))
		s = s[n:]
	}
	return res, nil
}

// decodeChunk converts one fixed-width chunk into a code unit. pos is the rune position of the chunk
// within the whole stream and is used for error reporting.
func (c *TextCodec) decodeChunk(chunk string, pos int) (uint16, error) {
	var v uint64
	r := uint64(len(c.alphabet.symbols))
	i := 0
	for _, ch := range chunk {
		d, ok := c.alphabet.index[ch]
		if !ok {
			return 0, &Error{Kind: KindInvalidSymbol, Symbol: ch, Pos: pos + i}
		}
		v = v*r + uint64(d)
		i++
	}
	if v > maxCodeUnit {
		return 0, &Error{
			Kind: KindCodeUnitOverflow,
			Pos:  pos,
			Msg:  fmt.Sprintf("chunk %q decodes to %d", chunk, v),
		}
	}
	return uint16(v), nil
}
