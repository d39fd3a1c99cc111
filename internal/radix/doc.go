// Package radix implements arbitrary-precision radix codecs over a configurable symbol alphabet.
//
// An Alphabet maps digit values to symbols. On top of it there are three codecs:
//
//   - the integer codec (EncodeNumber / DecodeNumber) writes a *big.Int in base Radix(),
//     most significant digit first;
//   - the generic-base codec (EncodeNumberBase / DecodeNumberBase) does the same for any base
//     between 2 and Radix(), using only the first base symbols;
//   - the text codec (TextCodec) writes every UTF-16 code unit as a fixed-width chunk and closes the
//     stream with a sentinel chunk made of pad symbols, so streams can be concatenated and split
//     again without a length prefix.
//
// The spelling of zero is a configuration choice (see ZeroStyle). Whatever the choice, decoding
// the spelling of zero yields zero, and decoding the empty string yields zero as well.
package radix
