package enc

import (
	"github.com/pkg/errors"
	"strings"
)

// Encoder armors binary data into printable text and back
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// Ratio is the (approximate) number of output characters per input byte
	Ratio() float64
}

// Encoders lists all the built-in encoders, from the most compact to the least compact one
var Encoders = []Encoder{
	&RawEncoder{},
	&Base128Encoder{},
	&Base91Encoder{},
	&Base85Encoder{},
	MustNewRadixEncoder(nil),
	&Base64Encoder{},
	&Base64uEncoder{},
	&Base32Encoder{},
}

// Find returns the encoder with the given name (case-insensitive) or one-letter code
func Find(name string) (Encoder, error) {
	var available []string
	for _, e := range Encoders {
		if strings.EqualFold(e.Name(), name) || (len(name) == 1 && name[0] == e.Code()) {
			return e, nil
		}
		available = append(available, e.Name())
	}
	return nil, errors.Errorf("Could not find encoder with name: '%s' among: %v", name, available)
}

// Names returns the names of all the built-in encoders
func Names() []string {
	res := make([]string, 0, len(Encoders))
	for _, e := range Encoders {
		res = append(res, e.Name())
	}
	return res
}
