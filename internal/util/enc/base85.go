package enc

import (
	"encoding/ascii85"
	"fmt"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base85Encoder encodes 4 bytes to 5 characters. Characters which are awkward in URLs and
// domain names ('.', '\\' and '`') are swapped for letters which ascii85 never produces.
type Base85Encoder struct {
}

func (b *Base85Encoder) Name() string {
	return "Base85"
}

func (b *Base85Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base85Encoder) Code() byte {
	return 'W'
}

func (b *Base85Encoder) Encode(data []byte) string {
	dst := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n := ascii85.Encode(dst, data)
	dst = dst[:n]
	for k, c := range dst {
		switch c {
		case '.':
			dst[k] = 'v'
		case '\\':
			dst[k] = 'w'
		case '`':
			dst[k] = 'x'
		}
	}
	return string(dst)
}

func (b *Base85Encoder) Decode(data string) ([]byte, error) {
	source := []byte(data)
	for k, c := range source {
		switch c {
		case 'v':
			source[k] = '.'
		case 'w':
			source[k] = '\\'
		case 'x':
			source[k] = '`'
		}
	}

	// 'z' expands 1 character into 4 bytes
	dst := make([]byte, 4*len(source))
	ndst, _, err := ascii85.Decode(dst, source, true)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return dst[:ndst], nil
}

func (b *Base85Encoder) Ratio() float64 {
	return 1.25
}
