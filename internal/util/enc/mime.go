package enc

import (
	"fmt"
	"github.com/bokysan/b64ace/pkg/base64"
)

// -------------------------------------------------------

// MimeEncoder encodes with the standard alphabet and breaks lines every 76 characters
type MimeEncoder struct {
}

func (b *MimeEncoder) Name() string {
	return "mime"
}

func (b *MimeEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *MimeEncoder) Code() byte {
	return 'M'
}

func (b *MimeEncoder) Encode(data []byte) string {
	return base64.EncodeMime(data)
}

func (b *MimeEncoder) Decode(data string) ([]byte, error) {
	return decode(data, true)
}

func (b *MimeEncoder) Wrapped() bool {
	return true
}

func (b *MimeEncoder) TestPatterns() [][]byte {
	return [][]byte{
		make([]byte, 57),
		make([]byte, 114),
		make([]byte, 200),
	}
}
