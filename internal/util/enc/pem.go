package enc

import (
	"fmt"
	"github.com/bokysan/b64ace/pkg/base64"
)

// -------------------------------------------------------

// PemEncoder encodes with the standard alphabet and breaks lines every 64 characters
type PemEncoder struct {
}

func (b *PemEncoder) Name() string {
	return "pem"
}

func (b *PemEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *PemEncoder) Code() byte {
	return 'P'
}

func (b *PemEncoder) Encode(data []byte) string {
	return base64.EncodePem(data)
}

func (b *PemEncoder) Decode(data string) ([]byte, error) {
	return decode(data, true)
}

func (b *PemEncoder) Wrapped() bool {
	return true
}

func (b *PemEncoder) TestPatterns() [][]byte {
	return [][]byte{
		make([]byte, 48),
		make([]byte, 96),
		make([]byte, 100),
	}
}
