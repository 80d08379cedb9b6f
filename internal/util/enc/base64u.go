package enc

import (
	"fmt"
	"github.com/bokysan/b64ace/pkg/base64"
)

// -------------------------------------------------------

// Base64uEncoder encodes 3 bytes to 4 characters and uses the URL-safe character map.
type Base64uEncoder struct {
}

func (b *Base64uEncoder) Name() string {
	return "url"
}

func (b *Base64uEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64uEncoder) Code() byte {
	return 'U'
}

func (b *Base64uEncoder) Encode(data []byte) string {
	return base64.Encode(data, true)
}

func (b *Base64uEncoder) Decode(data string) ([]byte, error) {
	return decode(data, false)
}

func (b *Base64uEncoder) Wrapped() bool {
	return false
}

func (b *Base64uEncoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte("\xfb\xff\xbf"),
		[]byte("\xff\xfe"),
	}
}
