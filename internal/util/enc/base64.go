package enc

import (
	"fmt"
	"github.com/bokysan/b64ace/pkg/base64"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters using the standard alphabet
type Base64Encoder struct {
}

func (b *Base64Encoder) Name() string {
	return "std"
}

func (b *Base64Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) string {
	return base64.Encode(data, false)
}

func (b *Base64Encoder) Decode(data string) ([]byte, error) {
	return decode(data, false)
}

func (b *Base64Encoder) Wrapped() bool {
	return false
}

func (b *Base64Encoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte("\xfb\xff\xbf"),
		[]byte("aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ+0129-"),
	}
}

// decode wraps the codec errors so that the caller gets a stack trace
func decode(data string, stripLineBreaks bool) ([]byte, error) {
	res, err := base64.Decode(data, stripLineBreaks)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}
