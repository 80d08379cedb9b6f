package base64

import (
	stderrors "errors"
	"github.com/pkg/errors"
)

// The sentinels carry no stack of their own; invalidCharacter and malformedLength record it.
var (
	// ErrInvalidCharacter is returned when the text contains a character which is in neither
	// alphabet, or a padding character at a place where padding is not allowed.
	ErrInvalidCharacter = stderrors.New("invalid base64 character")

	// ErrMalformedLength is returned when the length of the text is not a multiple of four.
	ErrMalformedLength = stderrors.New("malformed base64 length")
)

func invalidCharacter(c byte, offset int) error {
	return errors.Wrapf(ErrInvalidCharacter, "%q at offset %d", c, offset)
}

func malformedLength(n int) error {
	return errors.Wrapf(ErrMalformedLength, "%d is not a multiple of 4", n)
}
