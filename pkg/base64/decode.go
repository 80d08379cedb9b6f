package base64

import "strings"

// DecodedLen returns the maximum number of bytes encoded in n characters of text.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// Decode returns the bytes represented by the base64 text. Characters of the standard
// and the URL-safe alphabet are both accepted, even when mixed within the same text.
//
// If stripLineBreaks is set, all line feeds are removed before decoding, which allows
// decoding the output of EncodePem and EncodeMime.
//
// The returned error wraps ErrMalformedLength or ErrInvalidCharacter; no data is
// returned together with an error.
func Decode(text string, stripLineBreaks bool) ([]byte, error) {
	if len(text) == 0 {
		return []byte{}, nil
	}

	if stripLineBreaks {
		return Decode(strings.ReplaceAll(text, lineBreak, ""), false)
	}

	if len(text)%4 != 0 {
		return nil, malformedLength(len(text))
	}

	dst := make([]byte, 0, DecodedLen(len(text)))
	last := len(text) - 4

	for pos := 0; pos < last; pos += 4 {
		chunk, err := decodeQuantum(text, pos, 4)
		if err != nil {
			return nil, err
		}
		dst = append(dst, byte(chunk>>16), byte(chunk>>8), byte(chunk))
	}

	// Number of data characters in the final group is decided by where the padding starts
	switch {
	case isPadding(text[last+2]):
		// The fourth character carries no data here, so only its membership is checked
		if c := text[last+3]; decodeMap[c] == invalid && !isPadding(c) {
			return nil, invalidCharacter(c, last+3)
		}
		chunk, err := decodeQuantum(text, last, 2)
		if err != nil {
			return nil, err
		}
		dst = append(dst, byte(chunk>>4))
	case isPadding(text[last+3]):
		chunk, err := decodeQuantum(text, last, 3)
		if err != nil {
			return nil, err
		}
		dst = append(dst, byte(chunk>>10), byte(chunk>>2))
	default:
		chunk, err := decodeQuantum(text, last, 4)
		if err != nil {
			return nil, err
		}
		dst = append(dst, byte(chunk>>16), byte(chunk>>8), byte(chunk))
	}

	return dst, nil
}

// decodeQuantum concatenates the 6-bit values of n characters starting at pos,
// first character in the most significant position.
func decodeQuantum(text string, pos, n int) (uint, error) {
	var chunk uint
	for i := pos; i < pos+n; i++ {
		v := decodeMap[text[i]]
		if v == invalid {
			return 0, invalidCharacter(text[i], i)
		}
		chunk = chunk<<6 | uint(v)
	}
	return chunk, nil
}
