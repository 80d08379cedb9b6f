package base64

// EncodedLen returns the length of the padded text produced by encoding n bytes.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// Encode returns the padded base64 text of data. The URL-safe alphabet is used
// when url is set. Encode never fails; an empty input yields an empty string.
func Encode(data []byte, url bool) string {
	if len(data) == 0 {
		return ""
	}

	a := alphabetFor(url)
	dst := make([]byte, EncodedLen(len(data)))

	rem := len(data) % 3
	n := len(data) - rem
	di := 0

	for si := 0; si < n; si += 3 {
		chunk := uint(data[si])<<16 | uint(data[si+1])<<8 | uint(data[si+2])

		dst[di+0] = a.chars[chunk>>18&0x3f]
		dst[di+1] = a.chars[chunk>>12&0x3f]
		dst[di+2] = a.chars[chunk>>6&0x3f]
		dst[di+3] = a.chars[chunk&0x3f]
		di += 4
	}

	switch rem {
	case 2:
		chunk := uint(data[n])<<8 | uint(data[n+1])
		dst[di+0] = a.chars[chunk>>10&0x3f]
		dst[di+1] = a.chars[chunk>>4&0x3f]
		dst[di+2] = a.chars[chunk<<2&0x3f]
		dst[di+3] = a.pad
	case 1:
		chunk := uint(data[n])
		dst[di+0] = a.chars[chunk>>2&0x3f]
		dst[di+1] = a.chars[chunk<<4&0x3f]
		dst[di+2] = a.pad
		dst[di+3] = a.pad
	}

	return string(dst)
}

// EncodePem encodes data with the standard alphabet and breaks the text into
// lines of PemLineLength characters.
func EncodePem(data []byte) string {
	return Wrap(Encode(data, false), PemLineLength)
}

// EncodeMime encodes data with the standard alphabet and breaks the text into
// lines of MimeLineLength characters.
func EncodeMime(data []byte) string {
	return Wrap(Encode(data, false), MimeLineLength)
}
