package base64

const (
	stdChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"+/"

	urlChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"-_"

	// StdPadding terminates standard encoded text
	StdPadding = '='

	// URLPadding terminates URL-safe encoded text
	URLPadding = '.'

	// invalid marks bytes which are not part of either alphabet
	invalid = 0xff
)

// alphabet is the table of 64 symbols plus the padding symbol used when encoding
type alphabet struct {
	chars string
	pad   byte
}

var (
	stdAlphabet = alphabet{chars: stdChars, pad: StdPadding}
	urlAlphabet = alphabet{chars: urlChars, pad: URLPadding}
)

// decodeMap maps every possible input byte to its 6-bit value. It is filled from
// both alphabets, so '+' and '-' both decode to 62 and '/' and '_' both decode to 63.
var decodeMap [256]byte

func init() {
	for i := range decodeMap {
		decodeMap[i] = invalid
	}
	for _, a := range []alphabet{stdAlphabet, urlAlphabet} {
		for i := 0; i < len(a.chars); i++ {
			decodeMap[a.chars[i]] = byte(i)
		}
	}
}

func alphabetFor(url bool) *alphabet {
	if url {
		return &urlAlphabet
	}
	return &stdAlphabet
}

func isPadding(c byte) bool {
	return c == StdPadding || c == URLPadding
}
