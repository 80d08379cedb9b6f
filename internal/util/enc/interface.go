package enc

type Encoder interface {
	// Name is the user-friendly name of this encoder, as used on the command line and in URLs
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// Wrapped returns true if the encoded output is broken into lines
	Wrapped() bool

	// Return a list of test patterns for the specified encoding
	TestPatterns() [][]byte
}
