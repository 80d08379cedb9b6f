package base64

import (
	"github.com/emersion/go-textwrapper"
	"strings"
)

const (
	// PemLineLength is the line width of PEM armored blocks (RFC 7468)
	PemLineLength = 64

	// MimeLineLength is the maximum line width of MIME bodies (RFC 2045)
	MimeLineLength = 76

	lineBreak = "\n"
)

// Wrap inserts a line feed after every width characters of text. A break is only
// placed between two characters, so the result never ends with a line feed, not
// even when the length of text is an exact multiple of width. Text is returned
// unchanged when width is not positive.
func Wrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + (len(text)-1)/width)

	// strings.Builder never fails to write
	_, _ = textwrapper.New(&b, lineBreak, width).Write([]byte(text))
	return b.String()
}
