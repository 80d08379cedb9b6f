package base64

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

var encoderTest = []byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
	"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
	"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277")

func randomBytes(t *testing.T, n int) []byte {
	buf := make([]byte, n)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	return buf
}

func Test_Vectors(t *testing.T) {
	tests := []struct {
		Name    string
		Input   string
		Std     string
		URLSafe string
	}{
		{Name: "empty", Input: "", Std: "", URLSafe: ""},
		{Name: "one byte", Input: "f", Std: "Zg==", URLSafe: "Zg.."},
		{Name: "two bytes", Input: "fo", Std: "Zm8=", URLSafe: "Zm8."},
		{Name: "three bytes", Input: "foo", Std: "Zm9v", URLSafe: "Zm9v"},
		{Name: "four bytes", Input: "foob", Std: "Zm9vYg==", URLSafe: "Zm9vYg.."},
		{Name: "five bytes", Input: "fooba", Std: "Zm9vYmE=", URLSafe: "Zm9vYmE."},
		{Name: "six bytes", Input: "foobar", Std: "Zm9vYmFy", URLSafe: "Zm9vYmFy"},
		{Name: "special characters", Input: "\xfb\xff\xbf", Std: "+/+/", URLSafe: "-_-_"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			require.Equal(t, test.Std, Encode([]byte(test.Input), false))
			require.Equal(t, test.URLSafe, Encode([]byte(test.Input), true))

			decoded, err := Decode(test.Std, false)
			require.NoError(t, err)
			require.Equal(t, test.Input, string(decoded))

			decoded, err = Decode(test.URLSafe, false)
			require.NoError(t, err)
			require.Equal(t, test.Input, string(decoded))
		})
	}
}

func Test_URLPadding(t *testing.T) {
	encoded := Encode([]byte{0xff, 0xfe}, true)
	require.Equal(t, "__4.", encoded)
	require.True(t, strings.HasSuffix(encoded, string(URLPadding)))
	require.Equal(t, "//4=", Encode([]byte{0xff, 0xfe}, false))
}

func Test_RoundTrip(t *testing.T) {
	for _, url := range []bool{false, true} {
		for n := 0; n < 130; n++ {
			data := randomBytes(t, n)
			encoded := Encode(data, url)
			require.Len(t, encoded, EncodedLen(n))
			require.Equal(t, (n+2)/3*4, len(encoded))

			decoded, err := Decode(encoded, false)
			require.NoError(t, err)
			require.True(t, bytes.Equal(data, decoded), "round trip failed for %x (url=%v)", data, url)

			stripped, err := Decode(encoded, true)
			require.NoError(t, err)
			require.Equal(t, decoded, stripped)
		}
	}

	decoded, err := Decode(Encode(encoderTest, true), false)
	require.NoError(t, err)
	require.Equal(t, encoderTest, decoded)
}

func Test_DecodeMixedAlphabets(t *testing.T) {
	std := Encode(encoderTest, false)
	url := Encode(encoderTest, true)

	// take every other group from the other variant
	var mixed strings.Builder
	for i := 0; i < len(std); i += 4 {
		if (i/4)%2 == 0 {
			mixed.WriteString(std[i : i+4])
		} else {
			mixed.WriteString(url[i : i+4])
		}
	}

	decoded, err := Decode(mixed.String(), false)
	require.NoError(t, err)
	require.Equal(t, encoderTest, decoded)

	decoded, err = Decode("-/+_", false)
	require.NoError(t, err)
	require.Equal(t, []byte{0xfb, 0xff, 0xbf}, decoded)

	decoded, err = Decode("Zg=.", false)
	require.NoError(t, err)
	require.Equal(t, "f", string(decoded))
}

func Test_DecodeStripLineBreaks(t *testing.T) {
	decoded, err := Decode("Zm9v\nYmFy", true)
	require.NoError(t, err)
	require.Equal(t, "foobar", string(decoded))

	decoded, err = Decode("\n\n", true)
	require.NoError(t, err)
	require.Empty(t, decoded)

	_, err = Decode("Zm9v\nYmFy", false)
	require.Error(t, err)
}

func Test_DecodeEmpty(t *testing.T) {
	decoded, err := Decode("", false)
	require.NoError(t, err)
	require.NotNil(t, decoded)
	require.Empty(t, decoded)
}

func Test_DecodeErrors(t *testing.T) {
	tests := []struct {
		Name  string
		Input string
		Err   error
	}{
		{Name: "length 1", Input: "Z", Err: ErrMalformedLength},
		{Name: "length 5", Input: "Zm9vY", Err: ErrMalformedLength},
		{Name: "line break without stripping", Input: "Zm9v\nYmFy", Err: ErrMalformedLength},
		{Name: "exclamation mark", Input: "Zm9!", Err: ErrInvalidCharacter},
		{Name: "exclamation mark in first group", Input: "!m9vYmFy", Err: ErrInvalidCharacter},
		{Name: "space", Input: "Zm9 YmFy", Err: ErrInvalidCharacter},
		{Name: "high byte", Input: "Zm9\xffYmFy", Err: ErrInvalidCharacter},
		{Name: "padding in first group", Input: "Zg==Zm8=", Err: ErrInvalidCharacter},
		{Name: "padding only", Input: "====", Err: ErrInvalidCharacter},
		{Name: "padding in second position", Input: "Z===", Err: ErrInvalidCharacter},
		{Name: "invalid character after padding", Input: "Zg=!", Err: ErrInvalidCharacter},
		{Name: "invalid character after padding in first group", Input: "Zg=AZm8=", Err: ErrInvalidCharacter},
		{Name: "comma", Input: "Zm,=", Err: ErrInvalidCharacter},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			decoded, err := Decode(test.Input, false)
			require.Error(t, err)
			require.True(t, errors.Is(err, test.Err), "expected %v, got %v", test.Err, err)
			require.Nil(t, decoded)
		})
	}
}

func Test_DecodeIgnoresCharacterAfterPadding(t *testing.T) {
	for _, input := range []string{"Zg=A", "Zg=_", "Zg=+", "Zg=.", "Zg=="} {
		decoded, err := Decode(input, false)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, []byte("f"), decoded, "input %q", input)
	}

	_, err := Decode("Zm9vZg=!", false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "offset 7")
}

func Test_DecodeErrorStack(t *testing.T) {
	_, err := Decode("Zm9!", false)
	require.Error(t, err)

	trace := fmt.Sprintf("%+v", err)
	require.Contains(t, trace, "base64.invalidCharacter")
	require.NotContains(t, trace, "base64.init")
	require.Equal(t, "invalid base64 character", fmt.Sprintf("%+v", ErrInvalidCharacter))
}

func Test_DecodeErrorOffset(t *testing.T) {
	_, err := Decode("Zm9vYm!y", false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "offset 6")
	require.Contains(t, err.Error(), "'!'")
}

func Test_DecodedLen(t *testing.T) {
	require.Equal(t, 0, DecodedLen(0))
	require.Equal(t, 3, DecodedLen(4))
	require.Equal(t, 6, DecodedLen(8))
}

func Test_Wrap(t *testing.T) {
	tests := []struct {
		Name     string
		Input    string
		Width    int
		Expected string
	}{
		{Name: "empty", Input: "", Width: 4, Expected: ""},
		{Name: "shorter than width", Input: "abc", Width: 4, Expected: "abc"},
		{Name: "exact width", Input: "abcd", Width: 4, Expected: "abcd"},
		{Name: "one over", Input: "abcde", Width: 4, Expected: "abcd\ne"},
		{Name: "exact multiple", Input: "abcdefgh", Width: 4, Expected: "abcd\nefgh"},
		{Name: "three lines", Input: "abcdefghij", Width: 4, Expected: "abcd\nefgh\nij"},
		{Name: "width one", Input: "abc", Width: 1, Expected: "a\nb\nc"},
		{Name: "zero width", Input: "abc", Width: 0, Expected: "abc"},
		{Name: "negative width", Input: "abc", Width: -1, Expected: "abc"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			require.Equal(t, test.Expected, Wrap(test.Input, test.Width))
		})
	}
}

func Test_EncodePemAndMime(t *testing.T) {
	tests := []struct {
		Name   string
		Encode func([]byte) string
		Width  int
	}{
		{Name: "pem", Encode: EncodePem, Width: PemLineLength},
		{Name: "mime", Encode: EncodeMime, Width: MimeLineLength},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			for _, n := range []int{0, 1, 47, 48, 49, 57, 58, 96, 114, 1000} {
				data := randomBytes(t, n)
				wrapped := test.Encode(data)
				plain := Encode(data, false)

				require.Equal(t, plain, strings.ReplaceAll(wrapped, "\n", ""))
				require.False(t, strings.HasSuffix(wrapped, "\n"))

				lines := strings.Split(wrapped, "\n")
				for i, line := range lines {
					if i < len(lines)-1 {
						require.Len(t, line, test.Width)
					} else {
						require.LessOrEqual(t, len(line), test.Width)
					}
				}

				decoded, err := Decode(wrapped, true)
				require.NoError(t, err)
				require.True(t, bytes.Equal(data, decoded))
			}
		})
	}
}

func Test_EncodePemLineCount(t *testing.T) {
	// 96 bytes encode to 128 characters: exactly two full lines and no trailing break
	wrapped := EncodePem(make([]byte, 96))
	require.Equal(t, 1, strings.Count(wrapped, "\n"))
	require.Equal(t, 64, strings.Index(wrapped, "\n"))

	// 57 bytes encode to exactly one MIME line
	require.NotContains(t, EncodeMime(make([]byte, 57)), "\n")
	require.Equal(t, 1, strings.Count(EncodeMime(make([]byte, 58)), "\n"))
}

func Benchmark_Encode(b *testing.B) {
	data := make([]byte, 8192)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		Encode(data, false)
	}
}

func Benchmark_Decode(b *testing.B) {
	text := Encode(make([]byte, 8192), false)
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		_, _ = Decode(text, false)
	}
}
