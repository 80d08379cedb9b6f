package encode

import (
	"bytes"
	"github.com/bokysan/b64ace/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	file := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(file, data, 0600))
	return file
}

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "b64ace-encode")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return dir
}

func Test_EncodeFiles(t *testing.T) {
	dir := tempDir(t)
	a := writeFile(t, dir, "a.bin", []byte("foo"))
	b := writeFile(t, dir, "b.bin", []byte{0xff, 0xff, 0xfe, 'f'})

	out := &bytes.Buffer{}
	c := NewCommand()
	require.NoError(t, c.Run([]string{a, b}, out))
	require.Equal(t, "Zm9v\n///+Zg==\n", out.String())
}

func Test_EncodeUrl(t *testing.T) {
	dir := tempDir(t)
	b := writeFile(t, dir, "b.bin", []byte{0xff, 0xff, 0xfe, 'f'})

	out := &bytes.Buffer{}
	c := NewCommand()
	c.Url = true
	c.NoNewline = true
	require.NoError(t, c.Run([]string{b}, out))
	require.Equal(t, "___-Zg..", out.String())
}

func Test_EncodePem(t *testing.T) {
	dir := tempDir(t)
	a := writeFile(t, dir, "a.bin", bytes.Repeat([]byte{0}, 100))

	out := &bytes.Buffer{}
	c := NewCommand()
	c.Encoder = "pem"
	require.NoError(t, c.Run([]string{a}, out))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Len(t, lines[0], 64)
	require.Len(t, lines[1], 64)
}

func Test_EncodeMissingFiles(t *testing.T) {
	dir := tempDir(t)
	a := writeFile(t, dir, "a.bin", []byte("foo"))

	out := &bytes.Buffer{}
	c := NewCommand()
	err := c.Run([]string{filepath.Join(dir, "missing1"), a, filepath.Join(dir, "missing2")}, out)
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "Expected a multierror, got %T", err)
	require.Len(t, merr.Errors, 2)
	require.Equal(t, "Zm9v\n", out.String())
}

func Test_EncodeUnknownEncoder(t *testing.T) {
	c := NewCommand()
	c.Encoder = "base91"
	err := c.Run(nil, &bytes.Buffer{})
	require.Error(t, err)
	require.True(t, errors.Is(err, enc.ErrUnknownEncoder))
}
