package addr

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_ParseAddress(t *testing.T) {
	tests := []struct {
		Input    string
		Expected ProtoAddress
		Secure   bool
	}{
		{Input: "http://127.0.0.1:8080", Expected: ProtoAddress{Scheme: "http", Host: "127.0.0.1:8080"}},
		{Input: " HTTPS://:8443 ", Expected: ProtoAddress{Scheme: "https", Host: ":8443"}, Secure: true},
		{Input: "localhost:80", Expected: ProtoAddress{Scheme: "http", Host: "localhost:80"}},
	}

	for _, test := range tests {
		p, err := ParseAddress(test.Input)
		require.NoError(t, err)
		require.Equal(t, test.Expected, p)
		require.Equal(t, test.Secure, p.Secure())
	}
}

func Test_ParseAddress_Invalid(t *testing.T) {
	for _, a := range []string{"", "tcp://127.0.0.1:22", "http://"} {
		_, err := ParseAddress(a)
		require.Errorf(t, err, "Expected error for %q", a)
	}

	require.Panics(t, func() {
		MustParseAddress("ws://:80")
	})
}

func Test_ResolveHostAddress(t *testing.T) {
	a, err := ResolveHostAddress("127.0.0.1:8080")
	require.NoError(t, err)
	require.Equal(t, 8080, a.Port)

	_, err = ResolveHostAddress("127.0.0.1:notaport")
	require.Error(t, err)
}
