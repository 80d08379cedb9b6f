package addr

import (
	"github.com/pkg/errors"
	"strings"
)

// ProtoAddress is a combination of the URL scheme and the listen address
type ProtoAddress struct {
	Scheme string `json:"scheme"`
	Host   string `json:"host"`
}

// String will combine the scheme with address in format <scheme>://<host>
func (p ProtoAddress) String() string {
	return p.Scheme + "://" + p.Host
}

// Secure returns true if the address requires TLS
func (p ProtoAddress) Secure() bool {
	return p.Scheme == "https"
}

// ParseAddress does the reverse of ProtoAddress.String -- it will take a string and convert it
// an address. Addresses without a scheme default to `http`.
func ParseAddress(a string) (ProtoAddress, error) {
	a = strings.TrimSpace(a)
	if a == "" {
		return ProtoAddress{}, errors.Errorf("Empty address")
	}

	parts := strings.SplitN(a, "://", 2)
	if len(parts) == 1 {
		parts = []string{"http", parts[0]}
	}

	scheme := strings.ToLower(parts[0])
	if scheme != "http" && scheme != "https" {
		return ProtoAddress{}, errors.Errorf("Unsupported scheme %q in address %v", parts[0], a)
	}
	if parts[1] == "" {
		return ProtoAddress{}, errors.Errorf("Missing host in address %v", a)
	}

	return ProtoAddress{
		Scheme: scheme,
		Host:   parts[1],
	}, nil
}

// MustParseAddress is like ParseAddress but panics if the address cannot be parsed
func MustParseAddress(a string) ProtoAddress {
	p, err := ParseAddress(a)
	if err != nil {
		panic(err)
	}
	return p
}
