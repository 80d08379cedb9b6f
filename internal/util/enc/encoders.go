package enc

import (
	"github.com/pkg/errors"
	"strings"
)

// ErrUnknownEncoder is returned when looking up an encoder which does not exist
var ErrUnknownEncoder = errors.New("unknown encoder")

var (
	Base64Encoding  = &Base64Encoder{}
	Base64uEncoding = &Base64uEncoder{}
	PemEncoding     = &PemEncoder{}
	MimeEncoding    = &MimeEncoder{}
)

var encoders = []Encoder{
	Base64Encoding,
	Base64uEncoding,
	PemEncoding,
	MimeEncoding,
}

// All returns all the known encoders, the default one first
func All() []Encoder {
	res := make([]Encoder, len(encoders))
	copy(res, encoders)
	return res
}

// Names returns the names of all encoders, in the same order as All
func Names() []string {
	res := make([]string, 0, len(encoders))
	for _, e := range encoders {
		res = append(res, e.Name())
	}
	return res
}

// FromName finds the encoder by its (case-insensitive) name
func FromName(name string) (Encoder, error) {
	name = strings.TrimSpace(name)
	for _, e := range encoders {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownEncoder, "no encoder named %q", name)
}

// FromCode finds the encoder by its one-letter code
func FromCode(code byte) (Encoder, error) {
	for _, e := range encoders {
		if e.Code() == code {
			return e, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownEncoder, "no encoder with code %q", code)
}

// Lookup finds the encoder by its name or, for single letters, by its code. Both are case-insensitive.
func Lookup(nameOrCode string) (Encoder, error) {
	nameOrCode = strings.TrimSpace(nameOrCode)
	if len(nameOrCode) == 1 {
		if e, err := FromCode(strings.ToUpper(nameOrCode)[0]); err == nil {
			return e, nil
		}
	}
	return FromName(nameOrCode)
}
