package cert

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"github.com/bokysan/b64ace/internal/args"
	"github.com/bokysan/b64ace/pkg/base64"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/youmark/pkcs8"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ServerConfig is the certificate configuration of the HTTPS listener
type ServerConfig struct {
	CaCertificate             string  `json:"caCertificate"             yaml:"caCertificate"             long:"ca-certificate"               env:"CA_CERTIFICATE"               description:"CA certificate(s) used to verify clients"`
	CaCertificateFile         string  `json:"caCertificateFile"         yaml:"caCertificateFile"         long:"ca-certificate-file"          env:"CA_CERTIFICATE_FILE"          description:"File with CA certificate(s) used to verify clients"`
	Certificate               string  `json:"certificate"               yaml:"certificate"               long:"certificate"                  env:"CERTIFICATE"                  description:"Server certificate"`
	CertificateFile           string  `json:"certificateFile"           yaml:"certificateFile"           long:"certificate-file"             env:"CERTIFICATE_FILE"             description:"File with the server certificate"`
	PrivateKey                string  `json:"privateKey"                yaml:"privateKey"                long:"private-key"                  env:"PRIVATE_KEY"                  description:"Server private key"`
	PrivateKeyFile            string  `json:"privateKeyFile"            yaml:"privateKeyFile"            long:"private-key-file"             env:"PRIVATE_KEY_FILE"             description:"File with the server private key"`
	PrivateKeyPassword        *string `json:"privateKeyPassword"        yaml:"privateKeyPassword"        long:"private-key-password"         env:"PRIVATE_KEY_PASSWORD"         description:"Decryption password"`
	PrivateKeyPasswordProgram string  `json:"privateKeyPasswordProgram" yaml:"privateKeyPasswordProgram" long:"private-key-password-program" env:"PRIVATE_KEY_PASSWORD_PROGRAM" description:"Program to run to get the decryption key"`
	RequireClientCert         bool    `json:"requireClientCert"         yaml:"requireClientCert"         long:"require-client-cert"          env:"REQUIRE_CLIENT_CERT"          description:"If set, the client must authenticate with its certificate."`
}

// GetCertificate returns the PEM-encoded certificate chain, read from file or taken inline
func (m *ServerConfig) GetCertificate() ([]byte, error) {
	return readPem(m.CertificateFile, m.Certificate, "certificate")
}

// GetPrivateKey returns the PEM-encoded private key. Encrypted keys are decrypted and
// returned as plain PKCS#8 keys.
func (m *ServerConfig) GetPrivateKey() ([]byte, error) {
	privateKeyPemBlock, err := readPem(m.PrivateKeyFile, m.PrivateKey, "private key")
	if err != nil || len(privateKeyPemBlock) == 0 {
		return privateKeyPemBlock, err
	}

	block, _ := pem.Decode(privateKeyPemBlock)
	if block == nil {
		return nil, errors.Errorf("Private key is not PEM-encoded")
	}

	if block.Type == "ENCRYPTED PRIVATE KEY" {
		password, err := m.GetPrivateKeyPassword()
		if err != nil {
			return nil, errors.Wrapf(err, "Failed getting the key password")
		}

		key, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes, password)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not decrypt private key!")
		}

		der, err := x509.MarshalPKCS8PrivateKey(key)
		if err != nil {
			return nil, errors.Wrapf(err, "Don't know how to handle %T", key)
		}
		return ArmorBlock("PRIVATE KEY", der), nil

	} else if x509.IsEncryptedPEMBlock(block) {
		password, err := m.GetPrivateKeyPassword()
		if err != nil {
			return nil, errors.Wrapf(err, "Failed getting the key password")
		}

		der, err := x509.DecryptPEMBlock(block, password)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not decrypt private key!")
		}
		return ArmorBlock(block.Type, der), nil
	}

	return privateKeyPemBlock, nil
}

// GetPrivateKeyPassword returns the configured password or runs the password program
func (m *ServerConfig) GetPrivateKeyPassword() ([]byte, error) {
	if m.PrivateKeyPassword != nil {
		return []byte(*m.PrivateKeyPassword), nil
	} else if m.PrivateKeyPasswordProgram != "" {
		cmd := exec.Command("sh", "-c", m.PrivateKeyPasswordProgram)
		out := bytes.NewBuffer([]byte{})
		cmd.Stdout = out
		if err := cmd.Run(); err != nil {
			return nil, errors.Wrapf(err, "Failed executing %s", m.PrivateKeyPasswordProgram)
		}
		return bytes.TrimRight(out.Bytes(), "\r\n"), nil
	}
	return nil, errors.Errorf("Private key is encrypted and no password or password program defined!")
}

// GetX509KeyPair returns the server certificate or nil if none is configured
func (m *ServerConfig) GetX509KeyPair() (*tls.Certificate, error) {
	certPemBlock, err := m.GetCertificate()
	if err != nil {
		return nil, err
	}
	privateKeyPemBlock, err := m.GetPrivateKey()
	if err != nil {
		return nil, err
	}

	if len(certPemBlock) == 0 && len(privateKeyPemBlock) == 0 {
		return nil, nil
	}

	cert, err := tls.X509KeyPair(certPemBlock, privateKeyPemBlock)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not create a X509 key pair from given data!")
	}
	return &cert, nil
}

// GetCaCertificates returns the PEM-encoded CA certificates, if any
func (m *ServerConfig) GetCaCertificates() ([]byte, error) {
	return readPem(m.CaCertificateFile, m.CaCertificate, "ca certificate")
}

// GetTlsConfig builds the TLS configuration of the listener. A server certificate is mandatory.
func (m *ServerConfig) GetTlsConfig() (*tls.Config, error) {
	log.Debug("ServerConfig.GetTlsConfig()")

	conf := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	crt, err := m.GetX509KeyPair()
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read certificate pair")
	} else if crt == nil {
		return nil, errors.Errorf("HTTPS requested but no certificate configured")
	}
	conf.Certificates = []tls.Certificate{*crt}

	caCert, err := m.GetCaCertificates()
	if err != nil {
		return nil, errors.Wrapf(err, "Could not load CA certificates")
	}
	if caCert != nil {
		caCertPool := x509.NewCertPool()
		if ok := caCertPool.AppendCertsFromPEM(caCert); !ok {
			return nil, errors.Errorf("Could not parse CA certificates")
		}
		conf.ClientCAs = caCertPool
	}

	if m.RequireClientCert {
		conf.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return conf, nil
}

// ArmorBlock returns the DER bytes as a PEM block of the given type: base64 text broken
// into 64 character lines between the BEGIN and END markers.
func ArmorBlock(blockType string, der []byte) []byte {
	var b strings.Builder
	b.WriteString("-----BEGIN " + blockType + "-----\n")
	if len(der) > 0 {
		b.WriteString(base64.EncodePem(der))
		b.WriteByte('\n')
	}
	b.WriteString("-----END " + blockType + "-----\n")
	return []byte(b.String())
}

func readPem(file, inline, what string) ([]byte, error) {
	if file != "" {
		data, err := ioutil.ReadFile(findFile(file))
		if err != nil {
			return nil, errors.Wrapf(err, "Could not read %s file: %s", what, file)
		}
		return data, nil
	} else if inline != "" {
		return []byte(strings.TrimSpace(inline)), nil
	}
	return nil, nil
}

// findFile will try to locate the file based on relative path of the configuration location and,
// failing that, return the provided location as is
func findFile(name string) string {
	if args.General.ConfigurationFilePath != "" {
		path := filepath.Dir(args.General.ConfigurationFilePath)
		file := filepath.Join(path, name)

		_, err := os.Stat(file)
		if !os.IsNotExist(err) {
			return file
		}
	}

	return name
}
