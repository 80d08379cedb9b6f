package cert

import (
	"crypto/tls"
	log "github.com/sirupsen/logrus"
)

// LogPeerCertificates logs the leaf certificate the client authenticated with, if any
func LogPeerCertificates(state *tls.ConnectionState) {
	if state == nil || len(state.PeerCertificates) == 0 {
		log.Tracef("No peer certificates.")
		return
	}

	cert := state.PeerCertificates[0]
	log.Infof(
		"Peer certificate: ver=%v, serial=%v, subject=%v",
		cert.Version,
		cert.SerialNumber,
		cert.Subject,
	)
}
