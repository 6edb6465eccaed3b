package security

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSConfig builds the client TLS configuration for the local REST API.
//
// The Obsidian plugin serves a self-signed certificate on 127.0.0.1, so
// verification is skipped when insecureSkipVerify is set. That is a reduced
// security posture and callers should log it. Otherwise the system roots are
// used, extended with caCertFile when given.
func TLSConfig(insecureSkipVerify bool, caCertFile string) (*tls.Config, error) {
	cfg := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	if insecureSkipVerify {
		cfg.InsecureSkipVerify = true //nolint:gosec // local self-signed certificate
		return cfg, nil
	}

	if caCertFile == "" {
		return cfg, nil
	}

	pemData, err := os.ReadFile(caCertFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate: %w", err)
	}

	pool, err := x509.SystemCertPool()
	if err != nil || pool == nil {
		pool = x509.NewCertPool()
	}
	if !pool.AppendCertsFromPEM(pemData) {
		return nil, fmt.Errorf("no certificates found in %q", caCertFile)
	}
	cfg.RootCAs = pool

	return cfg, nil
}
