// Package util provides the shared logger and HTTP client construction used
// across the gomovie client.
package util

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// HTTPClientConfig holds the transport knobs for an outbound HTTP client.
// It is built once from the application config and passed explicitly to
// whichever API client needs it; there is no package-level shared client.
type HTTPClientConfig struct {
	Timeout             time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	MaxConnsPerHost     int
	IdleConnTimeout     time.Duration
	TLSHandshakeTimeout time.Duration
	ExpectContinue      time.Duration
	KeepAlive           time.Duration
	DialTimeout         time.Duration
}

// DefaultHTTPClientConfig returns the pooled defaults used for backend calls.
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:             30 * time.Second,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     20,
		IdleConnTimeout:     120 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
		ExpectContinue:      1 * time.Second,
		KeepAlive:           30 * time.Second,
		DialTimeout:         5 * time.Second,
	}
}

// FastHTTPClientConfig returns a configuration tuned for quick metadata
// lookups with a shorter overall timeout.
func FastHTTPClientConfig() HTTPClientConfig {
	cfg := DefaultHTTPClientConfig()
	cfg.Timeout = 15 * time.Second
	cfg.IdleConnTimeout = 90 * time.Second
	cfg.ExpectContinue = 500 * time.Millisecond
	return cfg
}

// NewHTTPClient builds an *http.Client with a pooled transport from cfg.
func NewHTTPClient(cfg HTTPClientConfig) *http.Client {
	return &http.Client{
		Transport: newTransport(cfg),
		Timeout:   cfg.Timeout,
	}
}

func newTransport(cfg HTTPClientConfig) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.DialTimeout,
			KeepAlive: cfg.KeepAlive,
		}).DialContext,
		MaxIdleConns:          cfg.MaxIdleConns,
		MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
		MaxConnsPerHost:       cfg.MaxConnsPerHost,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.TLSHandshakeTimeout,
		ExpectContinueTimeout: cfg.ExpectContinue,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}
