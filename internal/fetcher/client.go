package fetcher

import (
	"net"
	"net/http"
	"time"
)

const (
	defaultMaxIdleConns          = 100
	defaultIdleConnTimeout       = 90 * time.Second
	defaultTLSHandshakeTimeout   = 10 * time.Second
	defaultExpectContinueTimeout = time.Second
	defaultDialTimeout           = 10 * time.Second
)

// NewClient builds the HTTP client shared by every fetch in a crawl.
// Idle connections per host are sized to the admission gate so permits can
// reuse connections instead of redialing.
func NewClient(timeout time.Duration, maxConnsPerHost int) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxConnsPerHost <= 0 {
		maxConnsPerHost = DefaultMaxConnsPerHost
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   defaultDialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          defaultMaxIdleConns,
		MaxIdleConnsPerHost:   maxConnsPerHost,
		IdleConnTimeout:       defaultIdleConnTimeout,
		TLSHandshakeTimeout:   defaultTLSHandshakeTimeout,
		ResponseHeaderTimeout: timeout,
		ExpectContinueTimeout: defaultExpectContinueTimeout,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
