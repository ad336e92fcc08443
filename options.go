package ise

import (
	"net/http"
	"time"
)

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

type clientConfig struct {
	host       string
	baseURL    string
	username   string
	password   string
	insecure   bool
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
}

// WithHost sets the ISE admin node the client talks to. The ERS base URL
// is derived from it as https://<host>:9060/ers.
func WithHost(host string) ClientOption {
	return func(c *clientConfig) {
		c.host = host
	}
}

// WithBaseURL sets the full ERS base URL, overriding WithHost.
// Useful for nonstandard ports and test servers.
func WithBaseURL(url string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithBasicAuth sets the ERS admin credentials. The account needs the
// ERS-Admin or ERS-Operator role; the client does not verify this.
func WithBasicAuth(username, password string) ClientOption {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
// ISE deployments commonly run on self-signed certificates.
// Note: This option is ignored when WithHTTPClient is used;
// configure TLS directly on the provided client instead.
func WithInsecureSkipVerify() ClientOption {
	return func(c *clientConfig) {
		c.insecure = true
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the default request timeout.
// Note: This option is ignored when WithHTTPClient is used;
// set the timeout directly on the provided client instead.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// RequestOption configures individual API requests.
type RequestOption func(*requestConfig)

type requestConfig struct {
	headers http.Header
}

func newRequestConfig() *requestConfig {
	return &requestConfig{
		headers: make(http.Header),
	}
}

func (r *requestConfig) apply(opts ...RequestOption) {
	for _, opt := range opts {
		opt(r)
	}
}

// WithHeader adds a custom header to a request.
func WithHeader(key, value string) RequestOption {
	return func(r *requestConfig) {
		r.headers.Set(key, value)
	}
}

// WithHeaders adds multiple custom headers to a request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r *requestConfig) {
		for k, v := range headers {
			r.headers.Set(k, v)
		}
	}
}
