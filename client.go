// Package ise provides a Go client for the Cisco Identity Services Engine
// ERS (External RESTful Services) API.
//
// Basic usage:
//
//	client, err := ise.NewClient(
//	    ise.WithHost("ise.example.com"),
//	    ise.WithBasicAuth("ers-admin", "password"),
//	    ise.WithInsecureSkipVerify(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Stream all endpoints of a group using the iterator
//	for ep, err := range client.Endpoints.ListInGroup(ctx, groupID) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(ep.Name)
//	}
package ise

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/netadm-tools/go-ise/internal/api"
	"github.com/netadm-tools/go-ise/internal/auth"
)

// Default configuration values.
const (
	defaultTimeout = 30 * time.Second
	ersPort        = 9060
)

// Client is the ISE ERS API client.
type Client struct {
	// IdentityGroups provides access to user identity group operations.
	IdentityGroups IdentityGroupService

	// EndpointGroups provides access to endpoint identity group operations.
	EndpointGroups EndpointGroupService

	// Endpoints provides access to endpoint operations.
	Endpoints EndpointService

	// InternalUsers provides access to local user store operations.
	InternalUsers InternalUserService

	// NetworkDevices provides access to network device operations.
	NetworkDevices NetworkDeviceService

	// DeviceGroups provides access to network device group operations.
	DeviceGroups DeviceGroupService

	transport *api.Transport
}

// NewClient creates a new ERS client with the given options.
// No connection is made until the first operation is issued.
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	baseURL := cfg.baseURL
	if baseURL == "" {
		if cfg.host == "" {
			return nil, ErrNoHost
		}
		baseURL = fmt.Sprintf("https://%s:%d/ers", cfg.host, ersPort)
	}

	if cfg.username == "" || cfg.password == "" {
		return nil, ErrNoCredentials
	}

	creds := &auth.Credentials{
		Username: cfg.username,
		Password: cfg.password,
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
		if cfg.insecure {
			// Clone keeps the default proxy, dial and HTTP/2 behavior.
			tr := http.DefaultTransport.(*http.Transport).Clone()
			tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
			httpClient.Transport = tr
		}
	}

	transport, err := api.NewTransport(baseURL, creds, httpClient)
	if err != nil {
		return nil, err
	}

	if cfg.userAgent != "" {
		transport.UserAgent = cfg.userAgent
	}

	client := &Client{
		transport: transport,
	}

	// Initialize services
	client.IdentityGroups = newIdentityGroupService(transport)
	client.EndpointGroups = newEndpointGroupService(transport)
	client.Endpoints = newEndpointService(transport)
	client.InternalUsers = newInternalUserService(transport)
	client.NetworkDevices = newNetworkDeviceService(transport)
	client.DeviceGroups = newDeviceGroupService(transport)

	return client, nil
}

// BaseURL returns the configured ERS base URL.
func (c *Client) BaseURL() string {
	return c.transport.BaseURL.String()
}
