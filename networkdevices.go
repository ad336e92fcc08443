package ise

import (
	"context"
	"net/http"
	"net/url"

	"github.com/netadm-tools/go-ise/internal/api"
)

const networkDevicePath = "/config/networkdevice"

// Defaults applied to newly registered network devices.
const (
	defaultDeviceProfile  = "Cisco"
	defaultCoAPort        = 1700
	defaultSNMPVersion    = "TWO_C"
	defaultSNMPPollingSec = 3600
)

// NetworkDeviceService provides operations on network access devices.
type NetworkDeviceService interface {
	// List returns all network devices as summary resources.
	List(ctx context.Context, opts ...RequestOption) ([]Resource, error)

	// Get retrieves network device details by object id.
	Get(ctx context.Context, id string, opts ...RequestOption) (*NetworkDevice, error)

	// GetByName resolves a device name to its object id and retrieves the
	// device details. The name match is exact and case sensitive.
	GetByName(ctx context.Context, name string, opts ...RequestOption) (*NetworkDevice, error)

	// Create registers a network device and returns the new object id.
	Create(ctx context.Context, req *CreateNetworkDeviceRequest, opts ...RequestOption) (string, error)

	// Delete removes the network device with the given name.
	Delete(ctx context.Context, name string, opts ...RequestOption) error
}

// networkDeviceService implements NetworkDeviceService.
type networkDeviceService struct {
	transport *api.Transport
}

func newNetworkDeviceService(transport *api.Transport) *networkDeviceService {
	return &networkDeviceService{transport: transport}
}

func (s *networkDeviceService) List(ctx context.Context, opts ...RequestOption) ([]Resource, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	sr, err := searchPage(ctx, s.transport, networkDevicePath, nil, reqCfg.headers)
	if err != nil {
		return nil, err
	}
	return sr.Resources, nil
}

func (s *networkDeviceService) Get(ctx context.Context, id string, opts ...RequestOption) (*NetworkDevice, error) {
	if err := validateID("network device", id); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result struct {
		Device NetworkDevice `json:"NetworkDevice"`
	}
	resp, err := s.transport.DoJSON(ctx, &api.Request{
		Method:  http.MethodGet,
		Path:    networkDevicePath + "/" + url.PathEscape(id),
		Headers: reqCfg.headers,
	}, &result)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{
			APIError:     APIError{StatusCode: http.StatusNotFound, Message: "network device not found"},
			ResourceType: "network device",
			ResourceID:   id,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseError(resp.StatusCode, resp.Body)
	}

	return &result.Device, nil
}

func (s *networkDeviceService) GetByName(ctx context.Context, name string, opts ...RequestOption) (*NetworkDevice, error) {
	if err := validateName("network device", name); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	id, err := resolveID(ctx, s.transport, networkDevicePath, "name.EQ."+name, "network device", name, reqCfg.headers)
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id, opts...)
}

// Create registers a network device with RADIUS authentication and SNMP
// polling configured. Group assignments follow the ISE hierarchy
// convention of "Root#Child" path strings.
func (s *networkDeviceService) Create(ctx context.Context, req *CreateNetworkDeviceRequest, opts ...RequestOption) (string, error) {
	if req == nil || req.Name == "" {
		return "", &ValidationError{
			APIError: APIError{Message: "network device name is required"},
		}
	}
	if req.IPAddress == "" {
		return "", &ValidationError{
			APIError: APIError{Message: "network device IP address is required"},
		}
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	profile := req.Profile
	if profile == "" {
		profile = defaultDeviceProfile
	}

	device := NetworkDevice{
		Name:        req.Name,
		Description: req.Description,
		ProfileName: profile,
		CoAPort:     defaultCoAPort,
		AuthenticationSettings: &AuthenticationSettings{
			NetworkProtocol:    "RADIUS",
			RADIUSSharedSecret: req.RADIUSSharedSecret,
			EnableKeyWrap:      false,
		},
		SNMPSettings: &SNMPSettings{
			Version:                       defaultSNMPVersion,
			ROCommunity:                   req.SNMPROCommunity,
			PollingInterval:               defaultSNMPPollingSec,
			LinkTrapQuery:                 true,
			MACTrapQuery:                  true,
			OriginatingPolicyServicesNode: "Auto",
		},
		IPList: []DeviceIP{
			{IPAddress: req.IPAddress, Mask: 32},
		},
		GroupList: []string{
			req.DeviceGroup,
			req.DeviceType,
			req.Location,
			"IPSEC#Is IPSEC Device#No",
		},
	}

	resp, err := s.transport.Do(ctx, &api.Request{
		Method:  http.MethodPost,
		Path:    networkDevicePath,
		Body:    map[string]any{"NetworkDevice": device},
		Headers: reqCfg.headers,
	})

	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusCreated {
		return "", parseError(resp.StatusCode, resp.Body)
	}

	return idFromLocation(resp.Headers)
}

func (s *networkDeviceService) Delete(ctx context.Context, name string, opts ...RequestOption) error {
	if err := validateName("network device", name); err != nil {
		return err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	id, err := resolveID(ctx, s.transport, networkDevicePath, "name.EQ."+name, "network device", name, reqCfg.headers)
	if err != nil {
		return err
	}

	return deleteByID(ctx, s.transport, networkDevicePath, id, "network device", name, reqCfg.headers)
}
