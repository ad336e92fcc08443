package ise

import (
	"context"
	"net/http"
	"net/url"

	"github.com/netadm-tools/go-ise/internal/api"
)

const deviceGroupPath = "/config/networkdevicegroup"

// DeviceGroupService provides operations on network device groups.
type DeviceGroupService interface {
	// List returns all device groups as summary resources.
	List(ctx context.Context, opts ...RequestOption) ([]Resource, error)

	// Get retrieves device group details by object id.
	Get(ctx context.Context, id string, opts ...RequestOption) (*NetworkDeviceGroup, error)

	// GetByName resolves a group name to its object id and retrieves the
	// group details. Device group names are hierarchy paths, e.g.
	// "Location#All Locations#Branch".
	GetByName(ctx context.Context, name string, opts ...RequestOption) (*NetworkDeviceGroup, error)

	// Create adds a device group and returns the new object id. The
	// Parent field of the request selects the root hierarchy ("Location",
	// "Device Type", ...) via the othername attribute.
	Create(ctx context.Context, req *CreateGroupRequest, opts ...RequestOption) (string, error)

	// Delete removes the device group with the given name.
	Delete(ctx context.Context, name string, opts ...RequestOption) error
}

// deviceGroupService implements DeviceGroupService.
type deviceGroupService struct {
	transport *api.Transport
}

func newDeviceGroupService(transport *api.Transport) *deviceGroupService {
	return &deviceGroupService{transport: transport}
}

func (s *deviceGroupService) List(ctx context.Context, opts ...RequestOption) ([]Resource, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	sr, err := searchPage(ctx, s.transport, deviceGroupPath, nil, reqCfg.headers)
	if err != nil {
		return nil, err
	}
	return sr.Resources, nil
}

func (s *deviceGroupService) Get(ctx context.Context, id string, opts ...RequestOption) (*NetworkDeviceGroup, error) {
	if err := validateID("device group", id); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result struct {
		Group NetworkDeviceGroup `json:"NetworkDeviceGroup"`
	}
	resp, err := s.transport.DoJSON(ctx, &api.Request{
		Method:  http.MethodGet,
		Path:    deviceGroupPath + "/" + url.PathEscape(id),
		Headers: reqCfg.headers,
	}, &result)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{
			APIError:     APIError{StatusCode: http.StatusNotFound, Message: "device group not found"},
			ResourceType: "device group",
			ResourceID:   id,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseError(resp.StatusCode, resp.Body)
	}

	return &result.Group, nil
}

func (s *deviceGroupService) GetByName(ctx context.Context, name string, opts ...RequestOption) (*NetworkDeviceGroup, error) {
	if err := validateName("device group", name); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	id, err := resolveID(ctx, s.transport, deviceGroupPath, "name.EQ."+name, "device group", name, reqCfg.headers)
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id, opts...)
}

func (s *deviceGroupService) Create(ctx context.Context, req *CreateGroupRequest, opts ...RequestOption) (string, error) {
	if req == nil || req.Name == "" {
		return "", &ValidationError{
			APIError: APIError{Message: "device group name is required"},
		}
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	body := map[string]any{
		"NetworkDeviceGroup": NetworkDeviceGroup{
			Name:        req.Name,
			Description: req.Description,
			OtherName:   req.Parent,
		},
	}

	resp, err := s.transport.Do(ctx, &api.Request{
		Method:  http.MethodPost,
		Path:    deviceGroupPath,
		Body:    body,
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

func (s *deviceGroupService) Delete(ctx context.Context, name string, opts ...RequestOption) error {
	if err := validateName("device group", name); err != nil {
		return err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	id, err := resolveID(ctx, s.transport, deviceGroupPath, "name.EQ."+name, "device group", name, reqCfg.headers)
	if err != nil {
		return err
	}

	return deleteByID(ctx, s.transport, deviceGroupPath, id, "device group", name, reqCfg.headers)
}
