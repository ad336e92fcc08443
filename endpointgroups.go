package ise

import (
	"context"
	"net/http"
	"net/url"

	"github.com/netadm-tools/go-ise/internal/api"
)

const endpointGroupPath = "/config/endpointgroup"

// EndpointGroupService provides operations on endpoint identity groups.
type EndpointGroupService interface {
	// List returns all endpoint groups as summary resources.
	List(ctx context.Context, opts ...RequestOption) ([]Resource, error)

	// Get retrieves endpoint group details by object id.
	Get(ctx context.Context, id string, opts ...RequestOption) (*EndpointGroup, error)

	// GetByName resolves a group name to its object id and retrieves the
	// group details. The name match is exact and case sensitive.
	GetByName(ctx context.Context, name string, opts ...RequestOption) (*EndpointGroup, error)

	// Create adds an endpoint group and returns the new object id.
	Create(ctx context.Context, req *CreateGroupRequest, opts ...RequestOption) (string, error)

	// Delete removes the endpoint group with the given name.
	Delete(ctx context.Context, name string, opts ...RequestOption) error
}

// endpointGroupService implements EndpointGroupService.
type endpointGroupService struct {
	transport *api.Transport
}

func newEndpointGroupService(transport *api.Transport) *endpointGroupService {
	return &endpointGroupService{transport: transport}
}

func (s *endpointGroupService) List(ctx context.Context, opts ...RequestOption) ([]Resource, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	sr, err := searchPage(ctx, s.transport, endpointGroupPath, nil, reqCfg.headers)
	if err != nil {
		return nil, err
	}
	return sr.Resources, nil
}

func (s *endpointGroupService) Get(ctx context.Context, id string, opts ...RequestOption) (*EndpointGroup, error) {
	if err := validateID("endpoint group", id); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result struct {
		Group EndpointGroup `json:"EndPointGroup"`
	}
	resp, err := s.transport.DoJSON(ctx, &api.Request{
		Method:  http.MethodGet,
		Path:    endpointGroupPath + "/" + url.PathEscape(id),
		Headers: reqCfg.headers,
	}, &result)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{
			APIError:     APIError{StatusCode: http.StatusNotFound, Message: "endpoint group not found"},
			ResourceType: "endpoint group",
			ResourceID:   id,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseError(resp.StatusCode, resp.Body)
	}

	return &result.Group, nil
}

func (s *endpointGroupService) GetByName(ctx context.Context, name string, opts ...RequestOption) (*EndpointGroup, error) {
	if err := validateName("endpoint group", name); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	id, err := resolveID(ctx, s.transport, endpointGroupPath, "name.EQ."+name, "endpoint group", name, reqCfg.headers)
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id, opts...)
}

func (s *endpointGroupService) Create(ctx context.Context, req *CreateGroupRequest, opts ...RequestOption) (string, error) {
	if req == nil || req.Name == "" {
		return "", &ValidationError{
			APIError: APIError{Message: "endpoint group name is required"},
		}
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	body := map[string]any{
		"EndPointGroup": EndpointGroup{
			Name:        req.Name,
			Description: req.Description,
		},
	}

	resp, err := s.transport.Do(ctx, &api.Request{
		Method:  http.MethodPost,
		Path:    endpointGroupPath,
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

func (s *endpointGroupService) Delete(ctx context.Context, name string, opts ...RequestOption) error {
	if err := validateName("endpoint group", name); err != nil {
		return err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	id, err := resolveID(ctx, s.transport, endpointGroupPath, "name.EQ."+name, "endpoint group", name, reqCfg.headers)
	if err != nil {
		return err
	}

	return deleteByID(ctx, s.transport, endpointGroupPath, id, "endpoint group", name, reqCfg.headers)
}
