package ise

import (
	"context"
	"net/http"
	"net/url"

	"github.com/netadm-tools/go-ise/internal/api"
)

const identityGroupPath = "/config/identitygroup"

// IdentityGroupService provides operations on user identity groups.
type IdentityGroupService interface {
	// List returns all identity groups as summary resources.
	List(ctx context.Context, opts ...RequestOption) ([]Resource, error)

	// Get retrieves identity group details by object id.
	Get(ctx context.Context, id string, opts ...RequestOption) (*IdentityGroup, error)

	// GetByName resolves a group name to its object id and retrieves the
	// group details. The name match is exact and case sensitive.
	GetByName(ctx context.Context, name string, opts ...RequestOption) (*IdentityGroup, error)

	// Create adds an identity group and returns the new object id.
	Create(ctx context.Context, req *CreateGroupRequest, opts ...RequestOption) (string, error)

	// Delete removes the identity group with the given name.
	Delete(ctx context.Context, name string, opts ...RequestOption) error
}

// identityGroupService implements IdentityGroupService.
type identityGroupService struct {
	transport *api.Transport
}

func newIdentityGroupService(transport *api.Transport) *identityGroupService {
	return &identityGroupService{transport: transport}
}

func (s *identityGroupService) List(ctx context.Context, opts ...RequestOption) ([]Resource, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	sr, err := searchPage(ctx, s.transport, identityGroupPath, nil, reqCfg.headers)
	if err != nil {
		return nil, err
	}
	return sr.Resources, nil
}

func (s *identityGroupService) Get(ctx context.Context, id string, opts ...RequestOption) (*IdentityGroup, error) {
	if err := validateID("identity group", id); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result struct {
		Group IdentityGroup `json:"IdentityGroup"`
	}
	resp, err := s.transport.DoJSON(ctx, &api.Request{
		Method:  http.MethodGet,
		Path:    identityGroupPath + "/" + url.PathEscape(id),
		Headers: reqCfg.headers,
	}, &result)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{
			APIError:     APIError{StatusCode: http.StatusNotFound, Message: "identity group not found"},
			ResourceType: "identity group",
			ResourceID:   id,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseError(resp.StatusCode, resp.Body)
	}

	return &result.Group, nil
}

func (s *identityGroupService) GetByName(ctx context.Context, name string, opts ...RequestOption) (*IdentityGroup, error) {
	if err := validateName("identity group", name); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	id, err := resolveID(ctx, s.transport, identityGroupPath, "name.EQ."+name, "identity group", name, reqCfg.headers)
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id, opts...)
}

func (s *identityGroupService) Create(ctx context.Context, req *CreateGroupRequest, opts ...RequestOption) (string, error) {
	if req == nil || req.Name == "" {
		return "", &ValidationError{
			APIError: APIError{Message: "identity group name is required"},
		}
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	body := map[string]any{
		"IdentityGroup": IdentityGroup{
			Name:        req.Name,
			Description: req.Description,
			Parent:      req.Parent,
		},
	}

	resp, err := s.transport.Do(ctx, &api.Request{
		Method:  http.MethodPost,
		Path:    identityGroupPath,
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

func (s *identityGroupService) Delete(ctx context.Context, name string, opts ...RequestOption) error {
	if err := validateName("identity group", name); err != nil {
		return err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	id, err := resolveID(ctx, s.transport, identityGroupPath, "name.EQ."+name, "identity group", name, reqCfg.headers)
	if err != nil {
		return err
	}

	return deleteByID(ctx, s.transport, identityGroupPath, id, "identity group", name, reqCfg.headers)
}
