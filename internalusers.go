package ise

import (
	"context"
	"net/http"
	"net/url"

	"github.com/netadm-tools/go-ise/internal/api"
)

const internalUserPath = "/config/internaluser"

// InternalUserService provides operations on the ISE local user store.
type InternalUserService interface {
	// List returns all internal users as summary resources.
	List(ctx context.Context, opts ...RequestOption) ([]Resource, error)

	// Get retrieves internal user details by object id.
	Get(ctx context.Context, id string, opts ...RequestOption) (*InternalUser, error)

	// GetByName resolves a username to its object id and retrieves the
	// user details. The name match is exact and case sensitive.
	GetByName(ctx context.Context, name string, opts ...RequestOption) (*InternalUser, error)

	// Create adds a user to the local store and returns the new object id.
	Create(ctx context.Context, req *CreateInternalUserRequest, opts ...RequestOption) (string, error)

	// Delete removes the internal user with the given username.
	Delete(ctx context.Context, name string, opts ...RequestOption) error
}

// internalUserService implements InternalUserService.
type internalUserService struct {
	transport *api.Transport
}

func newInternalUserService(transport *api.Transport) *internalUserService {
	return &internalUserService{transport: transport}
}

func (s *internalUserService) List(ctx context.Context, opts ...RequestOption) ([]Resource, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	sr, err := searchPage(ctx, s.transport, internalUserPath, nil, reqCfg.headers)
	if err != nil {
		return nil, err
	}
	return sr.Resources, nil
}

func (s *internalUserService) Get(ctx context.Context, id string, opts ...RequestOption) (*InternalUser, error) {
	if err := validateID("internal user", id); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result struct {
		User InternalUser `json:"InternalUser"`
	}
	resp, err := s.transport.DoJSON(ctx, &api.Request{
		Method:  http.MethodGet,
		Path:    internalUserPath + "/" + url.PathEscape(id),
		Headers: reqCfg.headers,
	}, &result)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{
			APIError:     APIError{StatusCode: http.StatusNotFound, Message: "internal user not found"},
			ResourceType: "internal user",
			ResourceID:   id,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseError(resp.StatusCode, resp.Body)
	}

	return &result.User, nil
}

func (s *internalUserService) GetByName(ctx context.Context, name string, opts ...RequestOption) (*InternalUser, error) {
	if err := validateName("internal user", name); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	id, err := resolveID(ctx, s.transport, internalUserPath, "name.EQ."+name, "internal user", name, reqCfg.headers)
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id, opts...)
}

// internalUserPayload is the write shape for internal users. Password
// fields are write-only; ISE never returns them.
type internalUserPayload struct {
	Name           string `json:"name"`
	Password       string `json:"password,omitempty"`
	EnablePassword string `json:"enablePassword,omitempty"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Email          string `json:"email,omitempty"`
	Description    string `json:"description,omitempty"`
	IdentityGroups string `json:"identityGroups,omitempty"`
}

func (s *internalUserService) Create(ctx context.Context, req *CreateInternalUserRequest, opts ...RequestOption) (string, error) {
	if req == nil || req.Name == "" {
		return "", &ValidationError{
			APIError: APIError{Message: "internal user name is required"},
		}
	}
	if req.Password == "" {
		return "", &ValidationError{
			APIError: APIError{Message: "internal user password is required"},
		}
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	body := map[string]any{
		"InternalUser": internalUserPayload{
			Name:           req.Name,
			Password:       req.Password,
			EnablePassword: req.EnablePassword,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			Description:    req.Description,
			IdentityGroups: req.IdentityGroups,
		},
	}

	resp, err := s.transport.Do(ctx, &api.Request{
		Method:  http.MethodPost,
		Path:    internalUserPath,
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

func (s *internalUserService) Delete(ctx context.Context, name string, opts ...RequestOption) error {
	if err := validateName("internal user", name); err != nil {
		return err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	id, err := resolveID(ctx, s.transport, internalUserPath, "name.EQ."+name, "internal user", name, reqCfg.headers)
	if err != nil {
		return err
	}

	return deleteByID(ctx, s.transport, internalUserPath, id, "internal user", name, reqCfg.headers)
}
