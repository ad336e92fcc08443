package ise

import (
	"context"
	"iter"
	"net/http"
	"net/url"
	"strconv"

	"github.com/netadm-tools/go-ise/internal/api"
)

const (
	endpointPath = "/config/endpoint"

	// ERS caps collection pages at 100 entries.
	groupPageSize = 100
)

// EndpointService provides operations on ISE endpoints.
type EndpointService interface {
	// List returns the endpoints known to ISE as summary resources.
	List(ctx context.Context, opts ...RequestOption) ([]Resource, error)

	// Get retrieves full endpoint details by object id.
	Get(ctx context.Context, id string, opts ...RequestOption) (*Endpoint, error)

	// GetByMAC resolves a MAC address to its object id and retrieves the
	// endpoint details.
	GetByMAC(ctx context.Context, mac string, opts ...RequestOption) (*Endpoint, error)

	// Create registers a new endpoint and returns the new object id.
	Create(ctx context.Context, req *CreateEndpointRequest, opts ...RequestOption) (string, error)

	// Delete removes the endpoint with the given MAC address.
	Delete(ctx context.Context, mac string, opts ...RequestOption) error

	// ListInGroupPage returns one page of the endpoints in an endpoint
	// group. Pages are numbered from 1 and hold at most 100 entries; the
	// returned page reports whether a further page exists. Requesting a
	// page past the end returns an empty page, not an error.
	ListInGroupPage(ctx context.Context, groupID string, page int, opts ...RequestOption) (*EndpointPage, error)

	// ListInGroup returns an iterator over all endpoints in an endpoint
	// group. The iterator fetches pages lazily as you iterate, so groups
	// with tens of thousands of endpoints can be streamed without
	// buffering the full result set.
	ListInGroup(ctx context.Context, groupID string, opts ...RequestOption) iter.Seq2[Resource, error]
}

// endpointService implements EndpointService.
type endpointService struct {
	transport *api.Transport
}

func newEndpointService(transport *api.Transport) *endpointService {
	return &endpointService{transport: transport}
}

// validateMAC rejects malformed MAC addresses before any request is made.
func validateMAC(mac string) error {
	if !ValidMAC(mac) {
		return &ValidationError{
			APIError: APIError{Message: "invalid MAC address " + strconv.Quote(mac) + ", must be in the form AA:BB:CC:00:11:22"},
		}
	}
	return nil
}

// List returns all endpoints as summary resources.
func (s *endpointService) List(ctx context.Context, opts ...RequestOption) ([]Resource, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	sr, err := searchPage(ctx, s.transport, endpointPath, nil, reqCfg.headers)
	if err != nil {
		return nil, err
	}
	return sr.Resources, nil
}

// Get retrieves full endpoint details by object id.
func (s *endpointService) Get(ctx context.Context, id string, opts ...RequestOption) (*Endpoint, error) {
	if err := validateID("endpoint", id); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	// Detail responses arrive wrapped in an ERSEndPoint envelope
	var result struct {
		Endpoint Endpoint `json:"ERSEndPoint"`
	}
	resp, err := s.transport.DoJSON(ctx, &api.Request{
		Method:  http.MethodGet,
		Path:    endpointPath + "/" + url.PathEscape(id),
		Headers: reqCfg.headers,
	}, &result)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{
			APIError:     APIError{StatusCode: http.StatusNotFound, Message: "endpoint not found"},
			ResourceType: "endpoint",
			ResourceID:   id,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseError(resp.StatusCode, resp.Body)
	}

	return &result.Endpoint, nil
}

// GetByMAC resolves a MAC address to an object id, then fetches details.
func (s *endpointService) GetByMAC(ctx context.Context, mac string, opts ...RequestOption) (*Endpoint, error) {
	if err := validateMAC(mac); err != nil {
		return nil, err
	}
	mac = normalizeMAC(mac)

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	id, err := resolveID(ctx, s.transport, endpointPath, "mac.EQ."+mac, "endpoint", mac, reqCfg.headers)
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id, opts...)
}

// ersEndpointEnvelope is the write payload wrapper for endpoints.
type ersEndpointEnvelope struct {
	Endpoint Endpoint `json:"ERSEndPoint"`
}

// Create registers a new endpoint. The new object id is parsed from the
// Location header of the 201 response.
func (s *endpointService) Create(ctx context.Context, req *CreateEndpointRequest, opts ...RequestOption) (string, error) {
	if req == nil {
		return "", &ValidationError{
			APIError: APIError{Message: "create request cannot be nil"},
		}
	}
	if err := validateMAC(req.MAC); err != nil {
		return "", err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	body := ersEndpointEnvelope{
		Endpoint: Endpoint{
			Name:                    req.Name,
			Description:             req.Description,
			MAC:                     normalizeMAC(req.MAC),
			ProfileID:               req.ProfileID,
			StaticProfileAssignment: req.StaticProfileAssignment,
			GroupID:                 req.GroupID,
			StaticGroupAssignment:   req.StaticGroupAssignment,
		},
	}
	if len(req.CustomAttributes) > 0 {
		body.Endpoint.CustomAttributes = &CustomAttributes{CustomAttributes: req.CustomAttributes}
	}

	resp, err := s.transport.Do(ctx, &api.Request{
		Method:  http.MethodPost,
		Path:    endpointPath,
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

// Delete resolves a MAC address to an object id and removes the endpoint.
func (s *endpointService) Delete(ctx context.Context, mac string, opts ...RequestOption) error {
	if err := validateMAC(mac); err != nil {
		return err
	}
	mac = normalizeMAC(mac)

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	id, err := resolveID(ctx, s.transport, endpointPath, "mac.EQ."+mac, "endpoint", mac, reqCfg.headers)
	if err != nil {
		return err
	}

	return deleteByID(ctx, s.transport, endpointPath, id, "endpoint", mac, reqCfg.headers)
}

// ListInGroupPage returns a single page of the endpoints in a group.
func (s *endpointService) ListInGroupPage(ctx context.Context, groupID string, page int, opts ...RequestOption) (*EndpointPage, error) {
	if err := validateID("endpoint group", groupID); err != nil {
		return nil, err
	}
	if page < 1 {
		return nil, &ValidationError{
			APIError: APIError{Message: "page numbers start at 1"},
		}
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	query := url.Values{}
	query.Set("filter", "groupId.EQ."+groupID)
	query.Set("size", strconv.Itoa(groupPageSize))
	query.Set("page", strconv.Itoa(page))

	sr, err := searchPage(ctx, s.transport, endpointPath, query, reqCfg.headers)
	if err != nil {
		return nil, err
	}

	return &EndpointPage{
		Items:   sr.Resources,
		Page:    page,
		Total:   sr.Total,
		HasNext: sr.NextPage != nil,
	}, nil
}

// ListInGroup returns an iterator over all endpoints in a group.
// Page number is the entire pagination state; each page request is
// idempotent and replayable.
func (s *endpointService) ListInGroup(ctx context.Context, groupID string, opts ...RequestOption) iter.Seq2[Resource, error] {
	return func(yield func(Resource, error) bool) {
		page := 1

		for {
			result, err := s.ListInGroupPage(ctx, groupID, page, opts...)
			if err != nil {
				yield(Resource{}, err)
				return
			}

			if !s.yieldPageItems(ctx, result, yield) {
				return
			}

			if !result.HasMore() {
				return
			}

			page = result.NextPage()
		}
	}
}

// yieldPageItems yields each endpoint from the page to the iterator.
// Returns false if iteration should stop (context cancelled or yield
// returned false).
func (s *endpointService) yieldPageItems(ctx context.Context, page *EndpointPage, yield func(Resource, error) bool) bool {
	for _, ep := range page.Items {
		if err := ctx.Err(); err != nil {
			yield(Resource{}, err)
			return false
		}
		if !yield(ep, nil) {
			return false
		}
	}
	return true
}
