package ise

import (
	"context"
	"net/http"
	"net/url"
	"path"

	"github.com/netadm-tools/go-ise/internal/api"
)

// searchPage issues one GET against an ERS collection and returns the
// SearchResult payload.
func searchPage(ctx context.Context, t *api.Transport, apiPath string, query url.Values, headers http.Header) (*searchResult, error) {
	var env searchResultEnvelope
	resp, err := t.DoJSON(ctx, &api.Request{
		Method:  http.MethodGet,
		Path:    apiPath,
		Query:   query,
		Headers: headers,
	}, &env)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseError(resp.StatusCode, resp.Body)
	}

	return &env.SearchResult, nil
}

// resolveID maps a human-readable key (name or MAC) to the ERS object id
// by filtering the collection. ERS addresses everything by id, so by-name
// operations are a two-step resolve-then-act composition.
// A match count other than one yields a NotFoundError.
func resolveID(ctx context.Context, t *api.Transport, apiPath, filter, resourceType, key string, headers http.Header) (string, error) {
	query := url.Values{}
	query.Set("filter", filter)

	sr, err := searchPage(ctx, t, apiPath, query, headers)
	if err != nil {
		return "", err
	}

	if sr.Total != 1 || len(sr.Resources) != 1 {
		return "", &NotFoundError{
			APIError:     APIError{StatusCode: http.StatusNotFound, Message: resourceType + " not found"},
			ResourceType: resourceType,
			ResourceID:   key,
		}
	}

	return sr.Resources[0].ID, nil
}

// deleteByID issues a DELETE for a resolved object id, expecting 204.
func deleteByID(ctx context.Context, t *api.Transport, apiPath, id, resourceType, key string, headers http.Header) error {
	resp, err := t.Do(ctx, &api.Request{
		Method:  http.MethodDelete,
		Path:    apiPath + "/" + url.PathEscape(id),
		Headers: headers,
	})

	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{
			APIError:     APIError{StatusCode: http.StatusNotFound, Message: resourceType + " not found"},
			ResourceType: resourceType,
			ResourceID:   key,
		}
	}

	if resp.StatusCode != http.StatusNoContent {
		return parseError(resp.StatusCode, resp.Body)
	}

	return nil
}

// idFromLocation extracts the object id ERS reports in the Location
// header of a 201 response. A 201 without a usable Location header is
// reported as an error rather than an empty id.
func idFromLocation(headers http.Header) (string, error) {
	loc := headers.Get("Location")
	if loc == "" {
		return "", &APIError{
			StatusCode: http.StatusCreated,
			Message:    "created response carries no Location header",
		}
	}
	u, err := url.Parse(loc)
	if err != nil {
		return "", &APIError{
			StatusCode: http.StatusCreated,
			Message:    "created response has a malformed Location header: " + loc,
		}
	}
	return path.Base(u.Path), nil
}

// validateName checks that a lookup key is not empty.
func validateName(resourceType, name string) error {
	if name == "" {
		return &ValidationError{
			APIError: APIError{Message: resourceType + " name cannot be empty"},
		}
	}
	return nil
}

// validateID checks that an object id is not empty.
func validateID(resourceType, id string) error {
	if id == "" {
		return &ValidationError{
			APIError: APIError{Message: resourceType + " id cannot be empty"},
		}
	}
	return nil
}
