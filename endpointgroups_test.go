package ise_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ise "github.com/netadm-tools/go-ise"
)

func TestEndpointGroupService_List(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/config/endpointgroup", r.URL.Path)

		err := json.NewEncoder(w).Encode(searchResultJSON(3, []string{"Blacklist", "Printers", "Cameras"}, false))
		assert.NoError(t, err)
	})

	ctx := context.Background()
	groups, err := client.EndpointGroups.List(ctx)
	require.NoError(t, err)

	require.Len(t, groups, 3)
	assert.Equal(t, "Blacklist", groups[0].Name)
	assert.Equal(t, "Cameras", groups[2].Name)
}

func TestEndpointGroupService_GetByName(t *testing.T) {
	groupID := uuid.NewString()

	t.Run("resolves name then fetches by id", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/config/endpointgroup":
				assert.Equal(t, "name.EQ.Printers", r.URL.Query().Get("filter"))
				err := json.NewEncoder(w).Encode(map[string]any{
					"SearchResult": map[string]any{
						"total":     1,
						"resources": []map[string]any{{"id": groupID, "name": "Printers"}},
					},
				})
				assert.NoError(t, err)
			case "/config/endpointgroup/" + groupID:
				err := json.NewEncoder(w).Encode(map[string]any{
					"EndPointGroup": ise.EndpointGroup{
						ID:          groupID,
						Name:        "Printers",
						Description: "all print devices",
					},
				})
				assert.NoError(t, err)
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		})

		ctx := context.Background()
		group, err := client.EndpointGroups.GetByName(ctx, "Printers")
		require.NoError(t, err)

		assert.Equal(t, groupID, group.ID)
		assert.Equal(t, "Printers", group.Name)
		assert.Equal(t, "all print devices", group.Description)
	})

	t.Run("not found", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			err := json.NewEncoder(w).Encode(searchResultJSON(0, nil, false))
			assert.NoError(t, err)
		})

		ctx := context.Background()
		_, err := client.EndpointGroups.GetByName(ctx, "NoSuchGroup")
		require.Error(t, err)

		var notFoundErr *ise.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "endpoint group", notFoundErr.ResourceType)
		assert.Equal(t, "NoSuchGroup", notFoundErr.ResourceID)
	})

	t.Run("ambiguous match reported as not found", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			err := json.NewEncoder(w).Encode(searchResultJSON(2, []string{"Printers", "Printers"}, false))
			assert.NoError(t, err)
		})

		ctx := context.Background()
		_, err := client.EndpointGroups.GetByName(ctx, "Printers")
		require.Error(t, err)

		var notFoundErr *ise.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("empty name returns validation error", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("should not make API call with empty name")
		})

		ctx := context.Background()
		_, err := client.EndpointGroups.GetByName(ctx, "")
		require.Error(t, err)

		var validationErr *ise.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestEndpointGroupService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		newID := uuid.NewString()
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/config/endpointgroup", r.URL.Path)

			var body map[string]any
			err := json.NewDecoder(r.Body).Decode(&body)
			assert.NoError(t, err)

			payload, ok := body["EndPointGroup"].(map[string]any)
			require.True(t, ok, "payload should be wrapped in EndPointGroup")
			assert.Equal(t, "IoT Sensors", payload["name"])

			w.Header().Set("Location", "https://ise.example.com:9060/ers/config/endpointgroup/"+newID)
			w.WriteHeader(http.StatusCreated)
		})

		ctx := context.Background()
		id, err := client.EndpointGroups.Create(ctx, &ise.CreateGroupRequest{
			Name:        "IoT Sensors",
			Description: "building sensors",
		})
		require.NoError(t, err)
		assert.Equal(t, newID, id)
	})

	t.Run("missing name returns validation error", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("should not make API call with empty name")
		})

		ctx := context.Background()
		_, err := client.EndpointGroups.Create(ctx, &ise.CreateGroupRequest{})
		require.Error(t, err)

		var validationErr *ise.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestEndpointGroupService_Delete(t *testing.T) {
	groupID := uuid.NewString()

	t.Run("resolves name then deletes by id", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				err := json.NewEncoder(w).Encode(map[string]any{
					"SearchResult": map[string]any{
						"total":     1,
						"resources": []map[string]any{{"id": groupID, "name": "Printers"}},
					},
				})
				assert.NoError(t, err)
			case http.MethodDelete:
				assert.Equal(t, "/config/endpointgroup/"+groupID, r.URL.Path)
				w.WriteHeader(http.StatusNoContent)
			}
		})

		ctx := context.Background()
		err := client.EndpointGroups.Delete(ctx, "Printers")
		require.NoError(t, err)
	})

	t.Run("delete of missing group reports not found", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			err := json.NewEncoder(w).Encode(searchResultJSON(0, nil, false))
			assert.NoError(t, err)
		})

		ctx := context.Background()
		err := client.EndpointGroups.Delete(ctx, "Ghost")
		require.Error(t, err)

		var notFoundErr *ise.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
	})
}
