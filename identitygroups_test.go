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

func TestIdentityGroupService_List(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/config/identitygroup", r.URL.Path)

		err := json.NewEncoder(w).Encode(searchResultJSON(2, []string{"Employee", "Contractor"}, false))
		assert.NoError(t, err)
	})

	ctx := context.Background()
	groups, err := client.IdentityGroups.List(ctx)
	require.NoError(t, err)

	require.Len(t, groups, 2)
	assert.Equal(t, "Employee", groups[0].Name)
}

func TestIdentityGroupService_GetByName(t *testing.T) {
	groupID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/config/identitygroup":
				assert.Equal(t, "name.EQ.Employee", r.URL.Query().Get("filter"))
				err := json.NewEncoder(w).Encode(map[string]any{
					"SearchResult": map[string]any{
						"total":     1,
						"resources": []map[string]any{{"id": groupID, "name": "Employee"}},
					},
				})
				assert.NoError(t, err)
			case "/config/identitygroup/" + groupID:
				err := json.NewEncoder(w).Encode(map[string]any{
					"IdentityGroup": ise.IdentityGroup{
						ID:     groupID,
						Name:   "Employee",
						Parent: "NAC Group:NAC:IdentityGroups:User Identity Groups",
					},
				})
				assert.NoError(t, err)
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		})

		ctx := context.Background()
		group, err := client.IdentityGroups.GetByName(ctx, "Employee")
		require.NoError(t, err)

		assert.Equal(t, groupID, group.ID)
		assert.Equal(t, "Employee", group.Name)
		assert.NotEmpty(t, group.Parent)
	})

	t.Run("not found", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			err := json.NewEncoder(w).Encode(searchResultJSON(0, nil, false))
			assert.NoError(t, err)
		})

		ctx := context.Background()
		_, err := client.IdentityGroups.GetByName(ctx, "NoSuchGroup")
		require.Error(t, err)

		var notFoundErr *ise.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "identity group", notFoundErr.ResourceType)
	})
}

func TestIdentityGroupService_Get(t *testing.T) {
	t.Run("404 maps to not found", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		ctx := context.Background()
		_, err := client.IdentityGroups.Get(ctx, uuid.NewString())
		require.Error(t, err)

		var notFoundErr *ise.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("empty id returns validation error", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("should not make API call with empty id")
		})

		ctx := context.Background()
		_, err := client.IdentityGroups.Get(ctx, "")
		require.Error(t, err)

		var validationErr *ise.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestIdentityGroupService_Create(t *testing.T) {
	newID := uuid.NewString()
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		err := json.NewDecoder(r.Body).Decode(&body)
		assert.NoError(t, err)

		payload, ok := body["IdentityGroup"].(map[string]any)
		require.True(t, ok, "payload should be wrapped in IdentityGroup")
		assert.Equal(t, "VPN Users", payload["name"])

		w.Header().Set("Location", "https://ise.example.com:9060/ers/config/identitygroup/"+newID)
		w.WriteHeader(http.StatusCreated)
	})

	ctx := context.Background()
	id, err := client.IdentityGroups.Create(ctx, &ise.CreateGroupRequest{Name: "VPN Users"})
	require.NoError(t, err)
	assert.Equal(t, newID, id)
}
