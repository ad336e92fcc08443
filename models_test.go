package ise_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ise "github.com/netadm-tools/go-ise"
)

func TestValidMAC(t *testing.T) {
	tests := []struct {
		mac   string
		valid bool
	}{
		{"AA:BB:CC:00:11:22", true},
		{"aa:bb:cc:00:11:22", true},
		{"Aa:bB:CC:00:11:22", true},
		{"AA:BB:CC:00:11", false},
		{"AA:BB:CC:00:11:22:33", false},
		{"AA-BB-CC-00-11-22", false},
		{"AABBCC001122", false},
		{"GG:BB:CC:00:11:22", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ise.ValidMAC(tt.mac), "mac %q", tt.mac)
	}
}

func TestEndpointPage(t *testing.T) {
	t.Run("HasMore true on intermediate page", func(t *testing.T) {
		page := &ise.EndpointPage{
			Items:   make([]ise.Resource, 100),
			Page:    3,
			HasNext: true,
		}
		assert.True(t, page.HasMore())
		assert.Equal(t, 4, page.NextPage())
	})

	t.Run("HasMore false on final page", func(t *testing.T) {
		page := &ise.EndpointPage{
			Items:   make([]ise.Resource, 1),
			Page:    6,
			Total:   501,
			HasNext: false,
		}
		assert.False(t, page.HasMore())
	})

	t.Run("empty page past the end", func(t *testing.T) {
		page := &ise.EndpointPage{
			Items:   nil,
			Page:    9,
			HasNext: false,
		}
		assert.False(t, page.HasMore())
		assert.Empty(t, page.Items)
	})
}

func TestEndpointJSON(t *testing.T) {
	t.Run("unmarshal from ERS detail response", func(t *testing.T) {
		jsonData := `{
			"id": "c0a86b20-49e0-11e7-a919-92ebcb67fe33",
			"name": "AA:BB:CC:00:11:22",
			"description": "lobby printer",
			"mac": "AA:BB:CC:00:11:22",
			"profileId": "profile-1",
			"staticProfileAssignment": false,
			"groupId": "group-1",
			"staticGroupAssignment": true,
			"customAttributes": {"customAttributes": {"owner": "facilities"}}
		}`

		var ep ise.Endpoint
		err := json.Unmarshal([]byte(jsonData), &ep)
		require.NoError(t, err)

		assert.Equal(t, "c0a86b20-49e0-11e7-a919-92ebcb67fe33", ep.ID)
		assert.Equal(t, "AA:BB:CC:00:11:22", ep.MAC)
		assert.Equal(t, "group-1", ep.GroupID)
		assert.True(t, ep.StaticGroupAssignment)
		assert.False(t, ep.StaticProfileAssignment)
		require.NotNil(t, ep.CustomAttributes)
		assert.Equal(t, "facilities", ep.CustomAttributes.CustomAttributes["owner"])
	})
}

func TestResourceJSON(t *testing.T) {
	jsonData := `{
		"id": "abc-123",
		"name": "Printers",
		"description": "all print devices",
		"link": {"rel": "self", "href": "https://ise:9060/ers/config/endpointgroup/abc-123", "type": "application/json"}
	}`

	var r ise.Resource
	err := json.Unmarshal([]byte(jsonData), &r)
	require.NoError(t, err)

	assert.Equal(t, "abc-123", r.ID)
	assert.Equal(t, "Printers", r.Name)
	require.NotNil(t, r.Link)
	assert.Equal(t, "self", r.Link.Rel)
}

func TestNetworkDeviceJSON(t *testing.T) {
	jsonData := `{
		"id": "dev-1",
		"name": "branch-sw-01",
		"profileName": "Cisco",
		"coaPort": 1700,
		"authenticationSettings": {"networkProtocol": "RADIUS", "radiusSharedSecret": "secret", "enableKeyWrap": false},
		"snmpsettings": {"version": "TWO_C", "roCommunity": "public", "pollingInterval": 3600, "linkTrapQuery": true, "macTrapQuery": true},
		"NetworkDeviceIPList": [{"ipaddress": "10.0.0.1", "mask": 32}],
		"NetworkDeviceGroupList": ["Location#All Locations#Branch", "Device Type#All Device Types#Switch"]
	}`

	var dev ise.NetworkDevice
	err := json.Unmarshal([]byte(jsonData), &dev)
	require.NoError(t, err)

	assert.Equal(t, "branch-sw-01", dev.Name)
	assert.Equal(t, 1700, dev.CoAPort)
	require.NotNil(t, dev.AuthenticationSettings)
	assert.Equal(t, "RADIUS", dev.AuthenticationSettings.NetworkProtocol)
	require.Len(t, dev.IPList, 1)
	assert.Equal(t, "10.0.0.1", dev.IPList[0].IPAddress)
	assert.Len(t, dev.GroupList, 2)
}
