package ise

import (
	"regexp"
	"strings"
)

// Link is an ERS hyperlink, used both for resource self-links and for
// pagination continuation markers.
type Link struct {
	Rel  string `json:"rel,omitempty"`
	Href string `json:"href,omitempty"`
	Type string `json:"type,omitempty"`
}

// Resource is a summary entry from an ERS collection listing.
// Detail fields require a follow-up Get on the resource id.
type Resource struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Link        *Link  `json:"link,omitempty"`
}

// searchResult is the ERS collection listing payload. The nextPage link
// is only present when a further page exists; total is reported by the
// server and may be absent on intermediate pages.
type searchResult struct {
	Total        int        `json:"total"`
	Resources    []Resource `json:"resources"`
	NextPage     *Link      `json:"nextPage,omitempty"`
	PreviousPage *Link      `json:"previousPage,omitempty"`
}

// searchResultEnvelope wraps searchResult the way ERS returns it.
type searchResultEnvelope struct {
	SearchResult searchResult `json:"SearchResult"`
}

// EndpointPage is one page of a paginated endpoint-group listing.
type EndpointPage struct {
	// Items holds the endpoints on this page, in server order.
	Items []Resource

	// Page is the 1-based page number this page was fetched with.
	Page int

	// Total is the item count reported by the server. ISE omits it on
	// intermediate pages, so treat a zero value as "not reported".
	Total int

	// HasNext reports whether the server advertised a further page.
	HasNext bool
}

// HasMore returns true if there are more pages available.
func (p *EndpointPage) HasMore() bool {
	return p.HasNext
}

// NextPage returns the page number for the next page.
func (p *EndpointPage) NextPage() int {
	return p.Page + 1
}

// EndpointGroup is an endpoint identity group.
type EndpointGroup struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	SystemDefined bool   `json:"systemDefined,omitempty"`
}

// IdentityGroup is a user identity group.
type IdentityGroup struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Parent      string `json:"parent,omitempty"`
}

// CustomAttributes holds customer-defined endpoint attributes.
type CustomAttributes struct {
	CustomAttributes map[string]string `json:"customAttributes"`
}

// Endpoint is a network-connected device record, identified primarily
// by MAC address.
type Endpoint struct {
	ID                      string            `json:"id"`
	Name                    string            `json:"name"`
	Description             string            `json:"description,omitempty"`
	MAC                     string            `json:"mac"`
	ProfileID               string            `json:"profileId,omitempty"`
	StaticProfileAssignment bool              `json:"staticProfileAssignment"`
	GroupID                 string            `json:"groupId,omitempty"`
	StaticGroupAssignment   bool              `json:"staticGroupAssignment"`
	CustomAttributes        *CustomAttributes `json:"customAttributes,omitempty"`
}

// InternalUser is a user in the ISE local identity store.
type InternalUser struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Enabled        bool   `json:"enabled,omitempty"`
	Email          string `json:"email,omitempty"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	IdentityGroups string `json:"identityGroups,omitempty"`
}

// AuthenticationSettings holds network device RADIUS settings.
type AuthenticationSettings struct {
	NetworkProtocol    string `json:"networkProtocol,omitempty"`
	RADIUSSharedSecret string `json:"radiusSharedSecret,omitempty"`
	EnableKeyWrap      bool   `json:"enableKeyWrap"`
}

// SNMPSettings holds network device SNMP polling settings.
type SNMPSettings struct {
	Version                       string `json:"version,omitempty"`
	ROCommunity                   string `json:"roCommunity,omitempty"`
	PollingInterval               int    `json:"pollingInterval,omitempty"`
	LinkTrapQuery                 bool   `json:"linkTrapQuery"`
	MACTrapQuery                  bool   `json:"macTrapQuery"`
	OriginatingPolicyServicesNode string `json:"originatingPolicyServicesNode,omitempty"`
}

// DeviceIP is a network device address entry.
type DeviceIP struct {
	IPAddress string `json:"ipaddress"`
	Mask      int    `json:"mask"`
}

// NetworkDevice is a RADIUS/TACACS network access device.
type NetworkDevice struct {
	ID                     string                  `json:"id"`
	Name                   string                  `json:"name"`
	Description            string                  `json:"description,omitempty"`
	ProfileName            string                  `json:"profileName,omitempty"`
	CoAPort                int                     `json:"coaPort,omitempty"`
	AuthenticationSettings *AuthenticationSettings `json:"authenticationSettings,omitempty"`
	SNMPSettings           *SNMPSettings           `json:"snmpsettings,omitempty"`
	IPList                 []DeviceIP              `json:"NetworkDeviceIPList,omitempty"`
	GroupList              []string                `json:"NetworkDeviceGroupList,omitempty"`
}

// NetworkDeviceGroup is a network device group. Name carries the full
// hierarchy path, e.g. "Location#All Locations#Branch".
type NetworkDeviceGroup struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	OtherName   string `json:"othername,omitempty"`
}

// CreateEndpointRequest contains data for registering a new endpoint.
type CreateEndpointRequest struct {
	Name                    string
	Description             string
	MAC                     string
	GroupID                 string
	ProfileID               string
	StaticProfileAssignment bool
	StaticGroupAssignment   bool
	CustomAttributes        map[string]string
}

// CreateInternalUserRequest contains data for adding a local user.
type CreateInternalUserRequest struct {
	Name           string
	Password       string
	IdentityGroups string
	EnablePassword string
	FirstName      string
	LastName       string
	Email          string
	Description    string
}

// CreateNetworkDeviceRequest contains data for adding a network device.
type CreateNetworkDeviceRequest struct {
	Name               string
	Description        string
	IPAddress          string
	RADIUSSharedSecret string
	SNMPROCommunity    string
	DeviceGroup        string
	Location           string
	DeviceType         string
	Profile            string
}

// CreateGroupRequest contains data for creating an identity, endpoint
// or device group.
type CreateGroupRequest struct {
	Name        string
	Description string
	Parent      string
}

// macPattern matches a colon-separated MAC address, AA:BB:CC:00:11:22.
var macPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}$`)

// ValidMAC reports whether mac is a colon-separated MAC address in the
// form AA:BB:CC:00:11:22.
func ValidMAC(mac string) bool {
	return macPattern.MatchString(mac)
}

// normalizeMAC upper-cases a MAC address the way ISE stores them.
func normalizeMAC(mac string) string {
	return strings.ToUpper(mac)
}
