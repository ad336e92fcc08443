// Package ise provides a native Go client for the Cisco Identity Services
// Engine ERS (External RESTful Services) REST API.
//
// # Features
//
//   - Service-based architecture covering endpoints, identity groups,
//     endpoint groups, internal users, network devices and device groups
//   - Modern Go 1.25+ iterators for paginated group listings
//   - Typed errors for precise error handling
//   - Functional options for flexible configuration
//   - No runtime dependencies (test dependencies only)
//
// The ERS API must be enabled on the ISE deployment, and the account used
// needs the ERS-Admin or ERS-Operator role. The client does not verify
// this; a missing role surfaces as an AuthenticationError on first use.
//
// # Quick Start
//
//	client, err := ise.NewClient(
//	    ise.WithHost("ise.example.com"),
//	    ise.WithBasicAuth("ers-admin", "password"),
//	    ise.WithInsecureSkipVerify(), // ISE often runs self-signed
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Resolve a group by name, then stream its endpoints
//	group, err := client.EndpointGroups.GetByName(ctx, "Printers")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for ep, err := range client.Endpoints.ListInGroup(ctx, group.ID) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(ep.Name)
//	}
//
// # Error Handling
//
// The package uses typed errors that can be inspected with errors.As:
//
//	ep, err := client.Endpoints.GetByMAC(ctx, "AA:BB:CC:00:11:22")
//	if err != nil {
//	    var notFound *ise.NotFoundError
//	    if errors.As(err, &notFound) {
//	        // Handle not found
//	    }
//	}
//
// Every failure mode, including transport errors, unexpected status
// codes, failed name-to-id resolution and malformed response bodies,
// is reported through the returned error; public operations never panic.
//
// # Pagination
//
// Endpoint groups can exceed tens of thousands of entries. The iterator
// fetches pages of 100 lazily so callers can process results as they
// stream in:
//
//	for ep, err := range client.Endpoints.ListInGroup(ctx, groupID) {
//	    // ...
//	}
//
//	// Collect all results into a slice
//	eps, err := ise.Collect(client.Endpoints.ListInGroup(ctx, groupID))
//
// Manual paging is available when the caller wants to drive the loop,
// for example to interleave per-page processing. Page numbers start at
// 1 and are the entire pagination state; any page can be re-requested:
//
//	page := 1
//	for {
//	    res, err := client.Endpoints.ListInGroupPage(ctx, groupID, page)
//	    if err != nil {
//	        return err
//	    }
//	    write(res.Items)
//	    if !res.HasMore() {
//	        break
//	    }
//	    page = res.NextPage()
//	}
package ise
