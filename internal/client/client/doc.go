// Package client contains the IIS API client.
//
// # Overview
//
// The package provides:
//  1. The Client contract used by the CLI and services: Login/Logout,
//     IsAuthenticated, GetPersonalInfo/GetMarkbook/GetGroupInfo and the
//     SetTokens/AccessToken/RefreshToken save-restore seam.
//  2. APIClient, the implementation. It owns the token vault, builds requests
//     against a configured base URL, hands them to a transport.Transport and
//     turns the outcome into a result.Result.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # States
//
// An APIClient is Unauthenticated until Login or SetTokens succeeds, and goes
// back to Unauthenticated on Logout, when the vault reports the session as
// expired, or when the upstream answers a data call with 401. Data calls made
// while Unauthenticated fail with a local 401 and send nothing.
//
// # Error Handling
//
// No public operation returns a bare error or panics; everything resolves to
// a result.Result whose APIError can be matched with errors.Is against
// result.ErrTransport, result.ErrUnauthenticated, result.ErrUpstream and
// result.ErrDecode.
//
// Concurrency & Contexts
//
// APIClient is safe for concurrent use. It does not serialise calls: the
// Async variants complete in transport order, so callers that depend on
// ordering must wait for one result before issuing the next call.
package client
