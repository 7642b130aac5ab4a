// Package client is the resource layer of the car-storage client.
//
// # Overview
//
// The package provides:
//  1. The Client interface: typed calls for the four resource families
//     (auth, users, cars, tasks) plus the generic Do request wrapper.
//  2. HTTPClient, a net/http implementation that attaches the session token
//     as a bearer credential, tags every request with an X-Request-ID and
//     maps failures onto the error kinds below.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     SQLite database that holds the session token slot.
//
// # Error Handling
//
// Non-2xx responses become *HTTPError carrying the server's message, or a
// generic fallback when the body has none. Requests that never complete
// become *TransportError. Rejected logins and registrations are wrapped in
// *AuthError. errors.Is(err, ErrUnauthorized) holds for 401 and 403.
//
// Calls are fire-once: there are no retries and no client-side timeout.
// Cancellation comes only from the caller's context.
package client
