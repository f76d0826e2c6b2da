// Package http implements the REST transport of the save-keeper server.
//
// It wires the chi router, the request handlers for accounts, sealed saves,
// progression, the leaderboard and the version endpoint, and the middleware
// chain that runs before them: panic recovery, trace IDs, access logging,
// response compression and bearer-token authentication.
package http
