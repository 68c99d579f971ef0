// Package client contains client-side building blocks for the mapmark CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the mapmark backend: Register/Login, Refresh, Revoke,
//     UpdateProfile and Upload.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) with a fixed
//     per-request timeout that maps response status codes to sentinel
//     errors.
//  3. A local persistence bootstrap (InitDatabase, RunMigrations) for the
//     CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrSessionExpired,
// ErrAlreadyExists, ErrNotFound.
package client
