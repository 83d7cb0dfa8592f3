// Package session persists the browser's authentication state server-side.
//
// A browser holds only an opaque session id cookie. The bearer token and the
// optional admin profile live in a Store under two fixed keys, so a session
// survives reloads and process restarts when the store is durable. Whether a
// request is logged in is derived from token presence each time it is read.
package session
