// Package gateway is the typed client for the consultancy REST backend.
//
// Every call reads the caller's bearer token from a TokenSource at request
// time and classifies failures into validation, response, transport and
// malformed-success errors so page handlers can turn them into inline
// messages without inspecting transport details.
package gateway
