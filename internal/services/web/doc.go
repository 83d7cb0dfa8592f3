// Package web hosts the browser-facing visadesk service.
//
// It wires the REST gateway, the session store and the feature modules into
// one HTTP server, and adds the process-level routes: health, metrics and
// embedded static assets.
package web
