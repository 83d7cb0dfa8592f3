// Package sqlite provides the default session store, backed by SQLite.
package sqlite
