// Package storage holds the durable session.Store backends.
//
// Stores only ever hold a browser's token and admin profile; applicant data
// stays with the backend API.
package storage
