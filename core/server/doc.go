// Package server holds the HTTP server configuration.
//
// The serve command reads the listen port, the API key protecting the
// analysis endpoints and the upload size limit from this package's Config.
package server
