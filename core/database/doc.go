// Package database manages the optional MySQL connection used to record
// analysis runs.
//
// Connect opens the connection through GORM with its own logging silenced
// and verifies it with a ping bounded by the configured timeout.
package database
