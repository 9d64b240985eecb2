// Package models defines the database rows used to record spreader analyses.
package models
