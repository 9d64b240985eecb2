// Package storage provides the object storage client used to publish reports.
//
// It wraps the MinIO client behind a small Client interface so the spreader
// feature can be tested with the mock in storage/mocks. Any S3-compatible
// endpoint works.
package storage
