package spreader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrStorageUnavailable is returned when publishing without a storage client.
var ErrStorageUnavailable = errors.New("storage client is not configured")

const reportPrefix = "reports/"

// ReportObjectName returns the object key a run's report is published under.
func ReportObjectName(runID string) string {
	return reportPrefix + runID + ".out"
}

// Publish uploads the rendered report to the configured bucket and returns
// its object name. The bucket is created when missing.
func (s *Service) Publish(ctx context.Context, analysis *Analysis) (string, error) {
	if s.client == nil {
		return "", ErrStorageUnavailable
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		s.logger.Info("Creating report bucket", zap.String("bucket", s.bucket))
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, analysis.Exposures, s.cfg); err != nil {
		return "", err
	}

	name := ReportObjectName(analysis.RunID)
	_, err = s.client.PutObject(ctx, s.bucket, name, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/plain",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	s.logger.Info("Report published", zap.String("bucket", s.bucket), zap.String("object", name))
	return name, nil
}

// FetchReport downloads a previously published report.
func (s *Service) FetchReport(ctx context.Context, runID string) ([]byte, error) {
	if s.client == nil {
		return nil, ErrStorageUnavailable
	}

	obj, err := s.client.GetObject(ctx, s.bucket, ReportObjectName(runID), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	return data, nil
}
