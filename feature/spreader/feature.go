package spreader

import (
	"spreader-detector/core/loader"
	"spreader-detector/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature exposes the analysis API through the feature loader.
type Feature struct {
	service *Service
}

// NewFeature creates the spreader feature.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cfg Config) loader.Feature {
	return &Feature{service: NewService(client, bucket, logger, db, cfg)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "spreader"
}

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the analysis routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
