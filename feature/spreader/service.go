package spreader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"spreader-detector/core/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Analysis is the result of one pipeline run, highest probability first.
type Analysis struct {
	RunID     string     `json:"run_id"`
	CreatedAt time.Time  `json:"created_at"`
	Stats     Stats      `json:"stats"`
	Exposures []Exposure `json:"exposures"`
}

// Service runs the detection pipeline and optionally records or publishes results.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	repo   *Repository
	cfg    Config
}

// NewService creates a new spreader service. client and db may be nil, in
// which case publishing and persistence are unavailable.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cfg Config) *Service {
	var repo *Repository
	if db != nil {
		repo = NewRepository(db)
	}
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		repo:   repo,
		cfg:    cfg,
	}
}

// Config returns the analysis configuration in use.
func (s *Service) Config() Config {
	return s.cfg
}

// Analyze ingests the roster, propagates the meetings and classifies everyone.
func (s *Service) Analyze(people, meetings io.Reader) (*Analysis, error) {
	store, err := ReadPeople(people)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Roster ingested", zap.Int("people", store.Len()))

	store.SortBy(ByIdentifier)
	if id, dup := store.Duplicate(); dup {
		return nil, fmt.Errorf("%w: id %d appears more than once in the roster", ErrDuplicateIdentifier, id)
	}

	stats, err := Propagate(meetings, store, s.cfg)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Meetings propagated",
		zap.Bool("has_origin", stats.HasOrigin),
		zap.Uint64("origin_id", stats.OriginID),
		zap.Int("meetings", stats.Meetings),
	)

	store.SortBy(ByProbability)

	return &Analysis{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now(),
		Stats:     stats,
		Exposures: Exposures(store, s.cfg),
	}, nil
}

// AnalyzeFiles runs Analyze over two input files and writes the report to
// outputPath.
func (s *Service) AnalyzeFiles(peoplePath, meetingsPath, outputPath string) (*Analysis, error) {
	analysis, err := s.AnalyzePaths(peoplePath, meetingsPath)
	if err != nil {
		return nil, err
	}
	if err := s.WriteReportFile(outputPath, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// AnalyzePaths runs Analyze over two input files without writing a report.
func (s *Service) AnalyzePaths(peoplePath, meetingsPath string) (*Analysis, error) {
	peopleFile, err := os.Open(peoplePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputFile, err)
	}
	defer peopleFile.Close()

	meetingsFile, err := os.Open(meetingsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputFile, err)
	}
	defer meetingsFile.Close()

	return s.Analyze(peopleFile, meetingsFile)
}

// WriteReportFile writes the report of analysis to path. The report goes to a
// temporary file first so a failed write never leaves a partial report behind.
func (s *Service) WriteReportFile(path string, analysis *Analysis) error {
	if err := s.writeReportFile(path, analysis); err != nil {
		return err
	}
	s.logger.Info("Report written", zap.String("file", path), zap.Int("people", len(analysis.Exposures)))
	return nil
}

func (s *Service) writeReportFile(path string, analysis *Analysis) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".spreader-*.out")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputFile, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = WriteReport(tmp, analysis.Exposures, s.cfg); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputFile, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputFile, err)
	}
	return nil
}
