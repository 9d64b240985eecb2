package spreader

import (
	"context"
	"errors"
	"fmt"

	"spreader-detector/feature/spreader/models"

	"gorm.io/gorm"
)

// ErrDatabaseUnavailable is returned when recording without a database connection.
var ErrDatabaseUnavailable = errors.New("database is not connected")

// ErrRunNotFound is returned when a run id is not recorded.
var ErrRunNotFound = errors.New("run not found")

// Repository records analyses in the database.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the run tables.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&models.Run{}, &models.Exposure{})
}

// SaveRun stores an analysis and its exposures in one transaction.
func (r *Repository) SaveRun(ctx context.Context, a *Analysis) error {
	run := models.Run{
		ID:        a.RunID,
		Meetings:  a.Stats.Meetings,
		People:    len(a.Exposures),
		CreatedAt: a.CreatedAt,
	}
	if a.Stats.HasOrigin {
		origin := a.Stats.OriginID
		run.OriginID = &origin
	}

	rows := make([]models.Exposure, 0, len(a.Exposures))
	for i, e := range a.Exposures {
		rows = append(rows, models.Exposure{
			RunID:       a.RunID,
			Position:    i,
			PersonID:    e.ID,
			Name:        e.Name,
			Age:         e.Age,
			Probability: e.Probability,
			Tier:        string(e.Tier),
			AtRisk:      e.AtRisk,
		})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&run).Error; err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to save exposures: %w", err)
		}
		return nil
	})
}

// FindRun loads a recorded analysis.
func (r *Repository) FindRun(ctx context.Context, id string) (*Analysis, error) {
	db := r.db.WithContext(ctx)

	var run models.Run
	if err := db.Where("id = ?", id).First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}

	var rows []models.Exposure
	if err := db.Where("run_id = ?", id).Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load exposures: %w", err)
	}

	a := &Analysis{
		RunID:     run.ID,
		CreatedAt: run.CreatedAt,
		Stats:     Stats{Meetings: run.Meetings},
		Exposures: make([]Exposure, 0, len(rows)),
	}
	if run.OriginID != nil {
		a.Stats.OriginID = *run.OriginID
		a.Stats.HasOrigin = true
	}
	for _, row := range rows {
		a.Exposures = append(a.Exposures, Exposure{
			Name:        row.Name,
			ID:          row.PersonID,
			Age:         row.Age,
			Probability: row.Probability,
			Tier:        Tier(row.Tier),
			AtRisk:      row.AtRisk,
		})
	}
	return a, nil
}

// Record stores an analysis when a database is connected.
func (s *Service) Record(ctx context.Context, a *Analysis) error {
	if s.repo == nil {
		return ErrDatabaseUnavailable
	}
	return s.repo.SaveRun(ctx, a)
}

// Lookup loads a recorded analysis.
func (s *Service) Lookup(ctx context.Context, runID string) (*Analysis, error) {
	if s.repo == nil {
		return nil, ErrDatabaseUnavailable
	}
	return s.repo.FindRun(ctx, runID)
}

// Migrate prepares the database tables when a database is connected.
func (s *Service) Migrate(ctx context.Context) error {
	if s.repo == nil {
		return ErrDatabaseUnavailable
	}
	return s.repo.Migrate(ctx)
}
