package models

import "time"

// Run is one recorded analysis.
type Run struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	OriginID  *uint64   `gorm:"column:origin_id"`
	Meetings  int       `gorm:"column:meetings"`
	People    int       `gorm:"column:people"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name for runs.
func (Run) TableName() string {
	return "spreader_runs"
}

// Exposure is one classified person of a run. Position 0 is the highest probability.
type Exposure struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement"`
	RunID       string  `gorm:"column:run_id;size:36;index"`
	Position    int     `gorm:"column:position"`
	PersonID    uint64  `gorm:"column:person_id"`
	Name        string  `gorm:"column:name"`
	Age         float64 `gorm:"column:age"`
	Probability float64 `gorm:"column:probability"`
	Tier        string  `gorm:"column:tier;size:32"`
	AtRisk      bool    `gorm:"column:at_risk"`
}

// TableName overrides the table name for exposures.
func (Exposure) TableName() string {
	return "spreader_exposures"
}
