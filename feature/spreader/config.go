package spreader

import "fmt"

// Config holds the model constants and report templates for an analysis.
type Config struct {
	// OutputFile is the path the report is written to.
	OutputFile string `mapstructure:"output_file" default:"SpreaderDetectorAnalysis.out"`
	// MinDistance is the minimal distance two people can be in.
	MinDistance float64 `mapstructure:"min_distance" default:"1.0"`
	// MaxTime is the length of the recording, also the longest possible meeting.
	MaxTime float64 `mapstructure:"max_time" default:"30.0"`
	// HospitalizationThreshold is the lowest probability that requires hospitalization.
	HospitalizationThreshold float64 `mapstructure:"hospitalization_threshold" default:"0.3"`
	// QuarantineThreshold is the lowest probability that requires quarantine.
	QuarantineThreshold float64 `mapstructure:"quarantine_threshold" default:"0.1"`
	// RiskAge is the age from which a person is flagged as at risk.
	RiskAge float64 `mapstructure:"risk_age" default:"65"`
	// HospitalizationMessage is the report template for the hospitalization tier (name, id).
	HospitalizationMessage string `mapstructure:"hospitalization_message" default:"Hospitalization Required: %s %d."`
	// QuarantineMessage is the report template for the quarantine tier (name, id).
	QuarantineMessage string `mapstructure:"quarantine_message" default:"14-days-Quarantine Required: %s %d."`
	// ClearMessage is the report template for people with no serious risk (name, id).
	ClearMessage string `mapstructure:"clear_message" default:"No serious chance for infection: %s %d."`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		OutputFile:               "SpreaderDetectorAnalysis.out",
		MinDistance:              1.0,
		MaxTime:                  30.0,
		HospitalizationThreshold: 0.3,
		QuarantineThreshold:      0.1,
		RiskAge:                  65,
		HospitalizationMessage:   "Hospitalization Required: %s %d.",
		QuarantineMessage:        "14-days-Quarantine Required: %s %d.",
		ClearMessage:             "No serious chance for infection: %s %d.",
	}
}

// Message returns the report template for tier.
func (c Config) Message(tier Tier) string {
	switch tier {
	case TierHospitalization:
		return c.HospitalizationMessage
	case TierQuarantine:
		return c.QuarantineMessage
	default:
		return c.ClearMessage
	}
}

// Validate rejects constants that would make every factor or tier meaningless.
func (c Config) Validate() error {
	switch {
	case c.MinDistance <= 0:
		return fmt.Errorf("min_distance must be positive, got %g", c.MinDistance)
	case c.MaxTime <= 0:
		return fmt.Errorf("max_time must be positive, got %g", c.MaxTime)
	case c.QuarantineThreshold > c.HospitalizationThreshold:
		return fmt.Errorf("quarantine_threshold %g exceeds hospitalization_threshold %g", c.QuarantineThreshold, c.HospitalizationThreshold)
	}
	return nil
}
