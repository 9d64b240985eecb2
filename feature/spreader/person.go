package spreader

// Person is one roster entry.
type Person struct {
	Name        string
	ID          uint64
	Age         float64
	Probability float64
}

// Tier is the medical action derived from a final probability.
type Tier string

const (
	TierHospitalization Tier = "hospitalization"
	TierQuarantine      Tier = "quarantine"
	TierClear           Tier = "clear"
)

// Exposure is the classified outcome for one person.
type Exposure struct {
	Name        string  `json:"name"`
	ID          uint64  `json:"id"`
	Age         float64 `json:"age"`
	Probability float64 `json:"probability"`
	Tier        Tier    `json:"tier"`
	// AtRisk marks people at or above the configured risk age. It does not affect the tier.
	AtRisk bool `json:"at_risk"`
}
