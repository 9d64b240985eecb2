package spreader

// Classify maps a probability to its tier. Each threshold is inclusive and
// a value within Epsilon below a threshold still meets it.
func Classify(probability float64, cfg Config) Tier {
	switch {
	case meets(probability, cfg.HospitalizationThreshold):
		return TierHospitalization
	case meets(probability, cfg.QuarantineThreshold):
		return TierQuarantine
	default:
		return TierClear
	}
}

func meets(value, threshold float64) bool {
	return value >= threshold || almostEqual(value, threshold)
}

// Exposures classifies a store sorted by probability, highest first.
func Exposures(store *Store, cfg Config) []Exposure {
	people := store.All()
	out := make([]Exposure, 0, len(people))
	for i := len(people) - 1; i >= 0; i-- {
		p := people[i]
		out = append(out, Exposure{
			Name:        p.Name,
			ID:          p.ID,
			Age:         p.Age,
			Probability: p.Probability,
			Tier:        Classify(p.Probability, cfg),
			AtRisk:      p.Age >= cfg.RiskAge,
		})
	}
	return out
}
