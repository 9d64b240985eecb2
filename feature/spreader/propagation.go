package spreader

import (
	"fmt"
	"io"
	"math"
)

// Stats summarises one propagation pass.
type Stats struct {
	// OriginID is the id of the sick person, valid when HasOrigin is set.
	OriginID  uint64 `json:"origin_id"`
	HasOrigin bool   `json:"has_origin"`
	// Meetings is the number of meetings applied.
	Meetings int `json:"meetings"`
}

// TransmissionFactor returns the multiplier a meeting applies to the
// infector's probability.
func TransmissionFactor(distance, duration float64, cfg Config) (float64, error) {
	if distance <= 0 || duration <= 0 {
		return 0, fmt.Errorf("%w: distance %g and duration %g must be positive", ErrInvalidMeeting, distance, duration)
	}
	factor := (duration * cfg.MinDistance) / (distance * cfg.MaxTime)
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return 0, fmt.Errorf("%w: transmission factor is not finite", ErrInvalidMeeting)
	}
	return factor, nil
}

// Propagate walks the meetings stream in order and updates probabilities in
// store, which must be sorted by identifier. The first line names the origin.
// Each meeting overwrites the infected person's probability, so the last
// meeting involving a person wins. Probabilities are not clamped.
func Propagate(r io.Reader, store *Store, cfg Config) (Stats, error) {
	var stats Stats
	if store.Order() != ByIdentifier {
		return stats, ErrNotSortedByIdentifier
	}

	err := scanLines(r, func(n int, line string) error {
		if !stats.HasOrigin {
			id, err := ParseOrigin(line)
			if err != nil {
				return fmt.Errorf("meetings line %d: %w", n, err)
			}
			idx, ok := store.IndexOf(id)
			if !ok {
				return fmt.Errorf("meetings line %d: %w: origin %d", n, ErrUnknownIdentifier, id)
			}
			store.At(idx).Probability = 1.0
			stats.OriginID = id
			stats.HasOrigin = true
			return nil
		}

		m, err := ParseMeeting(line)
		if err != nil {
			return fmt.Errorf("meetings line %d: %w", n, err)
		}
		if err := apply(store, m, cfg); err != nil {
			return fmt.Errorf("meetings line %d: %w", n, err)
		}
		stats.Meetings++
		return nil
	})
	return stats, err
}

func apply(store *Store, m Meeting, cfg Config) error {
	infector, ok := store.IndexOf(m.InfectorID)
	if !ok {
		return fmt.Errorf("%w: infector %d", ErrUnknownIdentifier, m.InfectorID)
	}
	infected, ok := store.IndexOf(m.InfectedID)
	if !ok {
		return fmt.Errorf("%w: infected %d", ErrUnknownIdentifier, m.InfectedID)
	}
	factor, err := TransmissionFactor(m.Distance, m.Duration, cfg)
	if err != nil {
		return err
	}
	p := store.At(infector).Probability * factor
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return fmt.Errorf("%w: probability of %d overflows", ErrInvalidMeeting, m.InfectedID)
	}
	store.At(infected).Probability = p
	return nil
}
