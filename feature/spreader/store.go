package spreader

import (
	"cmp"

	"spreader-detector/core/lookup"
	"spreader-detector/core/ordering"
)

// Epsilon is the tolerance under which two probabilities are considered equal.
const Epsilon = 1e-9

const initialCapacity = 2

// Order identifies how a Store is currently sorted.
type Order int

const (
	// Unordered is the order records were appended in.
	Unordered Order = iota
	// ByIdentifier sorts by ascending id.
	ByIdentifier
	// ByProbability sorts by ascending probability. Probabilities within
	// Epsilon are equal and fall back to descending id, so walking the
	// sequence backwards lists equal probabilities by ascending id.
	ByProbability
)

// String returns the order name used in logs.
func (o Order) String() string {
	switch o {
	case ByIdentifier:
		return "identifier"
	case ByProbability:
		return "probability"
	default:
		return "unordered"
	}
}

// Comparator returns the comparison strategy for o.
func (o Order) Comparator() ordering.Comparator[Person] {
	switch o {
	case ByIdentifier:
		return compareByID
	case ByProbability:
		return compareByProbability
	default:
		return nil
	}
}

func compareByID(a, b Person) int {
	return cmp.Compare(a.ID, b.ID)
}

func compareByProbability(a, b Person) int {
	if almostEqual(a.Probability, b.Probability) {
		return cmp.Compare(b.ID, a.ID)
	}
	if a.Probability < b.Probability {
		return -1
	}
	return 1
}

// Store owns the roster. Records are mutated in place and reordered in place.
type Store struct {
	people []Person
	order  Order
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{people: make([]Person, 0, initialCapacity)}
}

// Append adds p to the end of the store, doubling capacity when full.
func (s *Store) Append(p Person) {
	if len(s.people) == cap(s.people) {
		grown := make([]Person, len(s.people), max(2*cap(s.people), initialCapacity))
		copy(grown, s.people)
		s.people = grown
	}
	s.people = append(s.people, p)
	s.order = Unordered
}

// Len returns the number of people in the store.
func (s *Store) Len() int {
	return len(s.people)
}

// At returns the person at index i for in-place mutation.
func (s *Store) At(i int) *Person {
	return &s.people[i]
}

// All returns the records in their current order. The slice aliases the store.
func (s *Store) All() []Person {
	return s.people
}

// Order reports how the store is currently sorted.
func (s *Store) Order() Order {
	return s.order
}

// SortBy reorders the store in place.
func (s *Store) SortBy(o Order) {
	if c := o.Comparator(); c != nil {
		ordering.Sort(s.people, c)
	}
	s.order = o
}

// IndexOf returns the index of the person with the given id. The store must
// be sorted by identifier.
func (s *Store) IndexOf(id uint64) (int, bool) {
	return lookup.Search(s.people, id, func(p Person) uint64 { return p.ID })
}

// Duplicate reports the first id held by more than one person. The store
// must be sorted by identifier.
func (s *Store) Duplicate() (uint64, bool) {
	for i := 1; i < len(s.people); i++ {
		if s.people[i].ID == s.people[i-1].ID {
			return s.people[i].ID, true
		}
	}
	return 0, false
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < Epsilon && d > -Epsilon
}
