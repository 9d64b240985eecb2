package spreader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedStore(people ...Person) *Store {
	s := newStore(people...)
	s.SortBy(ByIdentifier)
	return s
}

func probabilityOf(t *testing.T, s *Store, id uint64) float64 {
	t.Helper()
	idx, ok := s.IndexOf(id)
	require.True(t, ok, "id %d", id)
	return s.At(idx).Probability
}

func TestTransmissionFactor(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		distance float64
		duration float64
		want     float64
	}{
		{"FullContact", 1, 30, 1},
		{"HalfDuration", 1, 15, 0.5},
		{"DoubleDistance", 2, 15, 0.25},
		{"CloserThanMinimum", 0.5, 30, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TransmissionFactor(tt.distance, tt.duration, cfg)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}

	for _, bad := range [][2]float64{{0, 10}, {1, 0}, {-1, 10}, {1, -5}} {
		_, err := TransmissionFactor(bad[0], bad[1], cfg)
		assert.ErrorIs(t, err, ErrInvalidMeeting)
	}
}

func TestPropagate_Chain(t *testing.T) {
	s := sortedStore(
		Person{Name: "Carol", ID: 3},
		Person{Name: "Alice", ID: 1},
		Person{Name: "Bob", ID: 2},
	)

	stats, err := Propagate(strings.NewReader("1\n1 2 1.0 30.0\n2 3 2.0 15.0\n"), s, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, Stats{OriginID: 1, HasOrigin: true, Meetings: 2}, stats)
	assert.Equal(t, 1.0, probabilityOf(t, s, 1))
	assert.Equal(t, 1.0, probabilityOf(t, s, 2))
	assert.InDelta(t, 0.25, probabilityOf(t, s, 3), 1e-12)
}

func TestPropagate_LastMeetingWins(t *testing.T) {
	s := sortedStore(
		Person{ID: 1}, // A
		Person{ID: 2}, // B
		Person{ID: 3}, // C
	)

	// A infects C fully, then A -> B at 0.5, then C -> B at 0.1.
	meetings := "1\n1 3 1 30\n1 2 1 15\n3 2 1 3\n"
	_, err := Propagate(strings.NewReader(meetings), s, DefaultConfig())
	require.NoError(t, err)

	assert.InDelta(t, 0.1, probabilityOf(t, s, 2), 1e-12)
}

func TestPropagate_OverwriteCanLower(t *testing.T) {
	s := sortedStore(Person{ID: 1}, Person{ID: 2}, Person{ID: 3})

	// B is first reached at 1.0, then overwritten by a meeting with the
	// still-clean C.
	_, err := Propagate(strings.NewReader("1\n1 2 1 30\n3 2 1 30\n"), s, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 0.0, probabilityOf(t, s, 2))
}

func TestPropagate_NoClamp(t *testing.T) {
	s := sortedStore(Person{ID: 1}, Person{ID: 2})

	_, err := Propagate(strings.NewReader("1\n1 2 0.5 30\n"), s, DefaultConfig())
	require.NoError(t, err)

	assert.InDelta(t, 2.0, probabilityOf(t, s, 2), 1e-12)
}

func TestPropagate_EmptyStream(t *testing.T) {
	s := sortedStore(Person{ID: 1}, Person{ID: 2})

	stats, err := Propagate(strings.NewReader(""), s, DefaultConfig())
	require.NoError(t, err)

	assert.False(t, stats.HasOrigin)
	for _, p := range s.All() {
		assert.Zero(t, p.Probability)
	}
}

func TestPropagate_OriginOnly(t *testing.T) {
	s := sortedStore(Person{ID: 1}, Person{ID: 2})

	stats, err := Propagate(strings.NewReader("2\n"), s, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Meetings)
	assert.Equal(t, 1.0, probabilityOf(t, s, 2))
	assert.Equal(t, 0.0, probabilityOf(t, s, 1))
}

func TestPropagate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		meetings string
		want     error
	}{
		{"UnknownOrigin", "9\n", ErrUnknownIdentifier},
		{"UnknownInfector", "1\n9 2 1 10\n", ErrUnknownIdentifier},
		{"UnknownInfected", "1\n1 9 1 10\n", ErrUnknownIdentifier},
		{"ZeroDistance", "1\n1 2 0 10\n", ErrInvalidMeeting},
		{"ZeroDuration", "1\n1 2 1 0\n", ErrInvalidMeeting},
		{"MalformedOrigin", "1 2\n", ErrMalformedRecord},
		{"MalformedMeeting", "1\n1 2 1\n", ErrMalformedRecord},
		{"InfiniteDistance", "1\n1 2 +Inf 10\n", ErrMalformedRecord},
		{"NaNDuration", "1\n1 2 1 NaN\n", ErrMalformedRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sortedStore(Person{ID: 1}, Person{ID: 2})
			_, err := Propagate(strings.NewReader(tt.meetings), s, DefaultConfig())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPropagate_OverflowIsRejected(t *testing.T) {
	s := sortedStore(Person{ID: 1}, Person{ID: 2}, Person{ID: 3})

	_, err := Propagate(strings.NewReader("1\n1 2 1e-150 1e150\n2 3 1e-150 1e150\n"), s, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidMeeting)
	assert.Contains(t, err.Error(), "meetings line 3")
	assert.Zero(t, probabilityOf(t, s, 3))
}

func TestPropagate_RequiresIdentifierOrder(t *testing.T) {
	s := newStore(Person{ID: 2}, Person{ID: 1})

	_, err := Propagate(strings.NewReader("1\n"), s, DefaultConfig())
	assert.ErrorIs(t, err, ErrNotSortedByIdentifier)

	s.SortBy(ByProbability)
	_, err = Propagate(strings.NewReader("1\n"), s, DefaultConfig())
	assert.ErrorIs(t, err, ErrNotSortedByIdentifier)
}
