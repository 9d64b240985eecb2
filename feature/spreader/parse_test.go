package spreader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePerson(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		p, err := ParsePerson("Alice 12 30.5")
		require.NoError(t, err)
		assert.Equal(t, Person{Name: "Alice", ID: 12, Age: 30.5}, p)
	})

	t.Run("TrailingNewline", func(t *testing.T) {
		p, err := ParsePerson("Bob 2 40\r\n")
		require.NoError(t, err)
		assert.Equal(t, "Bob", p.Name)
		assert.Equal(t, 40.0, p.Age)
	})

	invalid := []struct {
		name string
		line string
	}{
		{"MissingAge", "Alice 1"},
		{"ExtraField", "Alice 1 30 extra"},
		{"NegativeID", "Alice -1 30"},
		{"TextID", "Alice one 30"},
		{"TextAge", "Alice 1 thirty"},
		{"NaNAge", "Alice 1 NaN"},
		{"InfiniteAge", "Alice 1 Inf"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePerson(tt.line)
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestParseMeeting(t *testing.T) {
	m, err := ParseMeeting("1 2 1.5 20")
	require.NoError(t, err)
	assert.Equal(t, Meeting{InfectorID: 1, InfectedID: 2, Distance: 1.5, Duration: 20}, m)

	for _, line := range []string{"1 2 1.5", "1 x 1.5 20", "1 2 far 20", "1 2 1.5 long", "1 2 1 2 3", "1 2 +Inf 20", "1 2 1.5 NaN"} {
		_, err := ParseMeeting(line)
		assert.ErrorIs(t, err, ErrMalformedRecord, line)
	}
}

func TestParseOrigin(t *testing.T) {
	id, err := ParseOrigin("42\n")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	_, err = ParseOrigin("42 43")
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestReadPeople(t *testing.T) {
	t.Run("KeepsFileOrder", func(t *testing.T) {
		s, err := ReadPeople(strings.NewReader("Carol 3 70\nAlice 1 30\n\nBob 2 40"))
		require.NoError(t, err)
		assert.Equal(t, []uint64{3, 1, 2}, ids(s))
		assert.Equal(t, Unordered, s.Order())
		for _, p := range s.All() {
			assert.Zero(t, p.Probability)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		s, err := ReadPeople(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("MalformedLineIsFatal", func(t *testing.T) {
		_, err := ReadPeople(strings.NewReader("Alice 1 30\nBob two 40\n"))
		assert.ErrorIs(t, err, ErrMalformedRecord)
		assert.Contains(t, err.Error(), "people line 2")
	})

	t.Run("OverlongLineIsMalformed", func(t *testing.T) {
		long := "Alice 1 30\n" + strings.Repeat("x", 70*1024) + " 2 40\n"
		_, err := ReadPeople(strings.NewReader(long))
		assert.ErrorIs(t, err, ErrMalformedRecord)
		assert.NotErrorIs(t, err, ErrInputFile)
		assert.Contains(t, err.Error(), "line 2")
	})
}
