package spreader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Meeting is one line of the meetings stream. It is consumed and discarded.
type Meeting struct {
	InfectorID uint64
	InfectedID uint64
	Distance   float64
	Duration   float64
}

// ParsePerson builds a person from a "<name> <id> <age>" line.
func ParsePerson(line string) (Person, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Person{}, fmt.Errorf("%w: expected name, id and age, got %d fields", ErrMalformedRecord, len(fields))
	}

	id, err := parseID(fields[1])
	if err != nil {
		return Person{}, err
	}
	age, err := parseFloat("age", fields[2])
	if err != nil {
		return Person{}, err
	}

	return Person{Name: fields[0], ID: id, Age: age}, nil
}

// ParseMeeting builds a meeting from a "<infector> <infected> <distance> <duration>" line.
func ParseMeeting(line string) (Meeting, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Meeting{}, fmt.Errorf("%w: expected infector, infected, distance and duration, got %d fields", ErrMalformedRecord, len(fields))
	}

	infector, err := parseID(fields[0])
	if err != nil {
		return Meeting{}, err
	}
	infected, err := parseID(fields[1])
	if err != nil {
		return Meeting{}, err
	}
	distance, err := parseFloat("distance", fields[2])
	if err != nil {
		return Meeting{}, err
	}
	duration, err := parseFloat("duration", fields[3])
	if err != nil {
		return Meeting{}, err
	}

	return Meeting{InfectorID: infector, InfectedID: infected, Distance: distance, Duration: duration}, nil
}

// ParseOrigin reads the origin id from the first line of the meetings stream.
func ParseOrigin(line string) (uint64, error) {
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return 0, fmt.Errorf("%w: expected a single origin id, got %d fields", ErrMalformedRecord, len(fields))
	}
	return parseID(fields[0])
}

// ReadPeople ingests one person per non-blank line until EOF.
func ReadPeople(r io.Reader) (*Store, error) {
	store := NewStore()
	err := scanLines(r, func(n int, line string) error {
		p, err := ParsePerson(line)
		if err != nil {
			return fmt.Errorf("people line %d: %w", n, err)
		}
		store.Append(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// scanLines calls fn for every non-blank line with its 1-based line number.
func scanLines(r io.Reader, fn func(n int, line string) error) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("line %d: %w: line exceeds %d bytes", n+1, ErrMalformedRecord, bufio.MaxScanTokenSize)
		}
		return fmt.Errorf("%w: %v", ErrInputFile, err)
	}
	return nil
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", ErrMalformedRecord, s)
	}
	return id, nil
}

func parseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrMalformedRecord, field, s)
	}
	return v, nil
}
