package spreader

import "errors"

var (
	// ErrUsage is returned when the command line does not name exactly two input files.
	ErrUsage = errors.New("usage: analyze <people file> <meetings file>")
	// ErrInputFile is returned when an input file cannot be opened or read.
	ErrInputFile = errors.New("error in input files")
	// ErrOutputFile is returned when the report cannot be opened, written or closed.
	ErrOutputFile = errors.New("error in output file")
	// ErrMalformedRecord is returned when a line cannot be parsed into a person or meeting.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrUnknownIdentifier is returned when a meeting references an id missing from the roster.
	ErrUnknownIdentifier = errors.New("unknown identifier")
	// ErrDuplicateIdentifier is returned when two people in the roster share an id.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	// ErrInvalidMeeting is returned when a meeting has a non-positive distance or duration
	// or drives a probability out of the finite range.
	ErrInvalidMeeting = errors.New("invalid meeting")
	// ErrNotSortedByIdentifier is returned when propagation runs on a store that is not sorted by id.
	ErrNotSortedByIdentifier = errors.New("store is not sorted by identifier")
)
