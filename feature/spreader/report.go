package spreader

import (
	"bufio"
	"fmt"
	"io"
)

// WriteReport renders one line per exposure using the tier templates.
func WriteReport(w io.Writer, exposures []Exposure, cfg Config) error {
	bw := bufio.NewWriter(w)
	for _, e := range exposures {
		if _, err := fmt.Fprintf(bw, cfg.Message(e.Tier)+"\n", e.Name, e.ID); err != nil {
			return fmt.Errorf("%w: %v", ErrOutputFile, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputFile, err)
	}
	return nil
}
