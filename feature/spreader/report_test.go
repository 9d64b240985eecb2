package spreader

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, []Exposure{
		{Name: "Alice", ID: 1, Tier: TierHospitalization},
		{Name: "Carol", ID: 3, Tier: TierQuarantine},
		{Name: "Dan", ID: 18446744073709551615, Tier: TierClear},
	}, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t,
		"Hospitalization Required: Alice 1.\n"+
			"14-days-Quarantine Required: Carol 3.\n"+
			"No serious chance for infection: Dan 18446744073709551615.\n",
		buf.String())
}

func TestWriteReport_CustomTemplates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ClearMessage = "clear %s (#%d)"

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, []Exposure{{Name: "Eve", ID: 5, Tier: TierClear}}, cfg))
	assert.Equal(t, "clear Eve (#5)\n", buf.String())
}

func TestWriteReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, nil, DefaultConfig()))
	assert.Empty(t, buf.String())
}

func TestWriteReport_WriteFailure(t *testing.T) {
	err := WriteReport(failingWriter{}, []Exposure{{Name: "Alice", ID: 1, Tier: TierClear}}, DefaultConfig())
	assert.ErrorIs(t, err, ErrOutputFile)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.MaxTime = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.MinDistance = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.QuarantineThreshold = 0.5
	assert.Error(t, cfg.Validate())
}
