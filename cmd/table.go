package cmd

import (
	"strconv"

	"spreader-detector/feature/spreader"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderExposures renders the classified roster, highest probability first.
func renderExposures(exposures []spreader.Exposure) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Name", "ID", "Age", "Probability", "Tier", "At Risk"})

	for _, e := range exposures {
		atRisk := ""
		if e.AtRisk {
			atRisk = "yes"
		}
		tw.AppendRow(table.Row{
			e.Name,
			strconv.FormatUint(e.ID, 10),
			strconv.FormatFloat(e.Age, 'f', -1, 64),
			strconv.FormatFloat(e.Probability, 'f', 4, 64),
			string(e.Tier),
			atRisk,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
