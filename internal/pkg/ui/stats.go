package ui

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/furniture-crm/crm-cli/internal/pkg/model"
)

// StatCell is one labeled value of the summary.
type StatCell struct {
	Label string
	Value string
}

// StatsSummary renders the aggregates, missing stats are rendered as zeros.
type StatsSummary struct {
	Stats *model.Stats
}

func (s StatsSummary) Cells() []StatCell {
	stats := model.Stats{}
	if s.Stats != nil {
		stats = *s.Stats
	}
	return []StatCell{
		{Label: "Total Customers", Value: FormatCount(stats.TotalCustomers)},
		{Label: "Total Orders", Value: FormatCount(stats.TotalOrders)},
		{Label: "Total Revenue", Value: FormatCurrency(stats.TotalRevenue)},
		{Label: "Avg Order Value", Value: FormatCurrency(stats.AvgOrderValue)},
	}
}

func (s StatsSummary) Render(w io.Writer) error {
	cells := s.Cells()
	header := make([]string, 0, len(cells))
	row := make([]string, 0, len(cells))
	for _, c := range cells {
		header = append(header, c.Label)
		row = append(row, c.Value)
	}

	table := newTable(w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.Append(row)
	table.Render()
	return nil
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	return table
}
