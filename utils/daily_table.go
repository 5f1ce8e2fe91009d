package utils

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/elC0mpa/intra-logtime/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DailyTableRenderer prints one row per logged day with the range total as footer
type DailyTableRenderer struct {
	out io.Writer
}

func NewDailyTableRenderer(out io.Writer) *DailyTableRenderer {
	return &DailyTableRenderer{out: out}
}

func (r *DailyTableRenderer) Render(ctx context.Context, report *model.LogtimeReport) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(r.out)
	tw.SetTitle(fmt.Sprintf("%s  |  %s", report.DisplayName(), FormatRange(report.Range)))

	tw.AppendHeader(table.Row{"Date", "Weekday", "Duration", "Hours"})

	rows := make([]table.Row, 0, len(report.Days))
	for _, day := range report.Days {
		rows = append(rows, populateDayRow(day))
	}
	tw.AppendRows(rows)

	tw.AppendFooter(table.Row{
		"TOTAL",
		fmt.Sprintf("%d days", len(report.Days)),
		report.Total.String(),
		totalHoursCell(report),
	})

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{
			Number:       1,
			VAlignHeader: text.VAlignMiddle,
		},
		{
			Number: 2,
		},
		{
			Number:      3,
			Align:       text.AlignRight,
			AlignFooter: text.AlignRight,
		},
		{
			Number:      4,
			Align:       text.AlignRight,
			AlignFooter: text.AlignRight,
		},
	})
	tw.Render()

	return nil
}

func populateDayRow(day model.DailyEntry) table.Row {
	row := make(table.Row, 4)

	row[0] = day.Date
	row[1] = ""
	if parsed, err := time.Parse(model.DateLayout, day.Date); err == nil {
		row[1] = parsed.Format("Mon")
	}
	row[2] = model.TotalDuration(day.Duration).String()
	row[3] = text.FgGreen.Sprintf("%.2f", day.Duration.Hours())

	if day.Duration == 0 {
		row[3] = text.FgYellow.Sprintf("%.2f", day.Duration.Hours())
	}

	return row
}

func totalHoursCell(report *model.LogtimeReport) string {
	if report.Total.Hours() >= report.MaxHours {
		return text.FgHiGreen.Sprintf("%.2f / %.0f", report.Total.Hours(), report.MaxHours)
	}
	return text.FgHiRed.Sprintf("%.2f / %.0f", report.Total.Hours(), report.MaxHours)
}
