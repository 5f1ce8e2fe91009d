package utils

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/intra-logtime/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#1a9850"
	ColorRank2 = "#66c2a5"
	ColorRank3 = "#abdda4"
	ColorRank4 = "#fee08b"
	ColorRank5 = "#f46d43"
	ColorRank6 = "#d73027"

	chartHeight      = 20
	chartMinWidth    = 40
	chartColumnWidth = 6
)

var chartBorderStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DailyChartRenderer draws a bar per logged day, longest days in the warmest green
type DailyChartRenderer struct {
	out io.Writer
}

func NewDailyChartRenderer(out io.Writer) *DailyChartRenderer {
	return &DailyChartRenderer{out: out}
}

func (r *DailyChartRenderer) Render(ctx context.Context, report *model.LogtimeReport) error {
	fmt.Fprintf(r.out, "\n%s\n", text.FgHiWhite.Sprint(" DAILY LOGTIME"))
	fmt.Fprintf(r.out, " Login: %s\n", text.FgBlue.Sprint(report.Login))
	fmt.Fprintln(r.out, text.FgHiBlue.Sprint(" ------------------------------------------------"))

	if len(report.Days) == 0 {
		fmt.Fprintln(r.out, text.FgYellow.Sprint(" No logtime recorded in this range"))
		return nil
	}

	width := len(report.Days) * chartColumnWidth
	if width < chartMinWidth {
		width = chartMinWidth
	}
	bc := barchart.New(width, chartHeight)

	indexedColors := assignRankedColors(report.Days)

	for idx, day := range report.Days {
		bc.Push(barchart.BarData{
			Label: getBarLabel(day),
			Values: []barchart.BarValue{
				{
					Name:  day.Date,
					Value: day.Duration.Hours(),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[idx])),
				},
			},
		})
	}

	bc.Draw()
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, chartBorderStyle.Render(bc.View()))

	return nil
}

func getBarLabel(day model.DailyEntry) string {
	parsed, err := time.Parse(model.DateLayout, day.Date)
	if err != nil {
		return day.Date
	}
	return parsed.Format("02")
}

// assignRankedColors colors the six longest days from the palette; the rest use the last palette color
func assignRankedColors(days []model.DailyEntry) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	type dayWithIndex struct {
		index int
		value time.Duration
	}

	daysToSort := make([]dayWithIndex, len(days))
	for i, day := range days {
		daysToSort[i] = dayWithIndex{index: i, value: day.Duration}
	}

	sort.SliceStable(daysToSort, func(i, j int) bool {
		return daysToSort[i].value > daysToSort[j].value
	})

	resultColors := make([]string, len(days))
	for rank, sorted := range daysToSort {
		if rank < len(palette) {
			resultColors[sorted.index] = palette[rank]
		} else {
			resultColors[sorted.index] = palette[len(palette)-1]
		}
	}

	return resultColors
}
