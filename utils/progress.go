package utils

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/intra-logtime/model"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"

	progressBarWidth   = 40
	progressStepHours  = 0.5
	progressFrameDelay = 10 * time.Millisecond
)

var (
	rangeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#56B6C2")).Bold(true)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#56B6C2")).Bold(true)
	hoursStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#1a9850")).Bold(true)
	milestoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D060")).Bold(true)
	barLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#d73027"))
	barMidStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#fee08b"))
	barHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#66c2a5"))
)

// ProgressRenderer prints the range and replays a progress bar up to the known total
type ProgressRenderer struct {
	out        io.Writer
	milestones []model.Milestone
	animate    bool
	step       float64
	frameDelay time.Duration
}

func NewProgressRenderer(out io.Writer, milestones []model.Milestone, animate bool) *ProgressRenderer {
	return &ProgressRenderer{
		out:        out,
		milestones: milestones,
		animate:    animate,
		step:       progressStepHours,
		frameDelay: progressFrameDelay,
	}
}

func (r *ProgressRenderer) Render(ctx context.Context, report *model.LogtimeReport) error {
	fmt.Fprintln(r.out, rangeStyle.Render(FormatRange(report.Range)))

	target := math.Min(report.Total.Hours(), report.MaxHours)
	if target < 0 {
		target = 0
	}

	if r.animate {
		for current := 0.0; current < target; current += r.step {
			fmt.Fprint(r.out, "\r"+r.line(current, report))
			select {
			case <-ctx.Done():
				fmt.Fprintln(r.out)
				return ctx.Err()
			case <-time.After(r.frameDelay):
			}
		}
	}

	fmt.Fprintln(r.out, "\r"+r.line(target, report))

	if label := MilestoneLabel(report.Total.Hours(), r.milestones); label != "" {
		fmt.Fprintln(r.out, milestoneStyle.Render(label))
	}

	return nil
}

func (r *ProgressRenderer) line(current float64, report *model.LogtimeReport) string {
	ratio := 0.0
	if report.MaxHours > 0 {
		ratio = current / report.MaxHours
	}

	return fmt.Sprintf("%s %s %6.2f%% %s",
		labelStyle.Render("Total Hours:"),
		ProgressBar(ratio, progressBarWidth),
		ratio*100,
		hoursStyle.Render(fmt.Sprintf("%.2fh", report.Total.Hours())),
	)
}

// ProgressBar renders ratio (clamped to [0, 1]) as a bracketed block bar colored by completion
func ProgressBar(ratio float64, width int) string {
	if ratio < 0 || math.IsNaN(ratio) {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(ratio * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := barHighStyle
	if ratio < 0.33 {
		style = barLowStyle
	} else if ratio < 0.66 {
		style = barMidStyle
	}

	return "[" + style.Render(bar) + "]"
}

// FormatRange renders "From: 2024-01-28  -  To: 2024-02-27"
func FormatRange(r model.DateRange) string {
	return fmt.Sprintf("From: %s  -  To: %s", r.Begin.Format(model.DateLayout), r.End.Format(model.DateLayout))
}
