package utils

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/intra-logtime/model"
)

const (
	windowBarWidth    = 40
	windowMaxBarWidth = 60
	windowFrameDelay  = 15 * time.Millisecond
)

var (
	windowTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F4D060")).
				Bold(true)

	windowBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)

	windowFooterStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#626262"))
)

// WindowRenderer shows the report in a full-screen terminal window until the user closes it
type WindowRenderer struct {
	milestones []model.Milestone
	options    []tea.ProgramOption
}

func NewWindowRenderer(milestones []model.Milestone, options ...tea.ProgramOption) *WindowRenderer {
	return &WindowRenderer{
		milestones: milestones,
		options:    options,
	}
}

func (r *WindowRenderer) Render(ctx context.Context, report *model.LogtimeReport) error {
	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, r.options...)

	p := tea.NewProgram(newWindowModel(report, r.milestones), options...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("window: %w", err)
	}

	return nil
}

type frameMsg struct{}

func frameCmd() tea.Cmd {
	return tea.Tick(windowFrameDelay, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

type windowModel struct {
	report     *model.LogtimeReport
	milestones []model.Milestone
	bar        progress.Model
	shown      float64
	target     float64
	quitting   bool
}

func newWindowModel(report *model.LogtimeReport, milestones []model.Milestone) windowModel {
	target := math.Max(0, math.Min(report.Total.Hours(), report.MaxHours))

	return windowModel{
		report:     report,
		milestones: milestones,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
			progress.WithWidth(windowBarWidth),
		),
		target: target,
	}
}

func (m windowModel) Init() tea.Cmd {
	if m.shown >= m.target {
		return nil
	}
	return frameCmd()
}

func (m windowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		width := msg.Width - 12
		if width > windowMaxBarWidth {
			width = windowMaxBarWidth
		}
		if width >= 20 {
			m.bar.Width = width
		}
	case frameMsg:
		m.shown += progressStepHours
		if m.shown >= m.target {
			m.shown = m.target
			return m, nil
		}
		return m, frameCmd()
	}
	return m, nil
}

func (m windowModel) ratio() float64 {
	if m.report.MaxHours <= 0 {
		return 0
	}
	return math.Min(m.shown/m.report.MaxHours, 1)
}

func (m windowModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(windowTitleStyle.Render(fmt.Sprintf("Logtime of %s", m.report.DisplayName())))
	if m.report.User != nil && m.report.User.DisplayName != "" {
		b.WriteString(fmt.Sprintf(" (%s)", m.report.Login))
	}
	b.WriteString("\n\n")
	b.WriteString(rangeStyle.Render(FormatRange(m.report.Range)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s / %.0fh\n\n",
		labelStyle.Render("Total:"),
		hoursStyle.Render(m.report.Total.String()),
		m.report.MaxHours,
	))
	b.WriteString(m.bar.ViewAs(m.ratio()))
	b.WriteString(fmt.Sprintf(" %.2f%%", m.ratio()*100))

	if m.shown >= m.target {
		if label := MilestoneLabel(m.report.Total.Hours(), m.milestones); label != "" {
			b.WriteString("\n\n")
			b.WriteString(milestoneStyle.Render(label))
		}
	}

	return windowBoxStyle.Render(b.String()) + "\n" + windowFooterStyle.Render("q / esc: close") + "\n"
}
