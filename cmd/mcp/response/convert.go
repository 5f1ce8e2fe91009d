package response

import (
	"math"

	"github.com/elC0mpa/intra-logtime/model"
	"github.com/elC0mpa/intra-logtime/utils"
)

// ConvertUser converts model.User to response.UserInfo
func ConvertUser(user *model.User) *UserInfo {
	if user == nil {
		return nil
	}
	return &UserInfo{
		ID:          user.ID,
		Login:       user.Login,
		DisplayName: user.DisplayName,
		Location:    user.Location,
	}
}

// ConvertReport converts model.LogtimeReport to response.LogtimeSummary
func ConvertReport(report *model.LogtimeReport, milestones []model.Milestone) *LogtimeSummary {
	if report == nil {
		return nil
	}

	days := make([]DaySummary, 0, len(report.Days))
	for _, day := range report.Days {
		days = append(days, DaySummary{
			Date:     day.Date,
			Duration: model.TotalDuration(day.Duration).String(),
			Hours:    roundTo2(day.Duration.Hours()),
		})
	}

	return &LogtimeSummary{
		Login:        report.Login,
		DisplayName:  report.DisplayName(),
		BeginDate:    report.Range.Begin.Format(model.DateLayout),
		EndDate:      report.Range.End.Format(model.DateLayout),
		Days:         days,
		Total:        report.Total.String(),
		TotalHours:   roundTo2(report.Total.Hours()),
		TotalMinutes: report.Total.Minutes(),
		MaxHours:     report.MaxHours,
		Percent:      roundTo2(report.Total.Percent(report.MaxHours)),
		Milestone:    utils.MilestoneLabel(report.Total.Hours(), milestones),
	}
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
