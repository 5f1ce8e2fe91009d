package response

import (
	"testing"
	"time"

	"github.com/elC0mpa/intra-logtime/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertUser(t *testing.T) {
	assert.Nil(t, ConvertUser(nil))
	assert.Equal(t,
		&UserInfo{ID: 7, Login: "abc", DisplayName: "Ada Byron", Location: "c1r2s3"},
		ConvertUser(&model.User{ID: 7, Login: "abc", DisplayName: "Ada Byron", Location: "c1r2s3"}),
	)
}

func TestConvertReport(t *testing.T) {
	report := &model.LogtimeReport{
		Login: "abc",
		User:  &model.User{Login: "abc", DisplayName: "Ada Byron"},
		Range: model.DateRange{
			Begin: time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC),
		},
		Days: []model.DailyEntry{
			{Date: "2024-01-28", Duration: 5*time.Hour + 20*time.Minute},
			{Date: "2024-01-29", Duration: 128 * time.Hour},
		},
		Total:    model.TotalDuration(133*time.Hour + 20*time.Minute),
		MaxHours: 120,
	}
	milestones := []model.Milestone{{Hours: 150, Label: "Legend"}, {Hours: 130, Label: "Overachiever"}}

	got := ConvertReport(report, milestones)
	require.NotNil(t, got)

	assert.Equal(t, "Ada Byron", got.DisplayName)
	assert.Equal(t, "2024-01-28", got.BeginDate)
	assert.Equal(t, "2024-02-27", got.EndDate)
	assert.Equal(t, "133h 20m", got.Total)
	assert.Equal(t, 133.33, got.TotalHours)
	assert.Equal(t, 8000, got.TotalMinutes)
	assert.Equal(t, 111.11, got.Percent)
	assert.Equal(t, "Overachiever", got.Milestone)
	require.Len(t, got.Days, 2)
	assert.Equal(t, DaySummary{Date: "2024-01-28", Duration: "5h 20m", Hours: 5.33}, got.Days[0])
}

func TestConvertReport_Empty(t *testing.T) {
	assert.Nil(t, ConvertReport(nil, nil))

	got := ConvertReport(&model.LogtimeReport{Login: "abc", MaxHours: 120}, nil)
	assert.Equal(t, "abc", got.DisplayName)
	assert.Equal(t, "0h 00m", got.Total)
	assert.Empty(t, got.Days)
	assert.NotNil(t, got.Days)
	assert.Zero(t, got.Percent)
	assert.Empty(t, got.Milestone)
}
