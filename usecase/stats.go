package usecase

import (
	"context"
	"math"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

// streakLookbackDays bounds how far back the streak walk goes. A habit
// logged only beyond this horizon reads as streak zero.
const streakLookbackDays = 365

// DefaultHeatmapDays is the trailing window the dashboard heatmap renders.
const DefaultHeatmapDays = 28

// CalculateHabitProgress computes the rolling-window progress snapshot for
// one habit at a reference date. The window is the habit's goal period
// length in days, ending at referenceDate inclusive. Logs for other habits
// or outside the window are ignored. Pure function of its inputs.
func CalculateHabitProgress(habit *model.Habit, logs []*model.HabitLog, referenceDate string) model.Progress {
	target := habit.GoalAmount

	windowStart, err := utils.AddDays(referenceDate, -(habit.WindowDays() - 1))
	if err != nil {
		return model.Progress{Target: target}
	}

	var progress float64
	for _, l := range logs {
		if l.HabitID == habit.HabitID && l.Date >= windowStart && l.Date <= referenceDate {
			progress += l.Amount
		}
	}

	// Non-positive targets yield raw progress with no percentage.
	if target <= 0 {
		return model.Progress{Progress: progress, Target: target}
	}

	percentage := int(math.Round(progress / target * 100))
	if percentage > 100 {
		percentage = 100
	}

	return model.Progress{
		Progress:    progress,
		Target:      target,
		Percentage:  percentage,
		IsCompleted: progress >= target,
	}
}

// CalculateStreaks walks backward from today computing per-day completion
// under the habit's normal window rule. The current streak is the run of
// consecutive completed days ending at today, or at yesterday when today is
// not yet completed (an unfinished "today" does not break a streak in
// progress). The longest streak scans at most min(2 x distinct log dates,
// 365) days back, so runs entirely beyond that horizon are not found.
func CalculateStreaks(habit *model.Habit, logs []*model.HabitLog, now time.Time) (currentStreak, longestStreak int) {
	distinct := make(map[string]struct{})
	for _, l := range logs {
		if l.HabitID == habit.HabitID {
			distinct[l.Date] = struct{}{}
		}
	}
	if len(distinct) == 0 {
		return 0, 0
	}

	completed := func(date string) bool {
		return CalculateHabitProgress(habit, logs, date).IsCompleted
	}

	start := 0
	if !completed(utils.Today(now)) {
		start = 1
	}
	for i := start; i < streakLookbackDays; i++ {
		if !completed(utils.DaysAgo(now, i)) {
			break
		}
		currentStreak++
	}

	bound := 2 * len(distinct)
	if bound > streakLookbackDays {
		bound = streakLookbackDays
	}
	run := 0
	for i := 0; i < bound; i++ {
		if completed(utils.DaysAgo(now, i)) {
			run++
			if run > longestStreak {
				longestStreak = run
			}
		} else {
			run = 0
		}
	}

	return currentStreak, longestStreak
}

// CalculateHabitStats aggregates one habit over a reporting period:
// totals, per-day average, success rate, streaks over full history, and the
// change versus the immediately previous period.
func CalculateHabitStats(habit *model.Habit, logs []*model.HabitLog, period model.TimePeriod, now time.Time) *model.HabitStats {
	start, end := utils.DateRange(period, now)
	prevStart, prevEnd := utils.PreviousPeriodRange(period, now)

	var habitLogs []*model.HabitLog
	for _, l := range logs {
		if l.HabitID == habit.HabitID {
			habitLogs = append(habitLogs, l)
		}
	}

	var totalAmount, prevTotalAmount float64
	for _, l := range habitLogs {
		if l.Date >= start && l.Date <= end {
			totalAmount += l.Amount
		}
		if l.Date >= prevStart && l.Date <= prevEnd {
			prevTotalAmount += l.Amount
		}
	}

	daysInPeriod := utils.DaysBetween(start, end) + 1
	averagePerDay := totalAmount / float64(daysInPeriod)

	dates := utils.DatesBetween(start, end)
	successfulDays := 0
	for _, date := range dates {
		if CalculateHabitProgress(habit, habitLogs, date).IsCompleted {
			successfulDays++
		}
	}
	successRate := 0
	if len(dates) > 0 {
		successRate = int(math.Round(float64(successfulDays) / float64(len(dates)) * 100))
	}

	currentStreak, longestStreak := CalculateStreaks(habit, habitLogs, now)

	comparison := percentChange(totalAmount, prevTotalAmount)

	return &model.HabitStats{
		HabitID:        habit.HabitID,
		SuccessRate:    successRate,
		CurrentStreak:  currentStreak,
		LongestStreak:  longestStreak,
		TotalCompleted: successfulDays,
		TotalAmount:    totalAmount,
		AveragePerDay:  averagePerDay,
		Comparison: model.PeriodComparison{
			VsLastPeriod: comparison,
			Direction:    direction(comparison),
		},
	}
}

// CalculateOverallStats folds per-habit stats across all active habits:
// mean success rate, best streaks, summed completed days, and week/month
// comparisons counted over successful habit-days.
func CalculateOverallStats(habits []*model.Habit, logs []*model.HabitLog, period model.TimePeriod, now time.Time) *model.OverallStats {
	active := activeHabits(habits)
	if len(active) == 0 {
		return &model.OverallStats{
			Comparison: model.OverallComparison{Direction: model.DirectionSame},
		}
	}

	totalRate, totalCompleted := 0, 0
	maxCurrent, maxLongest := 0, 0
	for _, habit := range active {
		stats := CalculateHabitStats(habit, logs, period, now)
		totalRate += stats.SuccessRate
		totalCompleted += stats.TotalCompleted
		if stats.CurrentStreak > maxCurrent {
			maxCurrent = stats.CurrentStreak
		}
		if stats.LongestStreak > maxLongest {
			maxLongest = stats.LongestStreak
		}
	}

	weekChange := completionChange(active, logs, model.PeriodWeek, now)
	monthChange := completionChange(active, logs, model.PeriodMonth, now)

	return &model.OverallStats{
		SuccessRate:          int(math.Round(float64(totalRate) / float64(len(active)))),
		CurrentStreak:        maxCurrent,
		LongestStreak:        maxLongest,
		TotalHabitsCompleted: totalCompleted,
		ActiveHabits:         len(active),
		Comparison: model.OverallComparison{
			VsLastWeek:  weekChange,
			VsLastMonth: monthChange,
			Direction:   direction(weekChange),
		},
	}
}

// completionChange compares the count of successful habit-days across all
// supplied habits between the current and previous period.
func completionChange(habits []*model.Habit, logs []*model.HabitLog, period model.TimePeriod, now time.Time) int {
	curStart, curEnd := utils.DateRange(period, now)
	prevStart, prevEnd := utils.PreviousPeriodRange(period, now)

	current := countSuccessfulDays(habits, logs, utils.DatesBetween(curStart, curEnd))
	previous := countSuccessfulDays(habits, logs, utils.DatesBetween(prevStart, prevEnd))

	return percentChange(float64(current), float64(previous))
}

func countSuccessfulDays(habits []*model.Habit, logs []*model.HabitLog, dates []string) int {
	count := 0
	for _, habit := range habits {
		for _, date := range dates {
			if CalculateHabitProgress(habit, logs, date).IsCompleted {
				count++
			}
		}
	}
	return count
}

// CalculateDailyProgress reports each active habit's single-day completion
// for a date plus the aggregate completion percentage.
func CalculateDailyProgress(habits []*model.Habit, logs []*model.HabitLog, date string) *model.DailyProgress {
	active := activeHabits(habits)

	completedCount := 0
	habitProgress := make([]*model.HabitDayProgress, 0, len(active))
	for _, habit := range active {
		p := CalculateHabitProgress(habit, logs, date)
		if p.IsCompleted {
			completedCount++
		}
		habitProgress = append(habitProgress, &model.HabitDayProgress{
			HabitID:     habit.HabitID,
			Name:        habit.Name,
			Progress:    p.Progress,
			Target:      p.Target,
			IsCompleted: p.IsCompleted,
		})
	}

	percentage := 0
	if len(active) > 0 {
		percentage = int(math.Round(float64(completedCount) / float64(len(active)) * 100))
	}

	return &model.DailyProgress{
		Date:            date,
		TotalHabits:     len(active),
		CompletedHabits: completedCount,
		Percentage:      percentage,
		Habits:          habitProgress,
	}
}

// CalculateHeatmap produces the trailing-days completion series, oldest
// first, ending at today. Levels: 0 for 0%, 1 below 25%, 2 below 50%,
// 3 below 100%, 4 at 100%.
func CalculateHeatmap(habits []*model.Habit, logs []*model.HabitLog, days int, now time.Time) []model.HeatmapCell {
	cells := make([]model.HeatmapCell, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := utils.DaysAgo(now, i)
		pct := CalculateDailyProgress(habits, logs, date).Percentage

		level := 0
		switch {
		case pct == 0:
			level = 0
		case pct < 25:
			level = 1
		case pct < 50:
			level = 2
		case pct < 100:
			level = 3
		default:
			level = 4
		}
		cells = append(cells, model.HeatmapCell{Date: date, Level: level})
	}
	return cells
}

func activeHabits(habits []*model.Habit) []*model.Habit {
	var active []*model.Habit
	for _, h := range habits {
		if h.IsActive {
			active = append(active, h)
		}
	}
	return active
}

// percentChange is the shared period-over-period rule: with no previous
// value the change reads as 100 when anything happened this period, else 0.
func percentChange(current, previous float64) int {
	if previous > 0 {
		return int(math.Round((current - previous) / previous * 100))
	}
	if current > 0 {
		return 100
	}
	return 0
}

func direction(change int) model.Direction {
	switch {
	case change > 0:
		return model.DirectionUp
	case change < 0:
		return model.DirectionDown
	default:
		return model.DirectionSame
	}
}

// StatsService serves derived statistics over repository snapshots. Now is
// the injected clock; handlers leave it nil and get wall-clock time, tests
// pin it.
type StatsService struct {
	HabitsRepo *repository.HabitsRepo
	LogsRepo   *repository.LogsRepo
	Now        func() time.Time
}

func NewStatsService(habitsRepo *repository.HabitsRepo, logsRepo *repository.LogsRepo) *StatsService {
	return &StatsService{
		HabitsRepo: habitsRepo,
		LogsRepo:   logsRepo,
		Now:        time.Now,
	}
}

func (svc *StatsService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}

func (svc *StatsService) snapshot(ctx context.Context, userID string) ([]*model.Habit, []*model.HabitLog, error) {
	habits, err := svc.HabitsRepo.GetUserHabits(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	logs, err := svc.LogsRepo.GetUserLogs(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return habits, logs, nil
}

func (svc *StatsService) Overview(ctx context.Context, userID string, period model.TimePeriod) (*model.OverallStats, error) {
	timer := utils.TrackStatsComputation("overview")
	defer timer.ObserveDuration()

	habits, logs, err := svc.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return CalculateOverallStats(habits, logs, period, svc.now()), nil
}

func (svc *StatsService) HabitStats(ctx context.Context, userID, habitID string, period model.TimePeriod) (*model.HabitStats, error) {
	timer := utils.TrackStatsComputation("habit")
	defer timer.ObserveDuration()

	habit, err := svc.HabitsRepo.GetHabitByID(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	logs, err := svc.LogsRepo.GetHabitLogs(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	return CalculateHabitStats(habit, logs, period, svc.now()), nil
}

func (svc *StatsService) AllHabitStats(ctx context.Context, userID string, period model.TimePeriod) (map[string]*model.HabitStats, error) {
	timer := utils.TrackStatsComputation("habit")
	defer timer.ObserveDuration()

	habits, logs, err := svc.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := svc.now()
	stats := make(map[string]*model.HabitStats)
	for _, habit := range habits {
		if habit.IsActive {
			stats[habit.HabitID] = CalculateHabitStats(habit, logs, period, now)
		}
	}
	return stats, nil
}

func (svc *StatsService) Daily(ctx context.Context, userID, date string) (*model.DailyProgress, error) {
	timer := utils.TrackStatsComputation("daily")
	defer timer.ObserveDuration()

	habits, logs, err := svc.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	if date == "" {
		date = utils.Today(svc.now())
	}
	return CalculateDailyProgress(habits, logs, date), nil
}

func (svc *StatsService) Heatmap(ctx context.Context, userID string, days int) ([]model.HeatmapCell, error) {
	timer := utils.TrackStatsComputation("heatmap")
	defer timer.ObserveDuration()

	habits, logs, err := svc.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	if days < 1 {
		days = DefaultHeatmapDays
	}
	return CalculateHeatmap(habits, logs, days, svc.now()), nil
}

// Trend returns the per-day daily-progress series for a period, the shape
// the dashboard's trend chart consumes.
func (svc *StatsService) Trend(ctx context.Context, userID string, period model.TimePeriod) ([]*model.DailyProgress, error) {
	timer := utils.TrackStatsComputation("trend")
	defer timer.ObserveDuration()

	habits, logs, err := svc.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	start, end := utils.DateRange(period, svc.now())
	dates := utils.DatesBetween(start, end)
	series := make([]*model.DailyProgress, 0, len(dates))
	for _, date := range dates {
		series = append(series, CalculateDailyProgress(habits, logs, date))
	}
	return series, nil
}
