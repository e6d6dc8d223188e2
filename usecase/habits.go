package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

// HabitsService owns habit lifecycle and the list-with-progress view.
type HabitsService struct {
	HabitsRepo *repository.HabitsRepo
	LogsRepo   *repository.LogsRepo
	Now        func() time.Time
}

func NewHabitsService(habitsRepo *repository.HabitsRepo, logsRepo *repository.LogsRepo) *HabitsService {
	return &HabitsService{
		HabitsRepo: habitsRepo,
		LogsRepo:   logsRepo,
		Now:        time.Now,
	}
}

func (svc *HabitsService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}

// CreateHabit builds a habit from client input. New habits start active;
// goal_period_days is normalized from the goal period so WindowDays never
// has to guess.
func (svc *HabitsService) CreateHabit(ctx context.Context, userID string, input *model.Habit) (*model.Habit, error) {
	if !model.ValidCategory(input.Category) {
		return nil, errors.New("invalid category")
	}
	if !model.ValidGoalPeriod(input.GoalPeriod) {
		return nil, errors.New("invalid goal period")
	}

	now := svc.now()
	habit := &model.Habit{
		HabitID:        utils.GenerateID(),
		UserID:         userID,
		Name:           input.Name,
		Unit:           input.Unit,
		Category:       input.Category,
		GoalAmount:     input.GoalAmount,
		GoalPeriod:     input.GoalPeriod,
		GoalPeriodDays: normalizePeriodDays(input.GoalPeriod, input.GoalPeriodDays),
		IsActive:       true,
		Color:          input.Color,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := svc.HabitsRepo.CreateHabit(ctx, habit); err != nil {
		return nil, err
	}
	utils.TrackHabitOperation("create")
	return habit, nil
}

func (svc *HabitsService) UpdateHabit(ctx context.Context, habitID, userID string, input *model.Habit) (*model.Habit, error) {
	if !model.ValidCategory(input.Category) {
		return nil, errors.New("invalid category")
	}
	if !model.ValidGoalPeriod(input.GoalPeriod) {
		return nil, errors.New("invalid goal period")
	}

	input.GoalPeriodDays = normalizePeriodDays(input.GoalPeriod, input.GoalPeriodDays)
	if err := svc.HabitsRepo.UpdateHabit(ctx, habitID, userID, input); err != nil {
		return nil, err
	}
	utils.TrackHabitOperation("update")
	return svc.HabitsRepo.GetHabitByID(ctx, habitID, userID)
}

// SetActive flips the soft activation flag. Deactivated habits keep their
// logs and drop out of aggregations only.
func (svc *HabitsService) SetActive(ctx context.Context, habitID, userID string, active bool) error {
	if err := svc.HabitsRepo.SetActive(ctx, habitID, userID, active); err != nil {
		return err
	}
	utils.TrackHabitOperation("toggle")
	return nil
}

// DeleteHabit hard-deletes the habit and cascades to its logs. Returns the
// number of logs removed.
func (svc *HabitsService) DeleteHabit(ctx context.Context, habitID, userID string) (int, error) {
	if _, err := svc.HabitsRepo.GetHabitByID(ctx, habitID, userID); err != nil {
		return 0, err
	}

	logsDeleted, err := svc.LogsRepo.DeleteHabitLogs(ctx, habitID, userID)
	if err != nil {
		return 0, err
	}
	if err := svc.HabitsRepo.DeleteHabit(ctx, habitID, userID); err != nil {
		return logsDeleted, err
	}
	utils.TrackHabitOperation("delete")
	return logsDeleted, nil
}

func (svc *HabitsService) GetHabit(ctx context.Context, habitID, userID string) (*model.Habit, error) {
	return svc.HabitsRepo.GetHabitByID(ctx, habitID, userID)
}

// ListWithProgress decorates each habit with its current rolling-window
// progress and today's log entries.
func (svc *HabitsService) ListWithProgress(ctx context.Context, userID string) ([]*model.HabitWithProgress, error) {
	habits, err := svc.HabitsRepo.GetUserHabits(ctx, userID)
	if err != nil {
		return nil, err
	}
	logs, err := svc.LogsRepo.GetUserLogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := utils.Today(svc.now())
	result := make([]*model.HabitWithProgress, 0, len(habits))
	for _, habit := range habits {
		p := CalculateHabitProgress(habit, logs, today)

		todayLogs := make([]*model.HabitLog, 0)
		for _, l := range logs {
			if l.HabitID == habit.HabitID && l.Date == today {
				todayLogs = append(todayLogs, l)
			}
		}

		result = append(result, &model.HabitWithProgress{
			Habit:       *habit,
			Progress:    p.Progress,
			Target:      p.Target,
			Percentage:  p.Percentage,
			IsCompleted: p.IsCompleted,
			TodayLogs:   todayLogs,
		})
	}
	return result, nil
}

// Presets returns the quick-add habit catalog.
func (svc *HabitsService) Presets() []model.PresetHabit {
	return model.PresetHabits
}

// SeedDemoHabits gives a brand-new account a small starter set. No-op for
// users who already own habits.
func (svc *HabitsService) SeedDemoHabits(ctx context.Context, userID string) error {
	count, err := svc.HabitsRepo.CountHabits(ctx, userID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	starters := []string{"Water", "Reading", "Exercise"}
	now := svc.now()
	for _, name := range starters {
		for _, preset := range model.PresetHabits {
			if preset.Name != name {
				continue
			}
			habit := &model.Habit{
				HabitID:        utils.GenerateID(),
				UserID:         userID,
				Name:           preset.Name,
				Unit:           preset.Unit,
				Category:       preset.Category,
				GoalAmount:     preset.GoalAmount,
				GoalPeriod:     preset.GoalPeriod,
				GoalPeriodDays: preset.GoalPeriodDays,
				IsActive:       true,
				Color:          preset.Color,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := svc.HabitsRepo.CreateHabit(ctx, habit); err != nil {
				return err
			}
		}
	}
	return nil
}

func normalizePeriodDays(period model.GoalPeriod, days int) int {
	switch period {
	case model.GoalPeriodDay:
		return 1
	case model.GoalPeriodWeek:
		return 7
	default:
		if days < 1 {
			return 1
		}
		return days
	}
}
