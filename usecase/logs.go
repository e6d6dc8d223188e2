package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

// LogsService owns log lifecycle. Every log must belong to a habit the user
// owns; amounts are sums, so zero-amount entries are allowed as markers.
type LogsService struct {
	LogsRepo   *repository.LogsRepo
	HabitsRepo *repository.HabitsRepo
	Now        func() time.Time
}

func NewLogsService(logsRepo *repository.LogsRepo, habitsRepo *repository.HabitsRepo) *LogsService {
	return &LogsService{
		LogsRepo:   logsRepo,
		HabitsRepo: habitsRepo,
		Now:        time.Now,
	}
}

func (svc *LogsService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}

func (svc *LogsService) CreateLog(ctx context.Context, userID string, input *model.HabitLog) (*model.HabitLog, error) {
	if _, err := svc.HabitsRepo.GetHabitByID(ctx, input.HabitID, userID); err != nil {
		return nil, errors.New("habit not found")
	}
	if !utils.ValidDate(input.Date) {
		return nil, errors.New("date must be YYYY-MM-DD")
	}

	now := svc.now()
	log := &model.HabitLog{
		LogID:     utils.GenerateID(),
		UserID:    userID,
		HabitID:   input.HabitID,
		Amount:    input.Amount,
		Date:      input.Date,
		Note:      input.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := svc.LogsRepo.CreateLog(ctx, log); err != nil {
		return nil, err
	}
	utils.TrackLogOperation("create")
	return log, nil
}

func (svc *LogsService) UpdateLog(ctx context.Context, logID, userID string, amount float64, note string) (*model.HabitLog, error) {
	if err := svc.LogsRepo.UpdateLog(ctx, logID, userID, amount, note); err != nil {
		return nil, err
	}
	utils.TrackLogOperation("update")
	return svc.LogsRepo.GetLogByID(ctx, logID, userID)
}

func (svc *LogsService) DeleteLog(ctx context.Context, logID, userID string) error {
	if err := svc.LogsRepo.DeleteLog(ctx, logID, userID); err != nil {
		return err
	}
	utils.TrackLogOperation("delete")
	return nil
}

func (svc *LogsService) GetUserLogs(ctx context.Context, userID string) ([]*model.HabitLog, error) {
	return svc.LogsRepo.GetUserLogs(ctx, userID)
}

func (svc *LogsService) GetHabitLogs(ctx context.Context, habitID, userID string) ([]*model.HabitLog, error) {
	if _, err := svc.HabitsRepo.GetHabitByID(ctx, habitID, userID); err != nil {
		return nil, errors.New("habit not found")
	}
	return svc.LogsRepo.GetHabitLogs(ctx, habitID, userID)
}

// GetLogsByDateRange returns logs inside the inclusive [start, end] window,
// optionally narrowed to one habit. An empty start or end falls back to
// today so ?date=YYYY-MM-DD single-day queries work with one parameter.
func (svc *LogsService) GetLogsByDateRange(ctx context.Context, userID, habitID, start, end string) ([]*model.HabitLog, error) {
	if start == "" && end == "" {
		today := utils.Today(svc.now())
		start, end = today, today
	}
	if start == "" {
		start = end
	}
	if end == "" {
		end = start
	}
	if !utils.ValidDate(start) || !utils.ValidDate(end) {
		return nil, errors.New("dates must be YYYY-MM-DD")
	}
	return svc.LogsRepo.GetLogsByDateRange(ctx, userID, habitID, start, end)
}
