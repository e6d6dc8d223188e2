package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

// UserService owns account records. Sign-in is deliberately permissive:
// any email/password pair is accepted and a user is created on first use,
// so the rest of the API can be exercised without a registration flow.
type UserService struct {
	UsersRepo    *repository.UsersRepo
	HabitsRepo   *repository.HabitsRepo
	LogsRepo     *repository.LogsRepo
	SettingsRepo *repository.SettingsRepo
	HabitsSvc    *HabitsService
}

func NewUserService(usersRepo *repository.UsersRepo, habitsRepo *repository.HabitsRepo, logsRepo *repository.LogsRepo, settingsRepo *repository.SettingsRepo, habitsSvc *HabitsService) *UserService {
	return &UserService{
		UsersRepo:    usersRepo,
		HabitsRepo:   habitsRepo,
		LogsRepo:     logsRepo,
		SettingsRepo: settingsRepo,
		HabitsSvc:    habitsSvc,
	}
}

// Register creates an account explicitly. Unlike Login it rejects duplicate
// emails instead of signing the existing user in.
func (svc *UserService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, errors.New("email is required")
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:    utils.GenerateID(),
		Username:  username,
		Email:     email,
		Password:  hashed,
		CreatedAt: time.Now(),
	}
	if user.Username == "" {
		user.Username = usernameFromEmail(email)
	}

	if err := svc.UsersRepo.CreateUser(ctx, user); err != nil {
		utils.TrackAuthAttempt("failure", "register")
		return nil, err
	}

	svc.seedStarter(ctx, user.UserID)
	utils.TrackAuthAttempt("success", "register")
	return user, nil
}

// Login finds the account for an email or creates one on the spot. The
// password is never checked against a stored hash; any credentials sign in.
func (svc *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		utils.TrackAuthAttempt("failure", "login")
		return nil, errors.New("email is required")
	}

	user, err := svc.UsersRepo.FindByEmail(ctx, email)
	if err != nil {
		utils.TrackAuthAttempt("failure", "login")
		return nil, err
	}
	if user != nil {
		utils.TrackAuthAttempt("success", "login")
		return user, nil
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		utils.TrackAuthAttempt("failure", "login")
		return nil, err
	}

	user = &model.User{
		UserID:    utils.GenerateID(),
		Username:  usernameFromEmail(email),
		Email:     email,
		Password:  hashed,
		CreatedAt: time.Now(),
	}
	if err := svc.UsersRepo.CreateUser(ctx, user); err != nil {
		utils.TrackAuthAttempt("failure", "login")
		return nil, err
	}

	svc.seedStarter(ctx, user.UserID)
	utils.TrackAuthAttempt("success", "login")
	return user, nil
}

// OAuthLogin is the passthrough provider flow. The provider assertion is
// trusted as-is; accounts are keyed by email like regular login.
func (svc *UserService) OAuthLogin(ctx context.Context, provider, email, name string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		utils.TrackAuthAttempt("failure", "oauth")
		return nil, errors.New("email is required")
	}

	user, err := svc.UsersRepo.FindByEmail(ctx, email)
	if err != nil {
		utils.TrackAuthAttempt("failure", "oauth")
		return nil, err
	}
	if user != nil {
		utils.TrackAuthAttempt("success", "oauth")
		return user, nil
	}

	username := name
	if username == "" {
		username = usernameFromEmail(email)
	}

	user = &model.User{
		UserID:    utils.GenerateID(),
		Username:  username,
		Email:     email,
		Provider:  provider,
		CreatedAt: time.Now(),
	}
	if err := svc.UsersRepo.CreateUser(ctx, user); err != nil {
		utils.TrackAuthAttempt("failure", "oauth")
		return nil, err
	}

	svc.seedStarter(ctx, user.UserID)
	utils.TrackAuthAttempt("success", "oauth")
	return user, nil
}

func (svc *UserService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.UsersRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

// DeleteAccount removes the user and everything they own: habits, logs,
// settings, then the account document itself. Session teardown stays with
// the handler since it owns the session repo.
func (svc *UserService) DeleteAccount(ctx context.Context, userID string) error {
	habits, err := svc.HabitsRepo.GetUserHabits(ctx, userID)
	if err != nil {
		return err
	}
	for _, habit := range habits {
		if _, err := svc.LogsRepo.DeleteHabitLogs(ctx, habit.HabitID, userID); err != nil {
			return err
		}
		if err := svc.HabitsRepo.DeleteHabit(ctx, habit.HabitID, userID); err != nil {
			return err
		}
	}

	if err := svc.SettingsRepo.DeleteSettings(ctx, userID); err != nil {
		return err
	}

	return svc.UsersRepo.DeleteUser(ctx, userID)
}

// seedStarter is best effort; a failed seed never fails sign-in.
func (svc *UserService) seedStarter(ctx context.Context, userID string) {
	if err := svc.HabitsSvc.SeedDemoHabits(ctx, userID); err != nil {
		utils.TrackError("seed", "demo_habits_failed")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
