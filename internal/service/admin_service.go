package service

//go:generate mockgen -source=admin_service.go -destination=mocks/admin_service_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"jigarafy/backend/internal/events"
	"jigarafy/backend/internal/models"
	"jigarafy/backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const recentUsersLimit = 5

// UserUpdate is a partial admin update. Nil fields are left untouched.
// Password is only declared so that a payload carrying it can be rejected.
type UserUpdate struct {
	FullName         *string      `json:"fullName"`
	Email            *string      `json:"email"`
	Bio              *string      `json:"bio"`
	ProfilePic       *string      `json:"profilePic"`
	NativeLanguage   *string      `json:"nativeLanguage"`
	LearningLanguage *string      `json:"learningLanguage"`
	Location         *string      `json:"location"`
	Role             *models.Role `json:"role"`
	IsOnboarded      *bool        `json:"isOnboarded"`
	Password         *string      `json:"password,omitempty" swaggerignore:"true"`
}

type RecentUser struct {
	ID         uint        `json:"id"`
	FullName   string      `json:"fullName"`
	Email      string      `json:"email"`
	ProfilePic string      `json:"profilePic"`
	Role       models.Role `json:"role"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type Dashboard struct {
	TotalUsers             int64        `json:"totalUsers"`
	TotalAdmins            int64        `json:"totalAdmins"`
	TotalRegularUsers      int64        `json:"totalRegularUsers"`
	TotalFriendRequests    int64        `json:"totalFriendRequests"`
	PendingFriendRequests  int64        `json:"pendingFriendRequests"`
	AcceptedFriendRequests int64        `json:"acceptedFriendRequests"`
	RecentUsers            []RecentUser `json:"recentUsers"`
}

type AdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, update UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type adminService struct {
	store     repository.Store
	publisher events.Publisher
	validate  *validator.Validate
	log       *zap.Logger
}

func NewAdminService(store repository.Store, publisher events.Publisher, log *zap.Logger) AdminService {
	return &adminService{store: store, publisher: publisher, validate: validator.New(), log: log}
}

func (s *adminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.Users().List(ctx)
}

func (s *adminService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return findUser(ctx, s.store, id)
}

func (s *adminService) UpdateUser(ctx context.Context, id uint, update UserUpdate) (*models.User, error) {
	if update.Password != nil {
		return nil, ErrPasswordUpdate
	}

	fields := profileFields(update.FullName, update.Bio, update.ProfilePic, update.NativeLanguage, update.LearningLanguage, update.Location)
	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		if err := s.validate.Var(email, "required,email"); err != nil {
			return nil, ErrInvalidEmail
		}
		fields["email"] = email
	}
	if update.Role != nil {
		if *update.Role != models.RoleUser && *update.Role != models.RoleAdmin {
			return nil, ErrInvalidRole
		}
		fields["role"] = *update.Role
	}
	if update.IsOnboarded != nil {
		fields["is_onboarded"] = *update.IsOnboarded
	}

	if len(fields) > 0 {
		if err := s.store.Users().Update(ctx, id, fields); err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				return nil, ErrUserNotFound
			case errors.Is(err, repository.ErrDuplicate):
				return nil, ErrEmailTaken
			}
			return nil, err
		}
	}

	return findUser(ctx, s.store, id)
}

func (s *adminService) DeleteUser(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := cascadeDelete(ctx, tx, id); err != nil {
			return err
		}
		return tx.Users().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.publisher.Publish(ctx, events.New(events.UserDeleted, id, nil)); err != nil {
		s.log.Warn("failed to publish event", zap.String("type", string(events.UserDeleted)), zap.Error(err))
	}
	return nil
}

func (s *adminService) Dashboard(ctx context.Context) (*Dashboard, error) {
	roles, err := s.store.Users().CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	statuses, err := s.store.FriendRequests().CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.store.Users().Recent(ctx, recentUsersLimit)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		TotalAdmins:            roles[models.RoleAdmin],
		TotalRegularUsers:      roles[models.RoleUser],
		PendingFriendRequests:  statuses[models.StatusPending],
		AcceptedFriendRequests: statuses[models.StatusAccepted],
		RecentUsers:            make([]RecentUser, 0, len(recent)),
	}
	for _, n := range roles {
		d.TotalUsers += n
	}
	for _, n := range statuses {
		d.TotalFriendRequests += n
	}
	for _, u := range recent {
		d.RecentUsers = append(d.RecentUsers, RecentUser{
			ID:         u.ID,
			FullName:   u.FullName,
			Email:      u.Email,
			ProfilePic: u.ProfilePic,
			Role:       u.Role,
			CreatedAt:  u.CreatedAt,
		})
	}
	return d, nil
}

func findUser(ctx context.Context, store repository.Store, id uint) (*models.User, error) {
	user, err := store.Users().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// profileFields maps the self-editable profile fields to their columns.
func profileFields(fullName, bio, profilePic, nativeLanguage, learningLanguage, location *string) map[string]any {
	fields := map[string]any{}
	for column, value := range map[string]*string{
		"full_name":         fullName,
		"bio":               bio,
		"profile_pic":       profilePic,
		"native_language":   nativeLanguage,
		"learning_language": learningLanguage,
		"location":          location,
	} {
		if value != nil {
			fields[column] = strings.TrimSpace(*value)
		}
	}
	return fields
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
