package service

//go:generate mockgen -source=user_service.go -destination=mocks/user_service_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"jigarafy/backend/internal/apperror"
	"jigarafy/backend/internal/models"
	"jigarafy/backend/internal/repository"
)

type OnboardingInput struct {
	FullName         string `json:"fullName"`
	Bio              string `json:"bio"`
	NativeLanguage   string `json:"nativeLanguage"`
	LearningLanguage string `json:"learningLanguage"`
	Location         string `json:"location"`
	ProfilePic       string `json:"profilePic"`
}

// ProfileUpdate is a partial update of the caller's own profile.
type ProfileUpdate struct {
	FullName         *string `json:"fullName"`
	Bio              *string `json:"bio"`
	ProfilePic       *string `json:"profilePic"`
	NativeLanguage   *string `json:"nativeLanguage"`
	LearningLanguage *string `json:"learningLanguage"`
	Location         *string `json:"location"`
}

type UserService interface {
	Onboard(ctx context.Context, userID uint, input OnboardingInput) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.User, error)
	Recommended(ctx context.Context, userID uint, page, limit int) ([]models.User, int64, error)
}

type userService struct {
	store repository.Store
}

func NewUserService(store repository.Store) UserService {
	return &userService{store: store}
}

func (s *userService) Onboard(ctx context.Context, userID uint, input OnboardingInput) (*models.User, error) {
	required := []struct {
		name  string
		value string
	}{
		{"fullName", input.FullName},
		{"bio", input.Bio},
		{"nativeLanguage", input.NativeLanguage},
		{"learningLanguage", input.LearningLanguage},
		{"location", input.Location},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, apperror.Wrap(ErrMissingFields, errors.New("missing: "+strings.Join(missing, ", ")))
	}

	fields := profileFields(&input.FullName, &input.Bio, nil, &input.NativeLanguage, &input.LearningLanguage, &input.Location)
	if pic := strings.TrimSpace(input.ProfilePic); pic != "" {
		fields["profile_pic"] = pic
	}
	fields["is_onboarded"] = true

	return s.update(ctx, userID, fields)
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.User, error) {
	fields := profileFields(update.FullName, update.Bio, update.ProfilePic, update.NativeLanguage, update.LearningLanguage, update.Location)
	if name, ok := fields["full_name"]; ok && name == "" {
		return nil, apperror.Validationf("Full name cannot be empty")
	}
	if len(fields) == 0 {
		return findUser(ctx, s.store, userID)
	}
	return s.update(ctx, userID, fields)
}

func (s *userService) Recommended(ctx context.Context, userID uint, page, limit int) ([]models.User, int64, error) {
	result, err := s.store.Users().Recommended(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return result.Items, result.Total, nil
}

func (s *userService) update(ctx context.Context, userID uint, fields map[string]any) (*models.User, error) {
	if err := s.store.Users().Update(ctx, userID, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return findUser(ctx, s.store, userID)
}
