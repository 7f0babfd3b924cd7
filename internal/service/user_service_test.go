package service

import (
	"context"
	"testing"

	"jigarafy/backend/internal/apperror"
	"jigarafy/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_Onboard(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store)
	id := store.addUser("ada", models.RoleUser)
	ctx := context.Background()

	_, err := svc.Onboard(ctx, id, OnboardingInput{FullName: "Ada", Bio: "hi"})
	require.ErrorIs(t, err, ErrMissingFields)
	assert.Equal(t, apperror.Validation, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "nativeLanguage")

	user, err := svc.Onboard(ctx, id, OnboardingInput{
		FullName:         "Ada",
		Bio:              "hi",
		NativeLanguage:   "english",
		LearningLanguage: "spanish",
		Location:         "London",
	})
	require.NoError(t, err)
	assert.True(t, user.IsOnboarded)
	assert.Equal(t, "spanish", user.LearningLanguage)

	_, err = svc.Onboard(ctx, 999, OnboardingInput{
		FullName: "x", Bio: "x", NativeLanguage: "x", LearningLanguage: "x", Location: "x",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store)
	id := store.addUser("ada", models.RoleUser)

	user, err := svc.UpdateProfile(context.Background(), id, ProfileUpdate{Location: ptr("Paris")})
	require.NoError(t, err)
	assert.Equal(t, "Paris", user.Location)
	assert.Equal(t, models.RoleUser, user.Role)

	_, err = svc.UpdateProfile(context.Background(), id, ProfileUpdate{FullName: ptr("  ")})
	assert.Equal(t, apperror.Validation, apperror.KindOf(err))
}

func TestUserService_RecommendedExcludesSelfAndFriends(t *testing.T) {
	store := newFakeStore()
	users := NewUserService(store)
	friends := NewFriendService(store, &recordingPublisher{}, zap.NewNop())
	ctx := context.Background()

	me := store.addUser("me", models.RoleUser)
	friend := store.addUser("friend", models.RoleUser)
	store.addUser("stranger1", models.RoleUser)
	store.addUser("stranger2", models.RoleUser)

	req, err := friends.SendRequest(ctx, me, friend)
	require.NoError(t, err)
	_, err = friends.AcceptRequest(ctx, req.ID, friend)
	require.NoError(t, err)

	page, total, err := users.Recommended(ctx, me, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, page, 1)
	assert.Equal(t, "stranger2", page[0].FullName)
}

func TestStreamService_Token(t *testing.T) {
	token, err := NewStreamService("secret").Token(context.Background(), 3)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = NewStreamService("").Token(context.Background(), 3)
	assert.Error(t, err)
}
