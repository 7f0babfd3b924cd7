package repository

import (
	"context"
	"fmt"

	"jigarafy/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FriendRequestRepository interface {
	Create(ctx context.Context, request *models.FriendRequest) error
	// FindByIDForUpdate loads the request and locks its row until the
	// surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uint) (*models.FriendRequest, error)
	PendingBetween(ctx context.Context, userID, otherID uint) (bool, error)
	MarkAccepted(ctx context.Context, id uint) error
	// ListByRecipient preloads Sender; ListBySender preloads Recipient.
	ListByRecipient(ctx context.Context, userID uint, status models.FriendRequestStatus) ([]models.FriendRequest, error)
	ListBySender(ctx context.Context, userID uint, status models.FriendRequestStatus) ([]models.FriendRequest, error)
	DeleteForUser(ctx context.Context, userID uint) (int64, error)
	CountByStatus(ctx context.Context) (map[models.FriendRequestStatus]int64, error)
}

type friendRequestRepository struct {
	db *gorm.DB
}

func NewFriendRequestRepository(db *gorm.DB) FriendRequestRepository {
	return &friendRequestRepository{db: db}
}

func (r *friendRequestRepository) Create(ctx context.Context, request *models.FriendRequest) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(request).Error)
}

func (r *friendRequestRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&request, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &request, nil
}

func (r *friendRequestRepository) PendingBetween(ctx context.Context, userID, otherID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.FriendRequest{}).
		Where("status = ?", models.StatusPending).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, otherID, otherID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *friendRequestRepository) MarkAccepted(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.FriendRequest{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Update("status", models.StatusAccepted)
	if result.Error != nil {
		return fmt.Errorf("failed to accept request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *friendRequestRepository) ListByRecipient(ctx context.Context, userID uint, status models.FriendRequestStatus) ([]models.FriendRequest, error) {
	requests := []models.FriendRequest{}
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("recipient_id = ? AND status = ?", userID, status).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *friendRequestRepository) ListBySender(ctx context.Context, userID uint, status models.FriendRequestStatus) ([]models.FriendRequest, error) {
	requests := []models.FriendRequest{}
	err := r.db.WithContext(ctx).
		Preload("Recipient").
		Where("sender_id = ? AND status = ?", userID, status).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *friendRequestRepository) DeleteForUser(ctx context.Context, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Delete(&models.FriendRequest{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete friend requests: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *friendRequestRepository) CountByStatus(ctx context.Context) (map[models.FriendRequestStatus]int64, error) {
	var rows []struct {
		Status models.FriendRequestStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.FriendRequest{}).
		Select("status, count(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.FriendRequestStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
