package repository

import (
	"context"
	"fmt"

	"jigarafy/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error

	AreFriends(ctx context.Context, userID, otherID uint) (bool, error)
	AddFriendship(ctx context.Context, userID, otherID uint) error
	ListFriends(ctx context.Context, userID uint) ([]models.User, error)
	// RemoveFromAllFriends deletes every friend link pointing to or from userID.
	RemoveFromAllFriends(ctx context.Context, userID uint) (int64, error)
	Recommended(ctx context.Context, userID uint, page, limit int) (*Page[models.User], error)

	CountByRole(ctx context.Context) (map[models.Role]int64, error)
	Recent(ctx context.Context, n int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) AreFriends(ctx context.Context, userID, otherID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("user_id = ? AND friend_id = ?", userID, otherID).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) AddFriendship(ctx context.Context, userID, otherID uint) error {
	pair := models.FriendshipPair(userID, otherID)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&pair).Error
	if err != nil {
		return fmt.Errorf("failed to add friendship: %w", err)
	}
	return nil
}

func (r *userRepository) ListFriends(ctx context.Context, userID uint) ([]models.User, error) {
	friends := []models.User{}
	err := r.db.WithContext(ctx).
		Joins("JOIN user_friends uf ON uf.friend_id = users.id").
		Where("uf.user_id = ?", userID).
		Order("users.full_name").
		Find(&friends).Error
	return friends, err
}

func (r *userRepository) RemoveFromAllFriends(ctx context.Context, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? OR friend_id = ?", userID, userID).
		Delete(&models.Friendship{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to remove friend links: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *userRepository) Recommended(ctx context.Context, userID uint, page, limit int) (*Page[models.User], error) {
	friendIDs := r.db.Model(&models.Friendship{}).Select("friend_id").Where("user_id = ?", userID)

	query := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id <> ? AND is_onboarded = ?", userID, true).
		Where("id NOT IN (?)", friendIDs).
		Order("created_at DESC")

	return Paginate[models.User](query, page, limit)
}

func (r *userRepository) CountByRole(ctx context.Context) (map[models.Role]int64, error) {
	var rows []struct {
		Role  models.Role
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("role, count(*) AS count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.Role]int64, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts, nil
}

func (r *userRepository) Recent(ctx context.Context, n int) ([]models.User, error) {
	users := []models.User{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(n).Find(&users).Error
	return users, err
}
