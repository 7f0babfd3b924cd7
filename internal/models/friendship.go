package models

import "time"

// Friendship is one direction of a friend link; it is the join table behind User.Friends.
type Friendship struct {
	UserID    uint `gorm:"primaryKey"`
	FriendID  uint `gorm:"primaryKey"`
	CreatedAt time.Time
}

func (Friendship) TableName() string {
	return "user_friends"
}

// FriendshipPair returns both directions of the link between a and b.
func FriendshipPair(a, b uint) []Friendship {
	return []Friendship{
		{UserID: a, FriendID: b},
		{UserID: b, FriendID: a},
	}
}
