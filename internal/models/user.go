package models

import "time"

// Role is the authorization level of an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents an account in the system.
type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	FullName         string    `gorm:"size:255;not null" json:"fullName"`
	Email            string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash     string    `gorm:"size:255;not null" json:"-"`
	Bio              string    `gorm:"type:text" json:"bio"`
	ProfilePic       string    `gorm:"size:512" json:"profilePic"`
	NativeLanguage   string    `gorm:"size:100" json:"nativeLanguage"`
	LearningLanguage string    `gorm:"size:100" json:"learningLanguage"`
	Location         string    `gorm:"size:255" json:"location"`
	Role             Role      `gorm:"size:50;not null;default:'user';index" json:"role"`
	IsOnboarded      bool      `gorm:"not null;default:false" json:"isOnboarded"`

	// Symmetric: every row (a, b) in user_friends has a mirror (b, a).
	Friends []*User `gorm:"many2many:user_friends;joinForeignKey:UserID;joinReferences:FriendID" json:"-"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSummary is the populated counterpart shown next to a friend request.
type UserSummary struct {
	ID               uint   `json:"id"`
	FullName         string `json:"fullName"`
	ProfilePic       string `json:"profilePic"`
	NativeLanguage   string `json:"nativeLanguage"`
	LearningLanguage string `json:"learningLanguage"`
}

// Summary projects the user onto its public summary.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:               u.ID,
		FullName:         u.FullName,
		ProfilePic:       u.ProfilePic,
		NativeLanguage:   u.NativeLanguage,
		LearningLanguage: u.LearningLanguage,
	}
}
