package service

import "jigarafy/backend/internal/apperror"

var (
	ErrInvalidTarget      = apperror.New(apperror.Validation, "You can't send friend request to yourself")
	ErrUserNotFound       = apperror.New(apperror.NotFound, "User not found")
	ErrAlreadyFriends     = apperror.New(apperror.Conflict, "You are already friends with this user")
	ErrDuplicateRequest   = apperror.New(apperror.Conflict, "A friend request already exists between you and this user")
	ErrRequestNotFound    = apperror.New(apperror.NotFound, "Friend request not found")
	ErrNotRecipient       = apperror.New(apperror.Forbidden, "You are not authorized to accept this request")
	ErrAlreadyAccepted    = apperror.New(apperror.Conflict, "Friend request already accepted")
	ErrEmailTaken         = apperror.New(apperror.Conflict, "Email already exists, please use a different one")
	ErrInvalidCredentials = apperror.New(apperror.Unauthorized, "Invalid email or password")
	ErrUnauthorized       = apperror.New(apperror.Unauthorized, "Unauthorized - Invalid Token")
	ErrPasswordUpdate     = apperror.New(apperror.Validation, "Password cannot be updated through this route")
	ErrMissingFields      = apperror.New(apperror.Validation, "All fields are required")
	ErrInvalidEmail       = apperror.New(apperror.Validation, "Invalid email format")
	ErrShortPassword      = apperror.New(apperror.Validation, "Password must be at least 6 characters")
	ErrLongPassword       = apperror.New(apperror.Validation, "Password must be at most 72 bytes")
	ErrInvalidRole        = apperror.New(apperror.Validation, "Role must be either user or admin")
)
