package service

import "errors"

var (
	ErrInternal = errors.New("internal server error")

	ErrUsernameTaken = errors.New("username is already taken")
	ErrUserNotFound  = errors.New("user not found")

	ErrEmptyContent   = errors.New("post content must not be empty")
	ErrContentTooLong = errors.New("post content must not be over 250 characters")
	ErrPostNotFound   = errors.New("post not found")

	ErrSelfFollow       = errors.New("users cannot follow themselves")
	ErrAlreadyFollowing = errors.New("you are already following this user")
	ErrNotFollowing     = errors.New("you are not following this user")

	ErrNotificationNotFound = errors.New("notification not found")
)
