package dto

import "github.com/google/uuid"

type CreateUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UpdateUserBio struct {
	Bio string `json:"bio"`
}

type CreatePost struct {
	AuthorID uuid.UUID `json:"author_id"`
	Content  string    `json:"content"`
}

type FollowRequest struct {
	FollowerID uuid.UUID `json:"follower_id"`
	FolloweeID uuid.UUID `json:"followee_id"`
}
