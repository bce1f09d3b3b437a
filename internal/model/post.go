package model

import (
	"time"

	"github.com/google/uuid"
)

// MAX_POST_CONTENT_LEN is the rune limit for post content.
const MAX_POST_CONTENT_LEN = 250

type Post struct {
	ID        int64     `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
