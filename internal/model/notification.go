package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	NOTIFICATION_TYPE_POST   = "POST"
	NOTIFICATION_TYPE_FOLLOW = "FOLLOW"
)

type Notification struct {
	ID         int64     `json:"id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}
