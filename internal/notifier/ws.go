package notifier

import (
	"context"
	"sync"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WSHub delivers dispatched notifications to connected receivers over
// websocket. It is registered with the Dispatcher as a Listener.
type WSHub struct {
	logger *zap.Logger
	conns  *sync.Map
}

func NewWSHub(logger *zap.Logger) *WSHub {
	return &WSHub{
		logger: logger,
		conns:  &sync.Map{},
	}
}

func (h *WSHub) Register(userID uuid.UUID, conn *websocket.Conn) {
	h.conns.Store(userID, conn)

	go func(userID uuid.UUID, c *websocket.Conn) {
		for {
			_, _, err := c.ReadMessage()
			if err != nil {
				h.Unregister(userID)
				break
			}
		}
	}(userID, conn)
}

func (h *WSHub) Unregister(userID uuid.UUID) {
	if val, ok := h.conns.Load(userID); ok {
		if conn, ok := val.(*websocket.Conn); ok {
			conn.Close()
		}
		h.conns.Delete(userID)
	}
}

func (h *WSHub) Notify(ctx context.Context, n *model.Notification) error {
	val, ok := h.conns.Load(n.ReceiverID)
	if !ok {
		return nil
	}

	conn, ok := val.(*websocket.Conn)
	if !ok {
		return nil
	}

	payload := map[string]string{
		"type":    n.Type,
		"message": n.Message,
	}
	if err := conn.WriteJSON(payload); err != nil {
		h.logger.Sugar().Errorf("failed to write json msg to receiver(%s)'s conn: %s", n.ReceiverID.String(), err.Error())
		return err
	}

	return nil
}

func (h *WSHub) Shutdown() {
	h.conns.Range(func(key, val interface{}) bool {
		if conn, ok := val.(*websocket.Conn); ok {
			conn.Close()
		}
		h.conns.Delete(key)
		return true
	})
}
