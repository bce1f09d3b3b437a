package handler

import (
	"net/http"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// notificationsWS upgrades the connection and registers it with the hub so
// the dispatcher's websocket listener can push notifications live.
func (h *Handler) notificationsWS(user *model.User, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	h.wsHub.Register(user.ID, conn)
}
