package handler

import (
	"encoding/json"
	"net/http"

	"github.com/BloggingApp/social-service/internal/notifier"
	"github.com/BloggingApp/social-service/internal/service"
)

type Resp map[string]interface{}

type Handler struct {
	services *service.Service
	wsHub    *notifier.WSHub
}

func New(services *service.Service, wsHub *notifier.WSHub) *Handler {
	return &Handler{
		services: services,
		wsHub:    wsHub,
	}
}

func (h *Handler) SetupRoutes() http.Handler {
	mux := http.NewServeMux()

	// users
	mux.HandleFunc("POST /api/v1/users", h.usersCreate)
	mux.HandleFunc("GET /api/v1/users", h.usersGetAll)
	mux.HandleFunc("GET /api/v1/users/{id}", h.usersGet)
	mux.HandleFunc("PUT /api/v1/users/{id}", h.usersUpdateBio)

	// posts
	mux.HandleFunc("POST /api/v1/posts", h.postsCreate)
	mux.HandleFunc("GET /api/v1/posts", h.postsGetAll)
	mux.HandleFunc("GET /api/v1/posts/user/{userId}", h.postsGetByUser)
	mux.HandleFunc("GET /api/v1/posts/feed/{userId}", h.postsFeed)
	mux.HandleFunc("DELETE /api/v1/posts/{postId}", h.postsDelete)

	// follows
	mux.HandleFunc("POST /api/v1/follows/follow", h.followsFollow)
	mux.HandleFunc("POST /api/v1/follows/unfollow", h.followsUnfollow)
	mux.HandleFunc("GET /api/v1/follows/{userId}/followers", h.followsFollowers)
	mux.HandleFunc("GET /api/v1/follows/{userId}/following", h.followsFollowing)
	mux.HandleFunc("GET /api/v1/follows/{userId}/counts", h.followsCounts)
	mux.HandleFunc("GET /api/v1/follows/check", h.followsCheck)

	// notifications (receiver-scoped, bearer token required)
	mux.HandleFunc("GET /api/v1/notifications", h.withAuth(h.notificationsGet))
	mux.HandleFunc("GET /api/v1/notifications/unread", h.withAuth(h.notificationsGetUnread))
	mux.HandleFunc("GET /api/v1/notifications/unread-count", h.withAuth(h.notificationsUnreadCount))
	mux.HandleFunc("POST /api/v1/notifications/{nId}/read", h.withAuth(h.notificationsMarkAsRead))
	mux.HandleFunc("DELETE /api/v1/notifications/{nId}", h.withAuth(h.notificationsDelete))
	mux.HandleFunc("GET /api/v1/notifications/ws", h.withAuth(h.notificationsWS))

	return mux
}

func (h *Handler) Respond(w http.ResponseWriter, resp any, statusCode int) {
	respJSON, _ := json.Marshal(resp)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(respJSON)
}
