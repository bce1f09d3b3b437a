package handler

import (
	"net/http"
	"strconv"

	"github.com/BloggingApp/social-service/internal/model"
)

func (h *Handler) notificationsGet(user *model.User, w http.ResponseWriter, r *http.Request) {
	notifications, err := h.services.Notification.GetUserNotifications(r.Context(), user.ID)
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, notifications, http.StatusOK)
}

func (h *Handler) notificationsGetUnread(user *model.User, w http.ResponseWriter, r *http.Request) {
	notifications, err := h.services.Notification.GetUnread(r.Context(), user.ID)
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, notifications, http.StatusOK)
}

func (h *Handler) notificationsUnreadCount(user *model.User, w http.ResponseWriter, r *http.Request) {
	count, err := h.services.Notification.UnreadCount(r.Context(), user.ID)
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, Resp{"user_id": user.ID, "unread_count": count}, http.StatusOK)
}

func (h *Handler) notificationsMarkAsRead(user *model.User, w http.ResponseWriter, r *http.Request) {
	notificationID, err := strconv.ParseInt(r.PathValue("nId"), 10, 64)
	if err != nil {
		h.Respond(w, Resp{"error": errInvalidID.Error()}, http.StatusBadRequest)
		return
	}

	n, err := h.services.Notification.MarkAsRead(r.Context(), user.ID, notificationID)
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, n, http.StatusOK)
}

func (h *Handler) notificationsDelete(user *model.User, w http.ResponseWriter, r *http.Request) {
	notificationID, err := strconv.ParseInt(r.PathValue("nId"), 10, 64)
	if err != nil {
		h.Respond(w, Resp{"error": errInvalidID.Error()}, http.StatusBadRequest)
		return
	}

	if err := h.services.Notification.Delete(r.Context(), user.ID, notificationID); err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, Resp{"message": "notification deleted successfully"}, http.StatusOK)
}
