package handler

import (
	"encoding/json"
	"net/http"

	"github.com/BloggingApp/social-service/internal/dto"
	"github.com/google/uuid"
)

func (h *Handler) followsFollow(w http.ResponseWriter, r *http.Request) {
	var input dto.FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Respond(w, Resp{"error": err.Error()}, http.StatusBadRequest)
		return
	}

	follow, err := h.services.Follow.Follow(r.Context(), input.FollowerID, input.FolloweeID)
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, follow, http.StatusCreated)
}

func (h *Handler) followsUnfollow(w http.ResponseWriter, r *http.Request) {
	var input dto.FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Respond(w, Resp{"error": err.Error()}, http.StatusBadRequest)
		return
	}

	if err := h.services.Follow.Unfollow(r.Context(), input.FollowerID, input.FolloweeID); err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, Resp{"message": "unfollowed successfully"}, http.StatusOK)
}

func (h *Handler) followsFollowers(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		h.Respond(w, Resp{"error": errInvalidUserID.Error()}, http.StatusBadRequest)
		return
	}

	followers, err := h.services.Follow.Followers(r.Context(), userID)
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, followers, http.StatusOK)
}

func (h *Handler) followsFollowing(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		h.Respond(w, Resp{"error": errInvalidUserID.Error()}, http.StatusBadRequest)
		return
	}

	following, err := h.services.Follow.Following(r.Context(), userID)
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, following, http.StatusOK)
}

func (h *Handler) followsCounts(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		h.Respond(w, Resp{"error": errInvalidUserID.Error()}, http.StatusBadRequest)
		return
	}

	followers, err := h.services.Follow.FollowerCount(r.Context(), userID)
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	following, err := h.services.Follow.FollowingCount(r.Context(), userID)
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, Resp{"followers": followers, "following": following}, http.StatusOK)
}

func (h *Handler) followsCheck(w http.ResponseWriter, r *http.Request) {
	followerID, err0 := uuid.Parse(r.URL.Query().Get("follower_id"))
	followeeID, err1 := uuid.Parse(r.URL.Query().Get("followee_id"))
	if err0 != nil || err1 != nil {
		h.Respond(w, Resp{"error": errInvalidUserID.Error()}, http.StatusBadRequest)
		return
	}

	following, err := h.services.Follow.IsFollowing(r.Context(), followerID, followeeID)
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, Resp{"is_following": following}, http.StatusOK)
}
