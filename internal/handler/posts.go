package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/BloggingApp/social-service/internal/dto"
	"github.com/google/uuid"
)

func (h *Handler) postsCreate(w http.ResponseWriter, r *http.Request) {
	var input dto.CreatePost
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Respond(w, Resp{"error": err.Error()}, http.StatusBadRequest)
		return
	}

	post, err := h.services.Post.Create(r.Context(), input.AuthorID, input.Content)
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, post, http.StatusCreated)
}

func (h *Handler) postsGetAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.Post.GetAll(r.Context())
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, posts, http.StatusOK)
}

func (h *Handler) postsGetByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		h.Respond(w, Resp{"error": errInvalidUserID.Error()}, http.StatusBadRequest)
		return
	}

	posts, err := h.services.Post.GetUserPosts(r.Context(), userID)
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, posts, http.StatusOK)
}

func (h *Handler) postsFeed(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		h.Respond(w, Resp{"error": errInvalidUserID.Error()}, http.StatusBadRequest)
		return
	}

	feed, err := h.services.Post.Feed(r.Context(), userID)
	if err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, feed, http.StatusOK)
}

func (h *Handler) postsDelete(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(r.PathValue("postId"), 10, 64)
	if err != nil {
		h.Respond(w, Resp{"error": errInvalidID.Error()}, http.StatusBadRequest)
		return
	}

	if err := h.services.Post.Delete(r.Context(), postID); err != nil {
		h.Respond(w, Resp{"error": err.Error()}, statusFor(err))
		return
	}

	h.Respond(w, Resp{"message": "post deleted successfully"}, http.StatusOK)
}
